package translate

import (
	"strings"

	"github.com/dmitrijs2005/clubauth/internal/client/models"
	"golang.org/x/text/language"
)

type rule struct {
	category Category
	message  MessageKey
}

// table is the per-screen code mapping. Codes absent from a screen fall back
// to that screen's entry in fallback.
var table = map[models.ScreenKind]map[string]rule{
	models.ScreenSignIn: {
		// One message for all three: a failed sign-in must not tell whether
		// the email exists.
		models.CodeInvalidCredential:    {InvalidCredentials, MsgSignInInvalidCredentials},
		models.CodeWrongPassword:        {InvalidCredentials, MsgSignInInvalidCredentials},
		models.CodeUserNotFound:         {InvalidCredentials, MsgSignInInvalidCredentials},
		models.CodeInvalidEmail:         {InvalidFormat, MsgInvalidEmail},
		models.CodeUserDisabled:         {AccountDisabled, MsgAccountDisabled},
		models.CodeTooManyRequests:      {RateLimited, MsgSignInRateLimited},
		models.CodeNetworkRequestFailed: {NetworkUnavailable, MsgNetworkUnavailable},
	},
	models.ScreenSignUp: {
		models.CodeEmailAlreadyInUse:    {AlreadyRegistered, MsgSignUpAlreadyRegistered},
		models.CodeInvalidEmail:         {InvalidFormat, MsgInvalidEmail},
		models.CodeWeakPassword:         {WeakSecret, MsgSignUpWeakSecret},
		models.CodeNetworkRequestFailed: {NetworkUnavailable, MsgNetworkUnavailable},
		models.CodeOperationNotAllowed:  {Unknown, MsgSignUpNotAllowed},
	},
	models.ScreenResetRequest: {
		// Disclosed on purpose: the user needs to know no mail was sent.
		models.CodeUserNotFound:         {NotRegistered, MsgResetNotRegistered},
		models.CodeInvalidEmail:         {InvalidFormat, MsgInvalidEmail},
		models.CodeTooManyRequests:      {RateLimited, MsgResetRateLimited},
		models.CodeNetworkRequestFailed: {NetworkUnavailable, MsgNetworkUnavailable},
	},
}

var fallback = map[models.ScreenKind]MessageKey{
	models.ScreenSignIn:       MsgSignInUnknown,
	models.ScreenSignUp:       MsgSignUpUnknown,
	models.ScreenResetRequest: MsgResetUnknown,
}

var (
	supported = []language.Tag{language.Japanese, language.English}
	catalogs  = []map[MessageKey]string{catalogJa, catalogEn}
	matcher   = language.NewMatcher(supported)
)

// Translator maps provider codes to Failures using one language catalog.
// It is immutable and safe for concurrent use.
type Translator struct {
	lang     language.Tag
	messages map[MessageKey]string
}

// New returns a Translator for the best catalog matching locale (a BCP 47
// tag such as "ja-JP" or "en"). Empty or unsupported locales get Japanese.
func New(locale string) *Translator {
	idx := 0
	if tag, err := language.Parse(locale); err == nil {
		if _, i, conf := matcher.Match(tag); conf != language.No {
			idx = i
		}
	}
	return &Translator{lang: supported[idx], messages: catalogs[idx]}
}

// Language returns the catalog language in use.
func (t *Translator) Language() language.Tag {
	return t.lang
}

// Translate maps a provider code reported on screen to a Failure.
func (t *Translator) Translate(screen models.ScreenKind, code string) Failure {
	code = NormalizeCode(code)

	r, ok := table[screen][code]
	if !ok {
		r = rule{category: Unknown, message: fallback[screen]}
	}
	if r.message == "" {
		r.message = MsgSignInUnknown
	}

	return Failure{
		Screen:   screen,
		Code:     code,
		Category: r.category,
		Message:  t.Text(r.message),
	}
}

// Text returns the catalog entry for key, or the key itself if missing.
func (t *Translator) Text(key MessageKey) string {
	if s, ok := t.messages[key]; ok {
		return s
	}
	return string(key)
}

// NormalizeCode trims, lower-cases and strips the "auth/" namespace that some
// providers prepend to their codes.
func NormalizeCode(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	return strings.TrimPrefix(code, "auth/")
}
