package form

import (
	"regexp"
	"unicode/utf8"

	"github.com/dmitrijs2005/clubauth/internal/client/models"
)

// Field names a form input.
type Field string

const (
	FieldEmail              Field = "email"
	FieldSecret             Field = "secret"
	FieldSecretConfirmation Field = "secretConfirmation"
)

// MinSecretLength is the minimum number of characters in a secret.
const MinSecretLength = 6

// Validation messages.
const (
	MsgEmailRequired        = "Email is a required field"
	MsgEmailInvalid         = "Email must be a valid email"
	MsgSecretRequired       = "Password is a required field"
	MsgSecretTooShort       = "Password must be at least 6 characters"
	MsgConfirmationRequired = "Confirm Password is a required field"
	MsgConfirmationMismatch = "Passwords must match"
)

// Values holds the raw input of a screen keyed by field.
type Values map[Field]string

// Errors maps a field to its validation message. An empty map means the
// input is valid.
type Errors map[Field]string

// Valid reports whether no field failed validation.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// emailPattern accepts local@domain where the domain has at least two
// non-empty dot-separated labels.
var emailPattern = regexp.MustCompile(
	"^[A-Za-z0-9.!#$%&'*+/=?^_`{|}~-]+@" +
		"[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?" +
		"(?:\\.[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?)+$")

// Fields returns the inputs a screen collects, in display order.
func Fields(screen models.ScreenKind) []Field {
	switch screen {
	case models.ScreenSignUp:
		return []Field{FieldEmail, FieldSecret, FieldSecretConfirmation}
	case models.ScreenResetRequest:
		return []Field{FieldEmail}
	default:
		return []Field{FieldEmail, FieldSecret}
	}
}

// Validate checks values against the rule set of screen. Fields that the
// screen does not collect are ignored.
func Validate(values Values, screen models.ScreenKind) Errors {
	errs := Errors{}
	for _, f := range Fields(screen) {
		var msg string
		switch f {
		case FieldEmail:
			msg = checkEmail(values[FieldEmail])
		case FieldSecret:
			msg = checkSecret(values[FieldSecret])
		case FieldSecretConfirmation:
			msg = checkConfirmation(values[FieldSecret], values[FieldSecretConfirmation])
		}
		if msg != "" {
			errs[f] = msg
		}
	}
	return errs
}

func checkEmail(v string) string {
	if v == "" {
		return MsgEmailRequired
	}
	if !emailPattern.MatchString(v) {
		return MsgEmailInvalid
	}
	return ""
}

func checkSecret(v string) string {
	if v == "" {
		return MsgSecretRequired
	}
	if utf8.RuneCountInString(v) < MinSecretLength {
		return MsgSecretTooShort
	}
	return ""
}

func checkConfirmation(secret, confirmation string) string {
	if confirmation == "" {
		return MsgConfirmationRequired
	}
	if confirmation != secret {
		return MsgConfirmationMismatch
	}
	return ""
}
