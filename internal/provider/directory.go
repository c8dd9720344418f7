// Package provider implements an in-memory identity provider for local
// development and tests. It reports failures with the same opaque codes as
// a hosted provider, so every branch of the client's error translation can
// be exercised without network access.
package provider

import (
	"context"
	"net/mail"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/clubauth/internal/client/models"
	"github.com/dmitrijs2005/clubauth/internal/common"
	"github.com/dmitrijs2005/clubauth/internal/cryptox"
	"github.com/dmitrijs2005/clubauth/internal/idtoken"
	"github.com/dmitrijs2005/clubauth/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// MinSecretLength is the shortest secret accepted at sign-up.
const MinSecretLength = 6

// Error carries a provider code.
type Error struct {
	Code string
}

func (e *Error) Error() string {
	return "provider: " + e.Code
}

func fail(code string) error {
	return &Error{Code: code}
}

// Options configures a Directory.
type Options struct {
	Issuer    string
	SecretKey []byte
	TokenTTL  time.Duration

	// AttemptsPerMinute limits sign-in and reset attempts per email.
	// Zero disables throttling.
	AttemptsPerMinute int

	// SignUpDisabled makes SignUp fail with operation-not-allowed.
	SignUpDisabled bool

	// Now defaults to time.Now.
	Now func() time.Time
}

type account struct {
	id       string
	email    string
	salt     []byte
	verifier []byte
	disabled bool
}

// Directory is a concurrency-safe set of accounts.
type Directory struct {
	mu       sync.Mutex
	accounts map[string]*account
	limiters map[string]*rate.Limiter
	outbox   []string
	opts     Options
	logger   logging.Logger
}

func NewDirectory(opts Options, logger logging.Logger) *Directory {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = time.Hour
	}
	return &Directory{
		accounts: make(map[string]*account),
		limiters: make(map[string]*rate.Limiter),
		opts:     opts,
		logger:   logger.With("module", "directory"),
	}
}

// SignUp creates an account and returns its identity and a fresh token.
func (d *Directory) SignUp(ctx context.Context, email, secret string) (models.Identity, string, error) {
	if d.opts.SignUpDisabled {
		return models.Identity{}, "", fail(models.CodeOperationNotAllowed)
	}
	if !validEmail(email) {
		return models.Identity{}, "", fail(models.CodeInvalidEmail)
	}
	if utf8.RuneCountInString(secret) < MinSecretLength {
		return models.Identity{}, "", fail(models.CodeWeakPassword)
	}

	d.mu.Lock()
	key := emailKey(email)
	if _, ok := d.accounts[key]; ok {
		d.mu.Unlock()
		return models.Identity{}, "", fail(models.CodeEmailAlreadyInUse)
	}
	salt := common.GenerateRandByteArray(cryptox.SaltSize)
	acc := &account{
		id:       uuid.NewString(),
		email:    email,
		salt:     salt,
		verifier: cryptox.MakeVerifier(cryptox.DeriveKey([]byte(secret), salt)),
	}
	d.accounts[key] = acc
	d.mu.Unlock()

	d.logger.Info(ctx, "account created", "uid", acc.id)
	return d.issue(acc)
}

// SignIn checks credentials and returns the identity and a fresh token.
func (d *Directory) SignIn(ctx context.Context, email, secret string) (models.Identity, string, error) {
	if !validEmail(email) {
		return models.Identity{}, "", fail(models.CodeInvalidEmail)
	}

	d.mu.Lock()
	if !d.allow(email) {
		d.mu.Unlock()
		d.logger.Warn(ctx, "sign-in throttled")
		return models.Identity{}, "", fail(models.CodeTooManyRequests)
	}
	acc, ok := d.accounts[emailKey(email)]
	d.mu.Unlock()

	if !ok {
		return models.Identity{}, "", fail(models.CodeUserNotFound)
	}
	if !cryptox.Check([]byte(secret), acc.salt, acc.verifier) {
		return models.Identity{}, "", fail(models.CodeWrongPassword)
	}
	if d.isDisabled(acc) {
		return models.Identity{}, "", fail(models.CodeUserDisabled)
	}

	d.logger.Info(ctx, "signed in", "uid", acc.id)
	return d.issue(acc)
}

// SendPasswordReset records a reset mail for a known account.
func (d *Directory) SendPasswordReset(ctx context.Context, email string) error {
	if !validEmail(email) {
		return fail(models.CodeInvalidEmail)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.allow(email) {
		return fail(models.CodeTooManyRequests)
	}
	acc, ok := d.accounts[emailKey(email)]
	if !ok {
		return fail(models.CodeUserNotFound)
	}
	d.outbox = append(d.outbox, acc.email)
	d.logger.Info(ctx, "password reset mail queued", "uid", acc.id)
	return nil
}

// Disable blocks future sign-ins of the account.
func (d *Directory) Disable(email string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	acc, ok := d.accounts[emailKey(email)]
	if !ok {
		return fail(models.CodeUserNotFound)
	}
	acc.disabled = true
	return nil
}

// Outbox returns the addresses that were sent a reset mail, oldest first.
func (d *Directory) Outbox() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.outbox...)
}

func (d *Directory) isDisabled(acc *account) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return acc.disabled
}

func (d *Directory) issue(acc *account) (models.Identity, string, error) {
	identity := models.Identity{ID: acc.id, Email: acc.email}
	token, err := idtoken.Issue(identity, d.opts.Issuer, d.opts.SecretKey, d.opts.Now(), d.opts.TokenTTL)
	if err != nil {
		return models.Identity{}, "", err
	}
	return identity, token, nil
}

// allow must be called with d.mu held.
func (d *Directory) allow(email string) bool {
	n := d.opts.AttemptsPerMinute
	if n <= 0 {
		return true
	}
	key := emailKey(email)
	l, ok := d.limiters[key]
	if !ok {
		l = rate.NewLimiter(rate.Every(time.Minute/time.Duration(n)), n)
		d.limiters[key] = l
	}
	return l.AllowN(d.opts.Now(), 1)
}

func emailKey(email string) string {
	return strings.ToLower(email)
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return strings.Contains(email[at+1:], ".")
}
