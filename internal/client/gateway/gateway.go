package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/clubauth/internal/client/models"
)

// AuthGateway is the identity-provider contract used by the auth flows.
// Implementations must honour context cancellation.
type AuthGateway interface {
	SignIn(ctx context.Context, email, secret string) (models.Identity, error)
	SignUp(ctx context.Context, email, secret string) (models.Identity, error)
	SendPasswordReset(ctx context.Context, email string) error
}

// ProviderError is a failure reported by (or on the way to) the provider.
type ProviderError struct {
	Code string
	Err  error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider error %s: %v", e.Code, e.Err)
	}
	return "provider error " + e.Code
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func providerError(code string, err error) *ProviderError {
	return &ProviderError{Code: code, Err: err}
}

// CodeOf returns the provider code carried by err. Context cancellation and
// deadlines count as network failures; any other error yields "".
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Code
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return models.CodeNetworkRequestFailed
	}
	return ""
}
