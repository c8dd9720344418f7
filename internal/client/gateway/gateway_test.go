package gateway

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/clubauth/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"provider error", providerError(models.CodeWrongPassword, nil), models.CodeWrongPassword},
		{"wrapped provider error", fmt.Errorf("sign in: %w", providerError(models.CodeUserDisabled, nil)), models.CodeUserDisabled},
		{"deadline", context.DeadlineExceeded, models.CodeNetworkRequestFailed},
		{"canceled", fmt.Errorf("call: %w", context.Canceled), models.CodeNetworkRequestFailed},
		{"plain error", errors.New("boom"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestProviderError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := providerError(models.CodeInternalError, cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), models.CodeInternalError)
	assert.Equal(t, "provider error "+models.CodeWeakPassword, providerError(models.CodeWeakPassword, nil).Error())
}
