package form

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/clubauth/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_EmptyEmail_OnlyRequiredError(t *testing.T) {
	for _, screen := range []models.ScreenKind{models.ScreenSignIn, models.ScreenSignUp, models.ScreenResetRequest} {
		t.Run(screen.String(), func(t *testing.T) {
			v := Values{
				FieldEmail:              "",
				FieldSecret:             "password123",
				FieldSecretConfirmation: "password123",
			}
			errs := Validate(v, screen)
			assert.Equal(t, Errors{FieldEmail: MsgEmailRequired}, errs)
		})
	}
}

func TestValidate_EmailFormat(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"test@example.com", true},
		{"first.last+tag@sub.example.co.jp", true},
		{"invalid-email", false},
		{"invalid@email", false},
		{"@example.com", false},
		{"user@", false},
		{"user@.com", false},
		{"user@example.", false},
		{"user name@example.com", false},
		{"user@@example.com", false},
		{" test@example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			errs := Validate(Values{FieldEmail: tt.email}, models.ScreenResetRequest)
			if tt.valid {
				assert.True(t, errs.Valid(), "unexpected errors: %v", errs)
				return
			}
			assert.Equal(t, MsgEmailInvalid, errs[FieldEmail])
		})
	}
}

func TestValidate_SecretLength(t *testing.T) {
	for n := 1; n <= 10; n++ {
		secret := strings.Repeat("a", n)
		errs := Validate(Values{FieldEmail: "test@example.com", FieldSecret: secret}, models.ScreenSignIn)
		if n < MinSecretLength {
			assert.Equal(t, MsgSecretTooShort, errs[FieldSecret], "len=%d", n)
		} else {
			assert.NotContains(t, errs, FieldSecret, "len=%d", n)
		}
	}
}

func TestValidate_SecretLengthCountsCharacters(t *testing.T) {
	// six multi-byte characters are enough
	errs := Validate(Values{FieldEmail: "test@example.com", FieldSecret: "パスワード確"}, models.ScreenSignIn)
	assert.True(t, errs.Valid())

	errs = Validate(Values{FieldEmail: "test@example.com", FieldSecret: "パスワード"}, models.ScreenSignIn)
	assert.Equal(t, MsgSecretTooShort, errs[FieldSecret])
}

func TestValidate_SecretRequired(t *testing.T) {
	errs := Validate(Values{FieldEmail: "test@example.com"}, models.ScreenSignIn)
	assert.Equal(t, Errors{FieldSecret: MsgSecretRequired}, errs)
}

func TestValidate_SignUpConfirmation(t *testing.T) {
	tests := []struct {
		name         string
		secret       string
		confirmation string
		want         string
	}{
		{"equal", "password123", "password123", ""},
		{"different", "password123", "password124", MsgConfirmationMismatch},
		{"case differs", "Password123", "password123", MsgConfirmationMismatch},
		{"trailing space", "password123", "password123 ", MsgConfirmationMismatch},
		{"missing", "password123", "", MsgConfirmationRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(Values{
				FieldEmail:              "test@example.com",
				FieldSecret:             tt.secret,
				FieldSecretConfirmation: tt.confirmation,
			}, models.ScreenSignUp)
			if tt.want == "" {
				assert.True(t, errs.Valid(), "unexpected errors: %v", errs)
				return
			}
			assert.Equal(t, Errors{FieldSecretConfirmation: tt.want}, errs)
		})
	}
}

func TestValidate_ConfirmationIgnoredOutsideSignUp(t *testing.T) {
	errs := Validate(Values{
		FieldEmail:              "test@example.com",
		FieldSecret:             "password123",
		FieldSecretConfirmation: "nope",
	}, models.ScreenSignIn)
	assert.True(t, errs.Valid())
}

func TestValidate_ReportsAllFailuresTogether(t *testing.T) {
	errs := Validate(Values{
		FieldEmail:              "bad",
		FieldSecret:             "abc",
		FieldSecretConfirmation: "",
	}, models.ScreenSignUp)

	require.Len(t, errs, 3)
	assert.Equal(t, MsgEmailInvalid, errs[FieldEmail])
	assert.Equal(t, MsgSecretTooShort, errs[FieldSecret])
	assert.Equal(t, MsgConfirmationRequired, errs[FieldSecretConfirmation])
}

func TestValidate_Idempotent(t *testing.T) {
	v := Values{FieldEmail: "x@y", FieldSecret: "12", FieldSecretConfirmation: "13"}
	first := Validate(v, models.ScreenSignUp)
	second := Validate(v, models.ScreenSignUp)
	assert.Equal(t, first, second)
	assert.Equal(t, Values{FieldEmail: "x@y", FieldSecret: "12", FieldSecretConfirmation: "13"}, v, "input must not be mutated")
}

func TestFields(t *testing.T) {
	assert.Equal(t, []Field{FieldEmail, FieldSecret}, Fields(models.ScreenSignIn))
	assert.Equal(t, []Field{FieldEmail, FieldSecret, FieldSecretConfirmation}, Fields(models.ScreenSignUp))
	assert.Equal(t, []Field{FieldEmail}, Fields(models.ScreenResetRequest))
}
