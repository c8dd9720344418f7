// Package idtoken issues and reads the identity tokens exchanged between the
// identity provider and the client gateway.
package idtoken

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/clubauth/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingClaim = errors.New("token is missing a required claim")
)

// Claims carries the identity in the standard subject claim plus the email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Issue signs an HS256 token for identity valid for ttl from now.
func Issue(identity models.Identity, issuer string, secretKey []byte, now time.Time, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: identity.Email,
	})
	return token.SignedString(secretKey)
}

// Verify checks the signature and expiry and returns the identity.
func Verify(tokenString string, secretKey []byte) (models.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return models.Identity{}, ErrInvalidToken
	}
	return identityFrom(claims)
}

// Read decodes the claims without checking the signature. The client uses it
// on tokens it just received from the provider over its own connection; it
// has no key to verify them with.
func Read(tokenString string) (models.Identity, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return models.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return identityFrom(claims)
}

func identityFrom(c *Claims) (models.Identity, error) {
	if c.Subject == "" {
		return models.Identity{}, fmt.Errorf("%w: sub", ErrMissingClaim)
	}
	if c.Email == "" {
		return models.Identity{}, fmt.Errorf("%w: email", ErrMissingClaim)
	}
	return models.Identity{ID: c.Subject, Email: c.Email}, nil
}
