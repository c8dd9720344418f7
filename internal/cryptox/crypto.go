// Package cryptox derives and checks secret verifiers for the development
// identity provider. Secrets are never stored; only salt and verifier are.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the salt length used for new accounts.
const SaltSize = 32

// DeriveKey stretches secret with salt using Argon2id.
func DeriveKey(secret []byte, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key into the value kept on record.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// Check reports whether secret matches verifier, in constant time.
func Check(secret, salt, verifier []byte) bool {
	candidate := MakeVerifier(DeriveKey(secret, salt))
	return subtle.ConstantTimeCompare(candidate, verifier) == 1
}
