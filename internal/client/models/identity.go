package models

// Identity is the signed-in user as reported by the identity provider.
type Identity struct {
	ID    string
	Email string
}
