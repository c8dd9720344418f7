// Package form validates auth-screen input before anything is sent to the
// identity provider.
//
// Validate is pure: it never performs I/O, never touches session state, and
// returns the same Errors for the same Values. Every field is checked
// independently and all failures are reported together, so a screen can
// display them side by side.
//
// Rule sets per screen:
//
//	sign-in        email, secret
//	sign-up        email, secret, secretConfirmation
//	reset-request  email
package form
