// Package translate turns opaque identity-provider error codes into one of a
// fixed set of user-facing categories and messages.
//
// The mapping is parameterised by screen and is intentionally asymmetric:
//
//   - sign-in collapses user-not-found, wrong-password and invalid-credential
//     into a single InvalidCredentials message, so a failed sign-in never
//     reveals whether an email is registered;
//   - reset-request reports user-not-found as NotRegistered, because the user
//     must learn whether a reset email was sent.
//
// Codes missing from a screen's table degrade to Unknown with that screen's
// generic retry message. Raw provider text is never surfaced.
//
// Messages come from a fixed catalog (Japanese by default, English
// available) selected by locale.
package translate
