package models

// Opaque error codes reported by the identity provider. Gateways normalise
// transport-specific failures onto this set.
const (
	CodeInvalidCredential    = "invalid-credential"
	CodeWrongPassword        = "wrong-password"
	CodeUserNotFound         = "user-not-found"
	CodeInvalidEmail         = "invalid-email"
	CodeUserDisabled         = "user-disabled"
	CodeTooManyRequests      = "too-many-requests"
	CodeNetworkRequestFailed = "network-request-failed"
	CodeEmailAlreadyInUse    = "email-already-in-use"
	CodeWeakPassword         = "weak-password"
	CodeOperationNotAllowed  = "operation-not-allowed"
	CodeInternalError        = "internal-error"
)
