// Package common contains constants shared by the client gateway and the
// development identity provider.
package common

// gRPC contract of the identity service. Messages are
// google.protobuf.Struct values keyed by the Field* names below.
const (
	IdentityServiceName = "clubauth.identity.v1.Identity"

	MethodSignIn            = "/" + IdentityServiceName + "/SignIn"
	MethodSignUp            = "/" + IdentityServiceName + "/SignUp"
	MethodSendPasswordReset = "/" + IdentityServiceName + "/SendPasswordReset"
)

// Struct field keys.
const (
	FieldEmail   = "email"
	FieldSecret  = "secret"
	FieldIDToken = "id_token"
	FieldUserID  = "uid"
)

// ProviderErrorDomain is the errdetails.ErrorInfo domain under which the
// provider reports its opaque error codes (as ErrorInfo.Reason).
const ProviderErrorDomain = "identity.clubauth"
