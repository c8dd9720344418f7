// Package gateway contains the client side of the identity provider.
//
// # Overview
//
// AuthGateway is the transport-agnostic contract the submission controller
// needs: SignIn, SignUp and SendPasswordReset. Two implementations are
// provided:
//
//   - GRPCGateway talks to an identity service over gRPC using
//     google.protobuf.Struct messages and reads the returned identity token;
//   - IdentityToolkitGateway talks to the Firebase Identity Toolkit REST API.
//
// # Error Handling
//
// Every failure is reported as a *ProviderError whose Code is one of the
// opaque provider codes declared in the models package (user-not-found,
// wrong-password, ...). Transport failures map to network-request-failed.
// Use CodeOf to extract the code from any error.
package gateway
