// Package models defines client-side data models shared by the auth flows.
package models

// ScreenKind identifies one of the three auth screens. It selects both the
// validation rule set and the error-translation policy.
type ScreenKind int

const (
	ScreenSignIn ScreenKind = iota
	ScreenSignUp
	ScreenResetRequest
)

// String returns the stable, kebab-case screen name.
func (k ScreenKind) String() string {
	switch k {
	case ScreenSignIn:
		return "sign-in"
	case ScreenSignUp:
		return "sign-up"
	case ScreenResetRequest:
		return "reset-request"
	default:
		return "unknown"
	}
}

// Route returns the navigation route that displays the screen.
func (k ScreenKind) Route() Route {
	switch k {
	case ScreenSignUp:
		return RouteSignUp
	case ScreenResetRequest:
		return RouteResetRequest
	default:
		return RouteSignIn
	}
}

// Route is a navigation target understood by a Navigator.
type Route string

const (
	RouteSignIn       Route = "SignIn"
	RouteSignUp       Route = "SignUp"
	RouteResetRequest Route = "ResetRequest"
)

// ScreenFor maps a route back to its screen. ok is false for unknown routes.
func ScreenFor(r Route) (ScreenKind, bool) {
	switch r {
	case RouteSignIn:
		return ScreenSignIn, true
	case RouteSignUp:
		return ScreenSignUp, true
	case RouteResetRequest:
		return ScreenResetRequest, true
	}
	return 0, false
}
