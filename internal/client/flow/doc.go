// Package flow runs one auth screen's submission: it validates input, calls
// the identity provider, translates failures and applies the screen's
// success side effects.
//
// A Controller lives as long as its screen. Each Submit moves it through
//
//	Idle -> Submitting -> Succeeded | Failed
//
// and a Submit made while another is in flight is rejected with ErrInFlight
// rather than queued. After a successful password-reset request the screen
// stays in Succeeded, refuses further submits and redirects to sign-in after
// ResetRedirectDelay. Close tears the screen down: the pending redirect is
// cancelled and results that arrive afterwards are dropped.
package flow
