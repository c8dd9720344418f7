// Package cli provides the interactive clubauth command-line client.
//
// It wires configuration, the identity-provider gateway, the local session
// database and one flow.Controller per visible screen into a small REPL:
//
//   - signin / signup / reset  show the screen and submit its form
//   - back                     return to the sign-in screen
//   - signout, whoami          manage the current session
//
// Screens are switched by a router that implements navigation.Navigator;
// switching tears down the previous screen's controller, which cancels a
// pending post-reset redirect. The REPL is started with App.Run.
package cli
