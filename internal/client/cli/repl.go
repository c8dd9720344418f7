package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isSignedIn() bool
	SignIn(ctx context.Context) error
	SignUp(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Back(ctx context.Context) error
	SignOut(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
//	Signed out:
//	  - signin          sign in with email and password
//	  - signup          create an account
//	  - reset           request a password reset email
//	  - back            return to the sign-in screen
//
//	Signed in:
//	  - whoami          show the current identity
//	  - signout         sign out
//
//	Always: help, exit | quit
//
// Errors returned by command handlers are not fatal; handlers print their own
// user-facing messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "clubauth (%s)> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isSignedIn() {
				fmt.Fprintln(out, "Available commands: whoami, signout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: signin, signup, reset, back, exit")
			}

		case "signin", "login":
			_ = a.SignIn(ctx)

		case "signup", "register":
			_ = a.SignUp(ctx)

		case "reset":
			_ = a.ResetPassword(ctx)

		case "back":
			_ = a.Back(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "signout", "logout":
			_ = a.SignOut(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
