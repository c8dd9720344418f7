package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/clubauth/internal/client/flow"
	"github.com/dmitrijs2005/clubauth/internal/client/form"
	"github.com/dmitrijs2005/clubauth/internal/client/models"
	"github.com/dmitrijs2005/clubauth/internal/client/translate"
	"github.com/dmitrijs2005/clubauth/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var (
	titleText = map[models.ScreenKind]translate.MessageKey{
		models.ScreenSignIn:       translate.MsgSignInTitle,
		models.ScreenSignUp:       translate.MsgSignUpTitle,
		models.ScreenResetRequest: translate.MsgResetTitle,
	}
	busyText = map[models.ScreenKind]translate.MessageKey{
		models.ScreenSignIn:       translate.MsgSignInBusy,
		models.ScreenSignUp:       translate.MsgSignUpBusy,
		models.ScreenResetRequest: translate.MsgResetBusy,
	}
	fieldLabels = map[form.Field]string{
		form.FieldEmail:              "Email",
		form.FieldSecret:             "Password",
		form.FieldSecretConfirmation: "Confirm Password",
	}
)

func (a *App) showScreen(screen models.ScreenKind) {
	a.out.Printf("== %s ==\n", a.translator.Text(titleText[screen]))
	if screen == models.ScreenResetRequest {
		a.out.Println(a.translator.Text(translate.MsgResetHint))
	}
}

// SignIn shows the sign-in screen and submits its form.
func (a *App) SignIn(ctx context.Context) error {
	return a.submit(ctx, models.ScreenSignIn)
}

// SignUp shows the account creation screen and submits its form.
func (a *App) SignUp(ctx context.Context) error {
	return a.submit(ctx, models.ScreenSignUp)
}

// ResetPassword shows the reset-request screen and submits its form. On
// success the screen returns to sign-in by itself after a short delay.
func (a *App) ResetPassword(ctx context.Context) error {
	return a.submit(ctx, models.ScreenResetRequest)
}

// Back returns to the sign-in screen.
func (a *App) Back(ctx context.Context) error {
	a.router.Navigate(models.RouteSignIn)
	return nil
}

// SignOut clears the current session.
func (a *App) SignOut(ctx context.Context) error {
	if !a.isSignedIn() {
		return nil
	}
	if err := a.sessions.SignOut(ctx); err != nil {
		a.logger.Error(ctx, "sign out failed", "error", err)
		return err
	}
	return nil
}

// WhoAmI prints the signed-in identity.
func (a *App) WhoAmI(ctx context.Context) error {
	identity, ok := a.store.Get()
	if !ok {
		a.out.Println(a.translator.Text(translate.MsgSignedOut))
		return nil
	}
	a.out.Printf("%s (%s)\n", identity.Email, identity.ID)
	return nil
}

func (a *App) submit(ctx context.Context, screen models.ScreenKind) error {
	ctrl := a.router.show(screen)

	if !ctrl.CanSubmit() {
		if notice := ctrl.State().Notice; notice != "" {
			a.out.Println(notice)
		}
		return flow.ErrSubmitDisabled
	}

	values, err := a.readValues(screen)
	if err != nil {
		return err
	}
	ctrl.Edit()

	fieldErrs, err := ctrl.Submit(ctx, values)

	var failure translate.Failure
	switch {
	case errors.As(err, &failure):
		a.out.Println(failure.Message)
		return err
	case err != nil:
		a.logger.Debug(ctx, "submit rejected", "error", err)
		return err
	case !fieldErrs.Valid():
		for _, f := range form.Fields(screen) {
			if msg, ok := fieldErrs[f]; ok {
				a.out.Printf("  %s: %s\n", fieldLabels[f], msg)
			}
		}
		return nil
	}

	if notice := ctrl.State().Notice; notice != "" {
		a.out.Println(notice)
	}
	return nil
}

// readValues prompts for every field of screen. Secrets are read without
// echo and wiped once copied into the form.
func (a *App) readValues(screen models.ScreenKind) (form.Values, error) {
	values := form.Values{}
	for _, f := range form.Fields(screen) {
		if f == form.FieldEmail {
			v, err := getSimpleText(a.reader, fieldLabels[f], a.out)
			if err != nil {
				return nil, err
			}
			values[f] = v
			continue
		}

		secret, err := getPassword(a.out, fieldLabels[f])
		if err != nil {
			return nil, err
		}
		values[f] = string(secret)
		common.WipeByteArray(secret)
	}
	return values, nil
}
