package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/summarize-app/summarize/internal/auth"
	"github.com/summarize-app/summarize/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) register(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return
	}
	password, err := getPassword(a.t("password"), os.Stdout)
	if err != nil {
		return
	}
	confirm, err := getPassword(a.t("confirmPassword"), os.Stdout)
	if err != nil {
		return
	}

	u, err := a.gate.Register(ctx, auth.RegisterRequest{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	})
	switch {
	case errors.Is(err, common.ErrEmailInUse):
		a.center.Error(a.t("emailAlreadyInUse"))
	case errors.Is(err, common.ErrValidation):
		a.center.Error(a.t("unsafeContent"))
	case err != nil:
		a.log.Error(ctx, "registration failed", "error", err)
	default:
		a.center.Success(a.t("welcome") + " " + u.Name)
	}
}

func (a *App) login(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return
	}
	password, err := getPassword(a.t("password"), os.Stdout)
	if err != nil {
		return
	}

	u, err := a.gate.Login(ctx, email, password)
	switch {
	case errors.Is(err, common.ErrRateLimited):
		fmt.Fprintln(a.out, "Too many attempts, try again later")
	case errors.Is(err, common.ErrValidation):
		a.center.Error(a.t("invalidEmail"))
	case err != nil:
		fmt.Fprintln(a.out, "Login unsuccessful")
	default:
		a.center.Success(a.t("welcome") + " " + u.Name)
	}
}

func (a *App) logout(ctx context.Context) {
	if _, err := a.gate.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return
	}
	fmt.Fprintln(a.out, a.t("logout"))
}

func (a *App) whoami(ctx context.Context) {
	u := a.gate.CurrentUser(ctx)
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}
	fmt.Fprintf(a.out, "%s <%s> %s\n", u.Name, u.Email, u.Role)
}

// profile edits the logged-in user's record; empty answers keep the stored
// values.
func (a *App) profile(ctx context.Context) {
	if !a.gate.IsAuthenticated(ctx) {
		a.center.Warning(a.t("mustLoginFirst"))
		return
	}

	name, err := getSimpleText(a.reader, "New name (empty to keep)", os.Stdout)
	if err != nil {
		return
	}
	email, err := getSimpleText(a.reader, "New email (empty to keep)", os.Stdout)
	if err != nil {
		return
	}

	_, err = a.gate.UpdateProfile(ctx, auth.ProfileUpdate{Name: name, Email: email})
	switch {
	case errors.Is(err, common.ErrEmailInUse):
		a.center.Error(a.t("emailAlreadyInUse"))
	case errors.Is(err, common.ErrValidation):
		a.center.Error(a.t("unsafeContent"))
	case err != nil:
		a.log.Error(ctx, "profile update failed", "error", err)
	default:
		a.center.Success(a.t("changesSaved"))
	}
}
