package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hisabkitab/cli/internal/client/models"
)

// getSimpleText, getDefaultedText and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText    = GetSimpleText
	getDefaultedText = GetDefaultedText
	getPassword      = GetPassword
)

// Login prompts for credentials and authenticates through the session store.
// The email prompt is pre-filled with the last successfully used address.
// Failures surface the backend's detail message through the notification bus.
func (a *App) Login(ctx context.Context) error {
	email, err := getDefaultedText(a.reader, "Enter email", a.sessions.LastEmail(ctx), os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.sessions.Login(ctx, email, string(password)); err != nil {
		a.reportErr(err, "Login failed")
		return err
	}

	a.bus.Success(fmt.Sprintf("Logged in as %s", email))
	return nil
}

// ProviderLogin exchanges a pasted third-party identity token for a session.
func (a *App) ProviderLogin(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Paste provider identity token", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.sessions.LoginWithProvider(ctx, token); err != nil {
		a.reportErr(err, "Login failed")
		return err
	}

	if user := a.sessions.Current(); user != nil {
		a.bus.Success(fmt.Sprintf("Logged in as %s", user.Email))
	}
	return nil
}

// Register collects a profile and creates a new account. It does not log in;
// the user is prompted to login afterwards.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	profile := models.RegisterRequest{
		Email:    email,
		Password: string(password),
		FullName: fullName,
	}
	if err := a.sessions.Register(ctx, profile); err != nil {
		a.reportErr(err, "Registration failed")
		return err
	}

	a.bus.Success("Account created, you can login now")
	return nil
}

// Logout clears the session and the stored credential.
func (a *App) Logout(ctx context.Context) error {
	a.sessions.Logout(ctx)
	a.bus.Info("Logged out")
	return nil
}

// WhoAmI prints the current identity.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.sessions.Current()
	if user == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s> (admin: %v)", user.FullName, user.Email, user.IsAdmin))
	return nil
}
