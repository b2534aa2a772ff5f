package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/caremate-ai/caremate/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for name, email, and password and creates a new account.
// The new account is not logged in automatically; the user goes through
// Login next, matching the durable session-marker flow.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.creds.Signup(ctx, name, email, string(password)); err != nil {
		return err
	}

	printlnFn("Account created. Type 'login' to sign in.")
	return nil
}

// Login prompts for credentials, verifies them against the credential store,
// and on success advances the session to the authenticated state.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.creds.Login(ctx, email, string(password)); err != nil {
		return err
	}

	user, err := a.creds.CurrentUser(ctx)
	if err != nil {
		return err
	}
	a.session.Authenticate(user)

	printlnFn(fmt.Sprintf("Welcome back, %s!", displayName(user.Name, user.Email)))
	return nil
}

// Logout clears the durable session marker and the in-memory user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.creds.Logout(ctx); err != nil {
		return err
	}
	a.session.Deauthenticate()
	printlnFn("Logged out.")
	return nil
}

// Whoami prints the authenticated identity.
func (a *App) Whoami(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		printlnFn("Not logged in.")
		return nil
	}
	if user.Name != "" {
		printlnFn(fmt.Sprintf("%s <%s>", user.Name, user.Email))
	} else {
		printlnFn(user.Email)
	}
	return nil
}

func displayName(name, email string) string {
	if name != "" {
		return name
	}
	return email
}
