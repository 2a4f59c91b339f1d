package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for credentials and creates a new account. On success
// the token is persisted, the session flips to logged in, and the user
// lands on the home view.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if err := a.auth.Register(ctx, userName, string(password)); err != nil {
		a.alert(err)
		return err
	}

	fmt.Fprintln(a.out, "Registration successful!")
	return a.Home(ctx)
}

// Login prompts for credentials and authenticates. The token is persisted
// before the session flag flips, so the session never claims a login
// without a stored credential.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if err := a.auth.Login(ctx, userName, string(password)); err != nil {
		a.alert(err)
		return err
	}

	fmt.Fprintln(a.out, "Login successful!")
	return a.Home(ctx)
}

// Logout notifies the backend, removes the stored token and clears the
// locally held profile data.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.alert(err)
		return err
	}
	a.profile.Reset()
	fmt.Fprintln(a.out, "Logged out successfully!")
	return nil
}
