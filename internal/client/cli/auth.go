package cli

import (
	"context"
	"os"

	"medadvisor/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates through the session
// store. Failures are reported as a single message; the session stays
// anonymous.
func (a *App) Login(ctx context.Context) error {
	a.view = ViewLogin

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	if email == "" || password == "" {
		printlnFn("Email and password are required.")
		return nil
	}

	if err := a.store.Login(ctx, email, password); err != nil {
		printlnFn(api.UserMessage(err))
		return nil
	}

	printlnFn("Login successful.")
	a.view = ViewHome
	if a.pendingView != "" {
		a.view = a.pendingView
		a.pendingView = ""
	}
	return nil
}

// Register prompts for email, password and username and creates an
// account. A successful registration logs the user straight in.
func (a *App) Register(ctx context.Context) error {
	a.view = ViewLogin

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	if email == "" || password == "" || username == "" {
		printlnFn("Email, password, and username are required.")
		return nil
	}

	if err := a.store.Register(ctx, email, password, username); err != nil {
		printlnFn(api.UserMessage(err))
		return nil
	}

	printlnFn("Welcome,", username)
	a.view = ViewHome
	return nil
}

// Logout drops the session locally no matter what the server says.
func (a *App) Logout(ctx context.Context) error {
	a.store.Logout(ctx)
	a.view = ViewHome
	a.pendingView = ""
	printlnFn("Logged out.")
	return nil
}
