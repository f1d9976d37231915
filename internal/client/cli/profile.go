package cli

import (
	"context"
	"os"

	"medadvisor/internal/client/api"
)

// Profile fetches and prints the server's copy of the profile.
func (a *App) Profile(ctx context.Context) error {
	return a.guarded(ctx, ViewProfile, func(ctx context.Context) error {
		ident, err := a.profile.Fetch(ctx)
		if err != nil {
			printlnFn(api.UserMessage(err))
			return nil
		}
		printlnFn("Email:   ", ident.Email)
		printlnFn("Username:", ident.Username)
		if ident.AvatarURL != "" {
			printlnFn("Avatar:  ", ident.AvatarURL)
		}
		return nil
	})
}

// SetName prompts for a new username and updates it server-side; the
// session store picks up the returned identity.
func (a *App) SetName(ctx context.Context) error {
	return a.guarded(ctx, ViewProfile, func(ctx context.Context) error {
		username, err := getSimpleText(a.reader, "Enter new username", os.Stdout)
		if err != nil {
			return err
		}
		ident, err := a.profile.UpdateUsername(ctx, username)
		if err != nil {
			printlnFn(api.UserMessage(err))
			return nil
		}
		printlnFn("Username updated to", ident.Username)
		return nil
	})
}

// Avatar uploads an image file as the new avatar. Size and type checks run
// locally before anything is sent.
func (a *App) Avatar(ctx context.Context, path string) error {
	return a.guarded(ctx, ViewProfile, func(ctx context.Context) error {
		if path == "" {
			printlnFn("Usage: avatar <path-to-image>")
			return nil
		}
		avatarURL, err := a.profile.UploadAvatar(ctx, path)
		if err != nil {
			printlnFn(api.UserMessage(err))
			return nil
		}
		printlnFn("Avatar updated:", avatarURL)
		return nil
	})
}

// WhoAmI prints the locally cached identity without touching the server.
func (a *App) WhoAmI(ctx context.Context) error {
	return a.guarded(ctx, ViewProfile, func(ctx context.Context) error {
		ident := a.store.Snapshot().Identity
		if ident == nil {
			printlnFn("Not logged in.")
			return nil
		}
		printlnFn(ident.Username, "<"+ident.Email+">")
		return nil
	})
}
