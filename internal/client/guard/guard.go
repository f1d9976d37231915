// Package guard gates access to authenticated-only views. It is a pure
// function of the session snapshot and holds no state of its own.
package guard

import "medadvisor/internal/client/session"

type Kind string

const (
	// Loading: authentication state is not known yet; render a neutral
	// loading indicator and nothing else.
	Loading Kind = "loading"
	// Redirect: no identity; send the user to the login view, remembering
	// where they were headed.
	Redirect Kind = "redirect"
	// Render: identity present; show the protected content.
	Render Kind = "render"
)

// Decision is the guard's verdict for one navigation attempt. From carries
// the originally requested view on a redirect so the login flow can return
// the user afterward (best-effort).
type Decision struct {
	Kind Kind
	From string
}

// Evaluate decides what to do with a navigation to the given view under the
// given snapshot.
func Evaluate(snap session.Snapshot, requested string) Decision {
	if snap.IsLoading {
		return Decision{Kind: Loading}
	}
	if snap.Identity == nil {
		return Decision{Kind: Redirect, From: requested}
	}
	return Decision{Kind: Render}
}
