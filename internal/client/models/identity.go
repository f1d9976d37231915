// Package models defines the data shapes the client exchanges with the
// advisory backend.
package models

// Identity is the authenticated user's canonical profile record as known to
// this client. It is sourced from server responses and cached locally; only
// login, registration, and explicit profile updates replace it.
type Identity struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Valid reports whether the identity can be trusted as a session principal.
// The server must have supplied at least an id and an email.
func (i *Identity) Valid() bool {
	return i != nil && i.ID != "" && i.Email != ""
}

// Clone returns an independent copy so callers cannot mutate the cached
// identity through a shared pointer.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}
