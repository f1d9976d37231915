package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"medadvisor/internal/client/models"
	"medadvisor/internal/client/session"
	"medadvisor/internal/filex"
	"medadvisor/internal/logging"
)

// User-facing validation messages for profile operations.
var (
	ErrEmptyUsername = errors.New("Username cannot be empty.")
)

// ProfileAPI is the transport surface the profile service needs.
type ProfileAPI interface {
	Profile(ctx context.Context) (*models.Identity, error)
	UpdateProfile(ctx context.Context, username string) (*models.Identity, error)
	UploadAvatar(ctx context.Context, filename string, image []byte) (string, error)
}

// IdentityStore is the slice of the session store the profile service
// writes through after a successful server-side change.
type IdentityStore interface {
	Snapshot() session.Snapshot
	UpdateIdentity(ctx context.Context, ident *models.Identity) error
}

// ProfileService fetches and mutates the user's profile. Every successful
// mutation is pushed into the session store, which owns the identity.
type ProfileService struct {
	api   ProfileAPI
	store IdentityStore
	log   logging.Logger
}

func NewProfileService(api ProfileAPI, store IdentityStore, log logging.Logger) *ProfileService {
	return &ProfileService{api: api, store: store, log: log}
}

// Fetch returns the server's copy of the profile.
func (s *ProfileService) Fetch(ctx context.Context) (*models.Identity, error) {
	return s.api.Profile(ctx)
}

// UpdateUsername renames the user server-side, then overwrites the cached
// identity with the server's response.
func (s *ProfileService) UpdateUsername(ctx context.Context, username string) (*models.Identity, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}

	ident, err := s.api.UpdateProfile(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateIdentity(ctx, ident); err != nil {
		s.log.Warn(ctx, "failed to persist updated identity", "error", err)
	}
	return ident, nil
}

// UploadAvatar validates the file client-side (image mime, 5MB cap),
// uploads it, and records the returned URL on the cached identity.
func (s *ProfileService) UploadAvatar(ctx context.Context, path string) (string, error) {
	image, err := filex.ReadAvatar(path)
	if err != nil {
		return "", err
	}

	avatarURL, err := s.api.UploadAvatar(ctx, filepath.Base(path), image)
	if err != nil {
		return "", err
	}

	ident := s.store.Snapshot().Identity
	if ident == nil {
		return "", fmt.Errorf("no active session")
	}
	ident.AvatarURL = avatarURL
	if err := s.store.UpdateIdentity(ctx, ident); err != nil {
		s.log.Warn(ctx, "failed to persist updated identity", "error", err)
	}
	return avatarURL, nil
}
