package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"medadvisor/internal/client/models"
	"medadvisor/internal/client/repositories/sessiondata"
	"medadvisor/internal/common"
	"medadvisor/internal/logging"
)

// State names the store's position in its lifecycle. A store starts
// Uninitialized, passes through Initializing exactly once, and then moves
// between Authenticated and Anonymous via login and logout.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateInitializing  State = "initializing"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// identityKey is the single durable-cache entry holding the JSON-serialized
// identity.
const identityKey = "identity"

// Snapshot is the momentary view of the session consumed by guards and
// views. IsLoading is true only before initialization completes and while a
// login or registration call is in flight.
type Snapshot struct {
	Identity  *models.Identity
	IsLoading bool
}

// API is the subset of the transport client the store drives.
type API interface {
	Login(ctx context.Context, email, password string) (*models.Identity, error)
	Register(ctx context.Context, email, password, username string) (*models.Identity, error)
	Logout(ctx context.Context) error
}

// Store is the single source of truth for who is logged in. It owns the
// Identity exclusively; views receive copies through Snapshot and request
// changes through the operations below. Every transition that touches the
// identity writes through to the durable cache before returning.
type Store struct {
	api   API
	cache sessiondata.Repository
	log   logging.Logger

	mu          sync.Mutex
	state       State
	identity    *models.Identity
	loading     bool
	initialized bool
}

func NewStore(api API, cache sessiondata.Repository, log logging.Logger) *Store {
	return &Store{
		api:   api,
		cache: cache,
		log:   log,
		state: StateUninitialized,
	}
}

// Snapshot returns the current session view. The identity is copied so
// callers cannot mutate the store's record.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Identity: s.identity.Clone(), IsLoading: s.loading || !s.initialized}
}

// State returns the store's lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Initialize reconciles the store with the durable cache. It runs once per
// process lifetime; later calls are no-ops. A missing cache entry yields
// Anonymous. A present but malformed or invalid entry is discarded silently
// (logged, never surfaced) and also yields Anonymous.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return
	}
	s.state = StateInitializing
	defer func() { s.initialized = true }()

	raw, err := s.cache.Get(ctx, identityKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read cached identity", "error", err)
		s.state = StateAnonymous
		return
	}
	if raw == nil {
		s.state = StateAnonymous
		return
	}

	var ident models.Identity
	if err := json.Unmarshal(raw, &ident); err != nil || !ident.Valid() {
		s.log.Warn(ctx, "discarding invalid cached identity", "error", err)
		if err := s.cache.Delete(ctx, identityKey); err != nil {
			s.log.Warn(ctx, "failed to clear invalid cached identity", "error", err)
		}
		s.state = StateAnonymous
		return
	}

	s.identity = &ident
	s.state = StateAuthenticated
}

// Login authenticates and, on success, persists the returned identity and
// transitions to Authenticated. On any failure the state is left unchanged.
// The loading flag is set for the duration of the call.
func (s *Store) Login(ctx context.Context, email, password string) error {
	return s.authenticate(ctx, func(ctx context.Context) (*models.Identity, error) {
		return s.api.Login(ctx, email, password)
	})
}

// Register has the same contract as Login against the registration
// endpoint; success transitions directly to Authenticated.
func (s *Store) Register(ctx context.Context, email, password, username string) error {
	return s.authenticate(ctx, func(ctx context.Context) (*models.Identity, error) {
		return s.api.Register(ctx, email, password, username)
	})
}

func (s *Store) authenticate(ctx context.Context, call func(context.Context) (*models.Identity, error)) error {
	s.setLoading(true)
	defer s.setLoading(false)

	ident, err := call(ctx)
	if err != nil {
		return err
	}
	if !ident.Valid() {
		return common.ErrInvalidServerResponse
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persistLocked(ctx, ident); err != nil {
		// The server session is live; losing the local cache only costs the
		// next restart a login.
		s.log.Warn(ctx, "failed to persist identity", "error", err)
	}
	s.identity = ident
	s.state = StateAuthenticated
	s.log.Info(ctx, "session established", "user", ident.ID)
	return nil
}

// Logout drops the session. The server call is best-effort: the durable
// cache is cleared and the state set to Anonymous no matter what, so a
// network failure can never leave the client stuck authenticated.
func (s *Store) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.log.Warn(ctx, "server logout failed", "error", err)
	}
	s.Invalidate(ctx)
}

// Invalidate clears the durable cache and in-memory identity and moves the
// store to Anonymous. It backs both logout and the transport layer's 401
// side effect.
func (s *Store) Invalidate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cache.Delete(ctx, identityKey); err != nil {
		s.log.Warn(ctx, "failed to clear cached identity", "error", err)
	}
	s.identity = nil
	s.state = StateAnonymous
}

// UpdateIdentity overwrites the in-memory and durable identity wholesale.
// No validation and no server round-trip happen here: the caller has
// already persisted the change server-side.
func (s *Store) UpdateIdentity(ctx context.Context, ident *models.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persistLocked(ctx, ident); err != nil {
		return err
	}
	s.identity = ident.Clone()
	return nil
}

func (s *Store) persistLocked(ctx context.Context, ident *models.Identity) error {
	raw, err := json.Marshal(ident)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	return s.cache.Set(ctx, identityKey, raw)
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
