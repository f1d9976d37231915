package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medadvisor/internal/client/api"
	"medadvisor/internal/client/models"
	"medadvisor/internal/client/repositories/sessiondata"
	"medadvisor/internal/client/session"
	"medadvisor/internal/logging"
)

type fakeSessionAPI struct {
	loginIdent    *models.Identity
	loginErr      error
	registerIdent *models.Identity
	registerErr   error
	logoutErr     error
	loginCalls    int
}

func (f *fakeSessionAPI) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	f.loginCalls++
	return f.loginIdent, f.loginErr
}

func (f *fakeSessionAPI) Register(ctx context.Context, email, password, username string) (*models.Identity, error) {
	return f.registerIdent, f.registerErr
}

func (f *fakeSessionAPI) Logout(ctx context.Context) error { return f.logoutErr }

func newTestApp(t *testing.T, fake *fakeSessionAPI) *App {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE session_data (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	store := session.NewStore(fake, sessiondata.NewSQLiteRepository(db), log)
	store.Initialize(context.Background())

	return &App{
		log:    log,
		db:     db,
		store:  store,
		reader: bufio.NewReader(strings.NewReader("")),
		view:   ViewHome,
	}
}

func stubInput(t *testing.T, texts []string, password string) {
	t.Helper()
	origText, origPw := getSimpleText, getPassword
	i := 0
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		v := texts[i]
		i++
		return v, nil
	}
	getPassword = func(w io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPw })
}

func TestLogin_Success(t *testing.T) {
	lines := muteOutput(t)
	fake := &fakeSessionAPI{loginIdent: &models.Identity{ID: "1", Email: "a@b.com", Username: "alice"}}
	a := newTestApp(t, fake)
	stubInput(t, []string{"a@b.com"}, "pw")

	require.NoError(t, a.Login(context.Background()))

	assert.Contains(t, *lines, "Login successful.")
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, ViewHome, a.view)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	lines := muteOutput(t)
	fake := &fakeSessionAPI{}
	a := newTestApp(t, fake)
	stubInput(t, []string{""}, "")

	require.NoError(t, a.Login(context.Background()))

	assert.Contains(t, *lines, "Email and password are required.")
	assert.Zero(t, fake.loginCalls)
	assert.False(t, a.isLoggedIn())
}

func TestLogin_ServerRejects(t *testing.T) {
	lines := muteOutput(t)
	fake := &fakeSessionAPI{loginErr: &api.ServerError{Status: 401, Message: "Login failed. Please check your credentials."}}
	a := newTestApp(t, fake)
	stubInput(t, []string{"a@b.com"}, "wrong")

	require.NoError(t, a.Login(context.Background()))

	assert.Contains(t, *lines, "Login failed. Please check your credentials.")
	assert.False(t, a.isLoggedIn())
}

func TestLogin_RestoresPendingView(t *testing.T) {
	muteOutput(t)
	fake := &fakeSessionAPI{loginIdent: &models.Identity{ID: "1", Email: "a@b.com", Username: "alice"}}
	a := newTestApp(t, fake)
	a.RedirectToLogin(ViewHistory)
	stubInput(t, []string{"a@b.com"}, "pw")

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, ViewHistory, a.view, "user returns where they were headed")
	assert.Empty(t, a.pendingView)
}

func TestRegister_Success(t *testing.T) {
	lines := muteOutput(t)
	fake := &fakeSessionAPI{registerIdent: &models.Identity{ID: "2", Email: "b@c.com", Username: "bob"}}
	a := newTestApp(t, fake)
	stubInput(t, []string{"b@c.com", "bob"}, "pw")

	require.NoError(t, a.Register(context.Background()))

	assert.Contains(t, *lines, "Welcome, bob")
	assert.True(t, a.isLoggedIn())
}

func TestRegister_ServerRejects(t *testing.T) {
	lines := muteOutput(t)
	fake := &fakeSessionAPI{registerErr: &api.ServerError{Status: 409, Message: "Registration failed. Please try again."}}
	a := newTestApp(t, fake)
	stubInput(t, []string{"b@c.com", "bob"}, "pw")

	require.NoError(t, a.Register(context.Background()))

	assert.Contains(t, *lines, "Registration failed. Please try again.")
	assert.False(t, a.isLoggedIn())
}

func TestLogout_ClearsSessionEvenIfServerFails(t *testing.T) {
	lines := muteOutput(t)
	fake := &fakeSessionAPI{
		loginIdent: &models.Identity{ID: "1", Email: "a@b.com", Username: "alice"},
		logoutErr:  errors.New("boom"),
	}
	a := newTestApp(t, fake)
	stubInput(t, []string{"a@b.com"}, "pw")
	require.NoError(t, a.Login(context.Background()))

	require.NoError(t, a.Logout(context.Background()))

	assert.Contains(t, *lines, "Logged out.")
	assert.False(t, a.isLoggedIn())
}

func TestRedirectToLogin(t *testing.T) {
	lines := muteOutput(t)
	a := newTestApp(t, &fakeSessionAPI{})
	a.view = ViewProfile

	a.RedirectToLogin(ViewProfile)

	assert.Equal(t, ViewLogin, a.CurrentView())
	assert.Equal(t, ViewProfile, a.pendingView)
	assert.Contains(t, *lines, "Your session has expired. Please log in again.")
}

func TestGuarded_RedirectsAnonymousThroughLogin(t *testing.T) {
	lines := muteOutput(t)
	fake := &fakeSessionAPI{loginIdent: &models.Identity{ID: "1", Email: "a@b.com", Username: "alice"}}
	a := newTestApp(t, fake)
	stubInput(t, []string{"a@b.com"}, "pw")

	ran := false
	err := a.guarded(context.Background(), ViewPredict, func(ctx context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)

	assert.Contains(t, *lines, "You need to log in first.")
	assert.True(t, ran, "the requested view runs after a successful login")
	assert.Equal(t, ViewPredict, a.view)
}

func TestGuarded_StopsWhenLoginFails(t *testing.T) {
	muteOutput(t)
	fake := &fakeSessionAPI{loginErr: &api.ServerError{Status: 401, Message: "no"}}
	a := newTestApp(t, fake)
	stubInput(t, []string{"a@b.com"}, "pw")

	ran := false
	err := a.guarded(context.Background(), ViewPredict, func(ctx context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, ran)
}

func TestGuarded_RunsDirectlyWhenAuthenticated(t *testing.T) {
	muteOutput(t)
	fake := &fakeSessionAPI{loginIdent: &models.Identity{ID: "1", Email: "a@b.com", Username: "alice"}}
	a := newTestApp(t, fake)
	stubInput(t, []string{"a@b.com"}, "pw")
	require.NoError(t, a.Login(context.Background()))
	fake.loginCalls = 0

	ran := false
	err := a.guarded(context.Background(), ViewHistory, func(ctx context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Zero(t, fake.loginCalls)
	assert.Equal(t, ViewHistory, a.view)
}
