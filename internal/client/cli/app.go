package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"medadvisor/internal/client/api"
	"medadvisor/internal/client/config"
	"medadvisor/internal/client/guard"
	"medadvisor/internal/client/repositories/sessiondata"
	"medadvisor/internal/client/services"
	"medadvisor/internal/client/session"
	"medadvisor/internal/client/storage"
	"medadvisor/internal/logging"
)

// View names used for guard decisions and 401 redirects. ViewLogin must
// match what the transport layer redirects to.
const (
	ViewHome    = "home"
	ViewLogin   = api.LoginView
	ViewPredict = "predict"
	ViewHistory = "history"
	ViewProfile = "profile"
)

type App struct {
	config      *config.Config
	log         logging.Logger
	db          *sql.DB
	api         *api.HTTPClient
	store       *session.Store
	predictions *services.PredictionService
	profile     *services.ProfileService
	reader      *bufio.Reader

	view        string
	pendingView string
}

// NewApp wires the client together: local database, transport client with
// its 401 side effects pointed back at the session store and the app's
// navigation, and the services on top.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	a := &App{
		config: cfg,
		log:    log,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		view:   ViewHome,
	}

	apiClient, err := api.NewHTTPClient(cfg.ServerBaseURL,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(log),
		api.WithSessionInvalidator(func() {
			a.store.Invalidate(context.Background())
		}),
		api.WithRedirector(a),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a.api = apiClient
	a.store = session.NewStore(apiClient, sessiondata.NewSQLiteRepository(db), log)
	a.predictions = services.NewPredictionService(apiClient, db, log)
	a.profile = services.NewProfileService(apiClient, a.store, log)
	return a, nil
}

// Run restores the cached session and enters the REPL. It blocks until the
// user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.store.Initialize(ctx)
	if ident := a.store.Snapshot().Identity; ident != nil {
		printlnFn("Welcome back,", ident.Username)
	}

	a.Root(ctx)
}

// Close releases the transport and the local database.
func (a *App) Close() {
	_ = a.api.Close()
	_ = a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.store.Snapshot().Identity != nil
}

// CurrentView and RedirectToLogin make the app the transport layer's
// navigation target for the global 401 rule.
func (a *App) CurrentView() string {
	return a.view
}

func (a *App) RedirectToLogin(from string) {
	a.view = ViewLogin
	a.pendingView = from
	printlnFn("Your session has expired. Please log in again.")
}

// guarded runs fn only when the route guard admits the given view. While
// the session is still loading nothing but a neutral indicator is shown.
// Without an identity the user is sent through the login flow first and,
// if it succeeds, returned to the view they asked for.
func (a *App) guarded(ctx context.Context, view string, fn func(context.Context) error) error {
	d := guard.Evaluate(a.store.Snapshot(), view)
	switch d.Kind {
	case guard.Loading:
		printlnFn("Loading...")
		return nil
	case guard.Redirect:
		a.view = ViewLogin
		a.pendingView = d.From
		printlnFn("You need to log in first.")
		if err := a.Login(ctx); err != nil {
			return err
		}
		if a.store.Snapshot().Identity == nil {
			return nil
		}
	}
	a.view = view
	a.pendingView = ""
	return fn(ctx)
}

func (a *App) getStatus() string {
	if ident := a.store.Snapshot().Identity; ident != nil {
		return "(" + ident.Username + ")"
	}
	return ""
}
