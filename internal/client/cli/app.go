package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/fitsched/internal/client/api"
	"github.com/dmitrijs2005/fitsched/internal/client/config"
	"github.com/dmitrijs2005/fitsched/internal/client/localdb"
	"github.com/dmitrijs2005/fitsched/internal/client/models"
	"github.com/dmitrijs2005/fitsched/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/fitsched/internal/client/services"
	"github.com/dmitrijs2005/fitsched/internal/client/tokenstore"
	"github.com/dmitrijs2005/fitsched/internal/common"
	"github.com/dmitrijs2005/fitsched/internal/logging"
)

type workoutAPI interface {
	GetWorkoutPlans(ctx context.Context) ([]models.WorkoutPlan, error)
	CreateWorkoutPlan(ctx context.Context, req models.CreateWorkoutPlanRequest) (*models.WorkoutPlan, error)
	UpdateWorkoutSession(ctx context.Context, id int64, status models.SessionStatus, notes string) (*models.UpdateSessionStatusResult, error)
	GetWorkoutSessions(ctx context.Context) ([]models.WorkoutSession, error)
}

type calendarAPI interface {
	SyncWithGoogle(ctx context.Context) (*models.SyncResult, error)
	GetCalendarEvents(ctx context.Context) ([]models.CalendarEvent, error)
}

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	auth     services.AuthService
	profile  services.ProfileService
	workouts workoutAPI
	calendar calendarAPI
	reader   *bufio.Reader
	out      io.Writer

	// expiredNotice is set once the user has been told a live session ended.
	expiredNotice bool
}

// NewApp opens local storage and wires the API client and services.
// An empty DBPath keeps the session in memory only.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewText(os.Stderr, c.LogLevel)
	app := &App{
		config: c,
		logger: logger.With("module", "cli"),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	var (
		tokens tokenstore.Store
		meta   metadata.Repository
	)
	if c.DBPath == "" {
		tokens = tokenstore.NewMemoryStore()
		meta = metadata.NewMemoryRepository()
	} else {
		db, err := localdb.Open(ctx, c.DBPath)
		if err != nil {
			return nil, fmt.Errorf("error initializing database: %w", err)
		}
		app.db = db
		tokens = tokenstore.NewSQLiteStore(db)
		meta = metadata.NewSQLiteRepository(db)
	}

	client, err := api.New(c.APIBaseURL, tokens, api.Options{
		Logger:               logger,
		Timeout:              c.RequestTimeout,
		OnSessionInvalidated: app.onSessionInvalidated,
	})
	if err != nil {
		app.Close()
		return nil, err
	}
	logger.Debug(ctx, "api client ready", "base_url", client.BaseURL(), "db", c.DBPath)

	app.auth = services.NewAuthService(client.Auth(), tokens, meta, logger)
	app.profile = services.NewProfileService(client.Workouts())
	app.workouts = client.Workouts()
	app.calendar = client.Calendar()
	return app, nil
}

// Run restores the previous session and blocks in the REPL until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Welcome to fitsched CLI (type 'help' for commands)")
	a.Restore(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the local database, if one is open.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
		a.db = nil
	}
}

// Restore picks up the session stored by a previous run.
func (a *App) Restore(ctx context.Context) {
	u, err := a.auth.Restore(ctx)
	switch {
	case err == nil:
		printlnFn(fmt.Sprintf("Welcome back, %s", displayName(u)))
	case errors.Is(err, common.ErrNotLoggedIn):
		// nothing stored
	default:
		a.logger.Warn(ctx, "session restore failed", "error", err)
		printlnFn("Could not restore the previous session:", err)
	}
}

func (a *App) isLoggedIn() bool {
	_, ok := a.auth.CurrentUser()
	return ok
}

func (a *App) getStatus() string {
	u, ok := a.auth.CurrentUser()
	if !ok {
		return "(guest)"
	}
	return fmt.Sprintf("(%s)", displayName(u))
}

// onSessionInvalidated runs for every 401. A guest whose credentials were
// rejected never had a session, so only a live one gets the notice.
func (a *App) onSessionInvalidated(ctx context.Context) {
	_, live := a.auth.CurrentUser()
	a.auth.SessionInvalidated(ctx)
	if live {
		a.expiredNotice = true
		printlnFn("Session expired. Please log in again.")
	}
}

func displayName(u *models.User) string {
	switch {
	case u.Username != "":
		return u.Username
	case u.Email != "":
		return u.Email
	default:
		return string(u.ID)
	}
}

// report prints a failed command and returns err. A 401 that ended a live
// session has already been announced by onSessionInvalidated.
func (a *App) report(ctx context.Context, what string, err error) error {
	a.logger.Debug(ctx, what+" failed", "error", err)
	if errors.Is(err, api.ErrUnauthorized) && a.expiredNotice {
		a.expiredNotice = false
		return err
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		printlnFn(fmt.Sprintf("%s failed: %s", what, apiErr.Message))
		return err
	}
	printlnFn(fmt.Sprintf("%s failed: %v", what, err))
	return err
}
