package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/caremate-ai/caremate/internal/client/api"
	"github.com/caremate-ai/caremate/internal/client/config"
	"github.com/caremate-ai/caremate/internal/client/credstore"
	"github.com/caremate-ai/caremate/internal/client/models"
	"github.com/caremate-ai/caremate/internal/client/services"
	"github.com/caremate-ai/caremate/internal/client/session"
	"github.com/caremate-ai/caremate/internal/client/storage"
	"github.com/caremate-ai/caremate/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// App wires the CareMate client together: local storage, the gating session,
// the backend client, and the services the shell commands call.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	client  api.Client
	creds   *credstore.Store
	session *session.Session
	history *services.History
	chat    *services.ChatService
	predict *services.PredictService
	doctors *services.DoctorService

	reader *bufio.Reader
	Mode   Mode

	lastIntake     *models.Intake
	lastPrediction *models.Prediction
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	client := api.NewHTTPClient(c.EndpointURL, c.RequestTimeout)
	creds := credstore.New(db, c.EnableDemoAccount)
	flags := storage.NewFlags(storage.NewSQLiteRepository(db))
	sess := session.New(flags, creds, log)
	history := services.NewHistory()

	return &App{
		config:  c,
		log:     log,
		db:      db,
		client:  client,
		creds:   creds,
		session: sess,
		history: history,
		chat:    services.NewChatService(client, log),
		predict: services.NewPredictService(client, history, log),
		doctors: services.NewDoctorService(client, history, log),
		reader:  bufio.NewReader(os.Stdin),
		Mode:    ModeOffline,
	}, nil
}

// Run reconciles the gating state from storage, starts the connectivity
// watcher, and hands control to the REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.session.Reconcile(ctx); err != nil {
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(watchCtx, a.config.HealthCheckInterval)

	printlnFn("Welcome to CareMate (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
	return nil
}

// Close flushes pending session writes and releases the database and the
// backend client.
func (a *App) Close() {
	a.session.Flush()
	if err := a.client.Close(); err != nil {
		a.log.Warn(context.Background(), "failed to close backend client", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "failed to close database", "error", err)
	}
}

func (a *App) state() session.State {
	return a.session.State()
}

// status builds the prompt suffix: the current user (if any) and the
// connectivity mode.
func (a *App) status() string {
	s := string(a.Mode)
	if u := a.session.CurrentUser(); u != nil {
		s = u.Email + " " + s
	}
	return "(" + s + ")"
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

// StartOnlineStatusWatcher probes the backend /health endpoint on the given
// interval and flips the connectivity mode accordingly. It returns when ctx
// is cancelled.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.client.Health(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
