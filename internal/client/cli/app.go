package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hady-bs/blog-mobile-application/internal/client/api"
	"github.com/hady-bs/blog-mobile-application/internal/client/config"
	"github.com/hady-bs/blog-mobile-application/internal/client/fetch"
	"github.com/hady-bs/blog-mobile-application/internal/client/models"
	"github.com/hady-bs/blog-mobile-application/internal/client/notify"
	"github.com/hady-bs/blog-mobile-application/internal/client/services"
	"github.com/hady-bs/blog-mobile-application/internal/client/session"
	"github.com/hady-bs/blog-mobile-application/internal/client/store"
	"github.com/hady-bs/blog-mobile-application/internal/client/theme"
	"github.com/hady-bs/blog-mobile-application/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// App wires the session, theme, notification and data layers together and
// drives the terminal views.
type App struct {
	config  *config.Config
	auth    services.AuthService
	blogs   services.BlogService
	session *session.Session
	themes  *theme.Manager
	bridge  *notify.Bridge
	log     logging.Logger

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer

	Mode Mode

	// One fetch resource per data-bearing view. Mount and refresh go
	// through the same resource, so a stale response can never overwrite
	// a newer one.
	home     *fetch.Resource[models.BlogsPage]
	allBlogs *fetch.Resource[models.BlogsPage]
	profile  *fetch.Resource[models.Profile]
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {

	db, err := store.Open(ctx, c.StorePath)
	if err != nil {
		log.Error(ctx, "error initializing settings database", "error", err)
		return nil, err
	}
	repo := store.NewSQLiteRepository(db)

	sess := session.New(repo)
	if err := sess.Init(ctx); err != nil {
		db.Close()
		return nil, err
	}

	themes := theme.NewManager(repo, theme.StaticAppearance{Current: theme.SchemeDark}, log)
	if err := themes.Init(ctx); err != nil {
		db.Close()
		return nil, err
	}

	bridge := notify.NewBridge(ctx, &notify.TerminalNotifier{Out: os.Stdout}, log)

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)

	a := &App{
		config:  c,
		auth:    services.NewAuthService(apiClient, repo, sess),
		blogs:   services.NewBlogService(apiClient, repo),
		session: sess,
		themes:  themes,
		bridge:  bridge,
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	// Background fetch failures escalate to a notification in addition to
	// the inline error state; direct user actions do not.
	a.home = fetch.New[models.BlogsPage](log, a.notifyFetchError("Failed to fetch blogs"))
	a.allBlogs = fetch.New[models.BlogsPage](log, a.notifyFetchError("Failed to fetch blogs"))
	a.profile = fetch.New[models.Profile](log, a.notifyFetchError("Failed to fetch profile"))

	return a, nil
}

func (a *App) notifyFetchError(prefix string) fetch.ErrorHook {
	return func(ctx context.Context, err error) {
		_ = a.bridge.Notify(ctx, "Error", fmt.Sprintf("%s: %v", prefix, err))
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	defer a.themes.Close()

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	_ = a.Home(ctx)
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin), a.out)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

// StartOnlineStatusWatcher periodically probes the backend and tracks
// reachability. Purely informational; no request is retried.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := a.auth.Ping(ctx); err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) getStatus() string {
	s := string(a.themes.ColorScheme())
	if a.isLoggedIn() {
		s += " logged-in"
	}
	if a.Mode != "" {
		s += " " + string(a.Mode)
	}
	return "(" + s + ")"
}

// errorMessage maps service errors to the user-facing strings the views
// show.
func (a *App) errorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrNoToken):
		return "No token found. Please login again."
	case errors.Is(err, services.ErrEmptyContent):
		return "Please enter some content for the blog"
	case errors.Is(err, services.ErrMissingFields):
		return "Please fill in all fields"
	case errors.Is(err, api.ErrUnavailable):
		return "Network error. Please try again."
	default:
		return err.Error()
	}
}

// alert surfaces a direct-action failure as a blocking message.
func (a *App) alert(err error) {
	fmt.Fprintf(a.out, "Error: %s\n", a.errorMessage(err))
}
