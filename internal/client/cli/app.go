package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/duosync/internal/client/client"
	"github.com/dmitrijs2005/duosync/internal/client/config"
	"github.com/dmitrijs2005/duosync/internal/client/services"
	"github.com/dmitrijs2005/duosync/internal/client/session"
	"github.com/dmitrijs2005/duosync/internal/logging"
	"github.com/dmitrijs2005/duosync/internal/remote"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	store        remote.Store
	authService  services.AuthService
	photoService services.PhotoService

	mu      sync.Mutex
	session *session.Session
	email   string
	unread  int
	Mode    Mode

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
}

func NewApp(c *config.Config, l logging.Logger) (*App, error) {
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, l)
	if err != nil {
		return nil, err
	}

	return &App{
		config:       c,
		logger:       l.With("module", "cli"),
		store:        apiClient,
		authService:  services.NewAuthService(apiClient),
		photoService: services.NewPhotoService(apiClient),
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		now:          time.Now,
	}, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "switched mode", "mode", string(mode))
	}
}

func (a *App) mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Mode
}

// Run starts the connectivity watcher and the REPL. On exit it pushes any
// pending changes and closes the connection.
func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)

	printlnFn("Welcome to duosync (type 'help' for commands)")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)

	if s := a.currentSession(); s != nil {
		if err := s.SignOut(ctx); err != nil {
			a.logger.Warn(ctx, "pending changes were not pushed", "error", err)
		}
	}
}

func (a *App) currentSession() *session.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

func (a *App) isLoggedIn() bool {
	return a.currentSession() != nil
}

func (a *App) sessionOptions() []session.Option {
	opts := []session.Option{
		session.WithLogger(a.logger),
		session.WithOnChange(a.onChange),
	}
	if c := a.config; c != nil {
		opts = append(opts,
			session.WithDebounceInterval(c.DebounceInterval),
			session.WithMessageTTL(c.MessageTTL),
			session.WithSweepInterval(c.SweepInterval),
		)
	}
	return opts
}

// onChange announces notifications that arrived from the partner.
func (a *App) onChange(snap session.Snapshot) {
	if snap.Own == nil {
		return
	}
	unread := 0
	for _, n := range snap.Own.Notifications {
		if !n.Read {
			unread++
		}
	}

	a.mu.Lock()
	grew := unread > a.unread
	a.unread = unread
	a.mu.Unlock()

	if grew {
		printlnFn(fmt.Sprintf("You have %d unread notification(s), type 'inbox' to see them", unread))
	}
}

// StartOnlineStatusWatcher pings the server every interval and flips Mode
// between online and offline until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.authService.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.mode() == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else if a.mode() != ModeOnline {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) getStatus() string {
	a.mu.Lock()
	email, mode, s := a.email, a.Mode, a.session
	a.mu.Unlock()

	st := ""
	if email != "" {
		st = email + " "
	}
	if mode != "" {
		st += string(mode)
	}
	if s != nil {
		if pending := s.Status().PendingWrites; pending > 0 {
			st += fmt.Sprintf(" pending:%d", pending)
		}
	}
	if st != "" {
		st = fmt.Sprintf("(%s)", st)
	}
	return st
}
