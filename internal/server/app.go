// Package server wires the duosync server together: storage, the change
// broker, services and the gRPC and HTTP endpoints, with graceful shutdown
// on SIGINT, SIGTERM or SIGQUIT.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/duosync/internal/logging"
	"github.com/dmitrijs2005/duosync/internal/server/broker"
	"github.com/dmitrijs2005/duosync/internal/server/config"
	"github.com/dmitrijs2005/duosync/internal/server/httpapi"
	"github.com/dmitrijs2005/duosync/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/duosync/internal/server/services"
	"github.com/redis/go-redis/v9"

	gs "github.com/dmitrijs2005/duosync/internal/server/grpc"
)

const tokenPurgeInterval = time.Hour

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	redis           *redis.Client
	broker          broker.Broker
	relay           *broker.RedisBroker
	userService     *services.UserService
	documentService *services.DocumentService
	photoService    *services.PhotoService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.New(os.Stdout, "duosync-server", c.LogLevel, false)

	db, m, err := repomanager.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	app := &App{config: c, logger: logger, db: db}

	if c.RedisURL != "" {
		rc, err := broker.NewRedisClient(ctx, c.RedisURL)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("broker init error: %w", err)
		}
		app.redis = rc
		app.relay = broker.NewRedisBroker(rc, logger)
		app.broker = app.relay
	} else {
		app.broker = broker.NewHub()
	}

	app.userService = services.NewUserService(db, m, c, logger)
	app.documentService = services.NewDocumentService(db, m, app.broker, logger)
	app.photoService = services.NewPhotoService(c, app.documentService, logger)

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.documentService, app.photoService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.db, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// purgeTokens drops expired refresh tokens on every tick until ctx ends.
func (app *App) purgeTokens(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if _, err := app.userService.PurgeExpiredTokens(ctx); err != nil && ctx.Err() == nil {
				app.logger.Warn(ctx, "token purge failed", "error", err.Error())
			}
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.purgeTokens(ctx, tokenPurgeInterval)
	}()

	if app.relay != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.relay.Run(ctx)
		}()
	}

	wg.Wait()

	app.close()
	app.logger.Info(context.Background(), "App stopped")
}

func (app *App) close() {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Warn(context.Background(), "redis close failed", "error", err.Error())
		}
	}
	if err := app.db.Close(); err != nil {
		app.logger.Warn(context.Background(), "db close failed", "error", err.Error())
	}
}
