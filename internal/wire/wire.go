// Package wire provides dependency injection for the WorkerHub application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync"

	"github.com/fatih/color"

	cliadapter "github.com/example/workerhub/internal/adapters/cli"
	"github.com/example/workerhub/internal/adapters/httpapi"
	"github.com/example/workerhub/internal/adapters/httpauth"
	"github.com/example/workerhub/internal/adapters/notify"
	"github.com/example/workerhub/internal/adapters/sqlite"
	"github.com/example/workerhub/internal/app"
	"github.com/example/workerhub/internal/config"
	"github.com/example/workerhub/internal/db"
	"github.com/example/workerhub/internal/models"
	"github.com/example/workerhub/internal/ports/primary"
)

var (
	cfg                *config.Config
	logger             *slog.Logger
	database           *sql.DB
	marketplaceService *app.MarketplaceServiceImpl
	accountService     primary.AccountService
	authService        *app.AuthServiceImpl
	configOnce         sync.Once
	once               sync.Once
)

// Config returns the effective configuration.
func Config() *config.Config {
	configOnce.Do(initConfig)
	return cfg
}

// Logger returns the process-wide structured logger.
func Logger() *slog.Logger {
	configOnce.Do(initConfig)
	return logger
}

// MarketplaceService returns the singleton MarketplaceService instance.
func MarketplaceService() primary.MarketplaceService {
	once.Do(initServices)
	return marketplaceService
}

// AccountService returns the singleton AccountService instance.
func AccountService() primary.AccountService {
	once.Do(initServices)
	return accountService
}

// AuthService returns the singleton AuthService instance backing the dev server.
func AuthService() *app.AuthServiceImpl {
	once.Do(initServices)
	return authService
}

// Database returns the shared database handle.
func Database() *sql.DB {
	once.Do(initServices)
	return database
}

// ActorLabel identifies the active session for logging, e.g. "worker:1".
func ActorLabel(sess models.Session) string {
	if sess == nil {
		return ""
	}
	return string(sess.Type()) + ":" + strconv.FormatInt(sess.ActorID(), 10)
}

func initConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		fatal(slog.Default(), "failed to locate home directory", err)
	}

	cfg, err = config.Load(home)
	if err != nil {
		fatal(slog.Default(), "failed to load configuration", err)
	}

	level, _ := cfg.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, opts))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	slog.SetDefault(logger)
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	configOnce.Do(initConfig)

	dbPath := cfg.DBPath
	if dbPath == "" {
		var err error
		dbPath, err = db.DefaultPath()
		if err != nil {
			fatal(logger, "failed to resolve database path", err)
		}
	}

	var err error
	database, err = db.Open(dbPath)
	if err != nil {
		fatal(logger, "failed to initialize database", err)
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	snapshotRepo := sqlite.NewSnapshotRepository(database)
	authUserRepo := sqlite.NewAuthUserRepository(database)
	gateway := httpauth.NewGateway(cfg.AuthBaseURL, cfg.AuthTimeout(), logger)
	notifier := notify.NewConsoleNotifier(color.Output)

	// Create effect executor and record store
	executor := app.NewEffectExecutor(snapshotRepo, notifier, logger)
	store := app.NewRecordStore(snapshotRepo, executor, logger)
	if err := store.Load(context.Background()); err != nil {
		fatal(logger, "failed to load marketplace data", err)
	}

	// Create services (primary ports implementation)
	marketplaceService = app.NewMarketplaceService(store)
	accountService = app.NewAccountService(gateway, marketplaceService, logger)
	authService = app.NewAuthService(authUserRepo, logger)
}

// MarketplaceAdapter returns a new MarketplaceAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func MarketplaceAdapter() *cliadapter.MarketplaceAdapter {
	return MarketplaceAdapterWithOutput(color.Output)
}

// MarketplaceAdapterWithOutput returns a new MarketplaceAdapter writing to the given output.
func MarketplaceAdapterWithOutput(out io.Writer) *cliadapter.MarketplaceAdapter {
	once.Do(initServices)
	return cliadapter.NewMarketplaceAdapter(marketplaceService, out)
}

// AccountAdapter returns a new AccountAdapter writing to stdout.
func AccountAdapter() *cliadapter.AccountAdapter {
	once.Do(initServices)
	return cliadapter.NewAccountAdapter(accountService, color.Output)
}

// APIServer returns the development auth HTTP server.
func APIServer() *httpapi.Server {
	once.Do(initServices)
	return httpapi.NewServer(authService, logger, cfg.AllowedOrigins)
}

func fatal(l *slog.Logger, msg string, err error) {
	l.Error(msg, "error", err)
	os.Exit(1)
}
