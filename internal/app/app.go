package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/linkshelf/internal/config"
	"github.com/MrSnakeDoc/linkshelf/internal/httpserver"
	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/mw"
	"github.com/MrSnakeDoc/linkshelf/internal/httpserver/templates"
	"github.com/MrSnakeDoc/linkshelf/internal/index"
	"github.com/MrSnakeDoc/linkshelf/internal/logger"
	"github.com/MrSnakeDoc/linkshelf/internal/redis"
	"github.com/MrSnakeDoc/linkshelf/internal/sources/seed"
	redisstore "github.com/MrSnakeDoc/linkshelf/internal/store/redis"
	"github.com/MrSnakeDoc/linkshelf/internal/usecase"
	"github.com/MrSnakeDoc/linkshelf/internal/version"
)

const (
	storageRedis  = "redis"
	storageMemory = "memory"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	bookmarks   *usecase.Bookmarks
}

// New loads the configuration from the environment and builds the application.
func New(ctx context.Context) (*App, error) {
	cfg := config.Load()
	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)
	return Build(ctx, cfg, loggerClient)
}

// Build wires storage, use cases and the HTTP server from cfg.
func Build(ctx context.Context, cfg *config.Config, loggerClient logger.Logger) (*App, error) {
	var (
		repo        usecase.BookmarkRepository
		pinger      deps.Pinger
		redisClient *goredis.Client
		mode        = storageMemory
	)

	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, redis.OptionsFromConfig(cfg.Redis), loggerClient)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		store := redisstore.NewStore(client)
		repo, pinger, redisClient, mode = store, store, client, storageRedis
	} else {
		loggerClient.Warn("no redis address configured, bookmarks are kept in memory only")
		repo = index.NewMemoryIndex()
	}

	renderer, err := templates.New()
	if err != nil {
		if redisClient != nil {
			_ = redisClient.Close()
		}
		return nil, err
	}

	bookmarks := usecase.NewBookmarks(repo)

	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      time.Now,
		AllowedHosts: cfg.AllowedHosts,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		Bookmarks:    bookmarks,
		Renderer:     renderer,
		Session: mw.SessionConfig{
			Secret:        []byte(cfg.SessionSecret),
			DefaultUserID: cfg.DefaultUserID,
			TTL:           cfg.SessionTTL,
			Secure:        cfg.SecureCookies,
		},
		RateLimit: mw.RateLimitConfig{
			Burst:        cfg.RateLimitBurst,
			RefillPerMin: cfg.RateLimitRefillPerMin,
			MaxEntries:   10000,
			TrustProxy:   cfg.TrustProxy,
		},
		StorageMode: mode,
		Storage:     pinger,
	}

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      httpserver.New(cfg, loggerClient, d),
		redisClient: redisClient,
		bookmarks:   bookmarks,
	}, nil
}

// Handler exposes the router (tests).
func (a *App) Handler() http.Handler { return a.server.Handler() }

// Seed imports the configured seed file, if any.
func (a *App) Seed(ctx context.Context) error {
	if a.cfg.SeedFile == "" {
		return nil
	}
	file, err := seed.NewLoader(a.cfg.SeedFile).Load()
	if err != nil {
		return err
	}
	stats, err := seed.NewImporter(a.bookmarks, a.logger).Import(ctx, file)
	if err != nil {
		return err
	}
	a.logger.Info("seed file imported",
		logger.String("file", a.cfg.SeedFile),
		logger.Int("created", stats.Created),
		logger.Int("rejected", stats.Rejected))
	return nil
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting linkshelf v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("linkshelf %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Seed(ctx); err != nil {
		return fmt.Errorf("failed to import seed file: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		a.Close()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.Close()
	a.logger.Info("✅ linkshelf stopped cleanly")
	return nil
}

// Close releases the storage connection.
func (a *App) Close() {
	if a.redisClient == nil {
		return
	}
	if err := a.redisClient.Close(); err != nil {
		a.logger.Warnf("failed to close redis: %v", err)
		return
	}
	a.redisClient = nil
	a.logger.Info("✅ Redis closed cleanly")
}
