package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/resfinder/resfinder/internal/config"
	"github.com/resfinder/resfinder/internal/directory"
	"github.com/resfinder/resfinder/internal/httpserver"
	"github.com/resfinder/resfinder/internal/httpserver/deps"
	"github.com/resfinder/resfinder/internal/httpserver/mw"
	"github.com/resfinder/resfinder/internal/logger"
	"github.com/resfinder/resfinder/internal/seed"
	"github.com/resfinder/resfinder/internal/store"
	"github.com/resfinder/resfinder/internal/version"
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	server *httpserver.Server
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	docs := store.NewFileStore(cfg.DataDir)

	// Seed before Ensure: seeding only bootstraps documents that do not
	// exist yet, so an already-populated data dir is never touched.
	if cfg.SeedFile != "" {
		f, err := seed.Load(cfg.SeedFile)
		if err != nil {
			loggerClient.Errorf("Failed to load seed file: %v", err)
			os.Exit(1)
		}
		if err := f.Apply(docs); err != nil {
			loggerClient.Errorf("Failed to apply seed file: %v", err)
			os.Exit(1)
		}
		loggerClient.Info("seed file applied", logger.String("file", cfg.SeedFile))
	}

	dir := directory.NewService(docs, loggerClient)
	if err := dir.EnsureDocuments(); err != nil {
		loggerClient.Errorf("Failed to initialize data dir: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("document store ready", logger.String("dir", cfg.DataDir))

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		Directory:    dir,
		AdminHeader:  cfg.AdminHeader,
		CORSOrigins:  cfg.CORSOrigins,
		AllowedHosts: cfg.AllowedHosts,
		RateLimiter: mw.RateLimit(mw.RateLimitConfig{
			Burst:             cfg.RateBurst,
			RefillPerIPPerMin: cfg.RateRefillPerMin,
			TrustProxy:        cfg.TrustProxy,
			Disabled:          cfg.RateLimitDisabled,
		}),
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:    cfg,
		logger: loggerClient,
		server: server,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting resfinder v%s on %s", version.Version, a.cfg.ListenPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.logger.Info("✅ resfinder stopped cleanly")
	return nil
}
