package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/UkralStul/posts-service/internal/config"
	"github.com/UkralStul/posts-service/internal/httpapi"
	"github.com/UkralStul/posts-service/internal/logging"
	"github.com/UkralStul/posts-service/internal/service"
	"github.com/UkralStul/posts-service/internal/storage"
	"github.com/UkralStul/posts-service/internal/storage/inmemory"
	"github.com/UkralStul/posts-service/internal/storage/postgres"

	"gorm.io/gorm/logger"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	store   storage.Storage
	handler http.Handler
}

// New собирает приложение по конфигурации.
func New(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	posts := service.NewPosts(store, log, service.WithHashCost(cfg.HashCost))

	if cfg.Seed && cfg.Storage == config.StorageInMemory {
		if err := fillWithMockData(ctx, posts); err != nil {
			return nil, fmt.Errorf("seed storage: %w", err)
		}
		log.Info(ctx, "mock data filled")
	}

	var pinger storage.Pinger
	if p, ok := store.(storage.Pinger); ok {
		pinger = p
	}
	router := httpapi.NewRouter(httpapi.NewHandler(posts, log), pinger, cfg.RequestTimeout)

	return &App{config: cfg, logger: log, store: store, handler: router}, nil
}

// Handler возвращает корневой HTTP-обработчик.
func (a *App) Handler() http.Handler { return a.handler }

func openStorage(ctx context.Context, cfg *config.Config, log logging.Logger) (storage.Storage, error) {
	log.Info(ctx, "opening storage", "storage", cfg.Storage)
	switch cfg.Storage {
	case config.StoragePostgres:
		store, err := postgres.New(cfg.DatabaseDSN, gormLogLevel(cfg.DBLogLevel))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return store, nil
	case config.StorageInMemory:
		return inmemory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Storage)
	}
}

func gormLogLevel(s string) logger.LogLevel {
	switch s {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// Run обслуживает HTTP до отмены ctx или сигнала SIGINT/SIGTERM.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: a.config.Addr, Handler: a.handler}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info(ctx, "http server listening", "addr", a.config.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			// сервер не поднялся, но хранилище уже открыто
			return errors.Join(fmt.Errorf("server failed to start: %w", err), a.Close())
		}
	case <-ctx.Done():
	}

	a.logger.Info(context.Background(), "shutting down", "timeout", a.config.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return a.Close()
}

// Close освобождает ресурсы хранилища.
func (a *App) Close() error {
	if c, ok := a.store.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
