// Package app wires configuration, storage, services and the HTTP server
// into a runnable process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/notes-backend/internal/adapter/postgres"
	categoryrepo "github.com/heartmarshall/notes-backend/internal/adapter/postgres/category"
	noterepo "github.com/heartmarshall/notes-backend/internal/adapter/postgres/note"
	"github.com/heartmarshall/notes-backend/internal/config"
	"github.com/heartmarshall/notes-backend/internal/service/category"
	"github.com/heartmarshall/notes-backend/internal/service/note"
	"github.com/heartmarshall/notes-backend/internal/transport/middleware"
	"github.com/heartmarshall/notes-backend/internal/transport/rest"
	"github.com/heartmarshall/notes-backend/migrations"
)

// Run loads configuration, connects to PostgreSQL, optionally migrates the
// schema and serves HTTP until ctx is cancelled. Shutdown is graceful,
// bounded by server.shutdown_timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("database", cfg.Database.String()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := migrate(ctx, pool, logger); err != nil {
			return err
		}
	}

	handler, cleanup := NewHandler(cfg, pool, logger)
	defer cleanup()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// NewHandler assembles repositories, services, handlers and the middleware
// chain on top of pool. The returned cleanup releases background resources.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, func()) {
	txm := postgres.NewTxManager(pool)
	categories := categoryrepo.New(pool)
	notes := noterepo.New(pool)

	categorySvc := category.NewService(logger, categories, txm)
	noteSvc := note.NewService(logger, notes, categories, txm)

	router := rest.NewRouter(
		rest.NewCategoryHandler(categorySvc, logger),
		rest.NewNoteHandler(noteSvc, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
	)

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	cleanup := func() {}
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit)
		mws = append(mws, rl.Middleware())
		cleanup = rl.Stop
	}

	return middleware.Chain(mws...)(router), cleanup
}

func migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	n, err := migrations.Up(ctx, db)
	if err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	logger.Info("schema migrated", slog.Int("applied", n))
	return nil
}
