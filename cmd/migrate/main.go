// Command migrate manages the database schema using the embedded goose
// migrations.
//
// Usage: migrate [up|down|status|version]   (default: up)
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/heartmarshall/notes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/notes-backend/internal/app"
	"github.com/heartmarshall/notes-backend/internal/config"
	"github.com/heartmarshall/notes-backend/migrations"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := migrations.NewProvider(db)
	if err != nil {
		logger.Error("init migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		for _, r := range results {
			logger.Info("applied", slog.String("migration", r.Source.Path), slog.Duration("took", r.Duration))
		}
		if err != nil {
			logger.Error("migrate up", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migrate up completed", slog.Int("applied", len(results)))

	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			logger.Error("migrate down", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("rolled back", slog.String("migration", r.Source.Path), slog.Duration("took", r.Duration))

	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			logger.Error("migrate status", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, s := range statuses {
			applied := "pending"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%-6d %-10s %-24s %s\n", s.Source.Version, s.State, applied, s.Source.Path)
		}

	case "version":
		v, err := provider.GetDBVersion(ctx)
		if err != nil {
			logger.Error("migrate version", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Println(v)

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q; want up, down, status or version\n", command)
		os.Exit(2)
	}
}
