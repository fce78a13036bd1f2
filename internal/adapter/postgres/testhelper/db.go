// Package testhelper provides a shared, migrated PostgreSQL database for
// repository and end-to-end tests.
package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/notes-backend/migrations"
)

// DSNEnv names an environment variable pointing at an existing database.
// When set, no container is started and migrations run against it. The e2e
// suite truncates tables, so run with -p 1 when packages share one database.
const DSNEnv = "TEST_DATABASE_DSN"

const (
	image    = "postgres:17-alpine"
	user     = "notes"
	password = "notes"
	dbName   = "notes_test"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// SetupTestDB returns a pool connected to the shared test database. The
// database is prepared once per test binary; the pool is closed through
// t.Cleanup. Tests are skipped with -short unless DSNEnv is set.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	external := os.Getenv(DSNEnv)
	if external == "" && testing.Short() {
		t.Skip("testhelper: needs docker, skipped in -short mode")
	}

	once.Do(func() {
		sharedDSN, initErr = prepare(external)
	})
	if initErr != nil {
		t.Fatalf("testhelper: setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, sharedDSN)
	if err != nil {
		t.Fatalf("testhelper: pgxpool.New: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func prepare(dsn string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if dsn == "" {
		var err error
		if dsn, err = startContainer(ctx); err != nil {
			return "", err
		}
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return "", fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return "", fmt.Errorf("ping: %w", err)
	}
	if _, err := migrations.Up(ctx, db); err != nil {
		return "", err
	}

	return dsn, nil
}

// startContainer runs PostgreSQL in docker. The container lives until the
// test process exits.
func startContainer(ctx context.Context) (string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     user,
				"POSTGRES_PASSWORD": password,
				"POSTGRES_DB":       dbName,
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("mapped port: %w", err)
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port.Port(), dbName), nil
}
