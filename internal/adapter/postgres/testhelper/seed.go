package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/notes-backend/internal/domain"
)

// UniqueName returns prefix plus a short random suffix. Tests share one
// database, so category names must not collide across parallel tests.
func UniqueName(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedCategory inserts a category with a unique name derived from prefix.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, prefix string) domain.Category {
	t.Helper()

	c := domain.Category{Name: UniqueName(prefix)}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO categories (name) VALUES ($1) RETURNING id, created_at`,
		c.Name,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}

	return c
}

// SeedNote inserts a note with the given title and archived flag, linked to
// the given categories.
func SeedNote(t *testing.T, pool *pgxpool.Pool, title string, archived bool, categories ...domain.Category) domain.Note {
	t.Helper()
	ctx := context.Background()

	n := domain.Note{Title: title, Archived: archived}
	err := pool.QueryRow(ctx,
		`INSERT INTO notes (title, archived) VALUES ($1, $2) RETURNING id, created_at, updated_at`,
		title, archived,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedNote: %v", err)
	}

	for _, c := range categories {
		if _, err := pool.Exec(ctx,
			`INSERT INTO note_categories (note_id, category_id) VALUES ($1, $2)`,
			n.ID, c.ID,
		); err != nil {
			t.Fatalf("testhelper: SeedNote link category %d: %v", c.ID, err)
		}
		n.Categories = append(n.Categories, c)
	}

	return n
}

// LinkCount returns the number of join rows for a note.
func LinkCount(t *testing.T, pool *pgxpool.Pool, noteID int64) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM note_categories WHERE note_id = $1`, noteID,
	).Scan(&n); err != nil {
		t.Fatalf("testhelper: LinkCount: %v", err)
	}
	return n
}
