// Package note implements the Note repository using PostgreSQL.
// It owns the note_categories join table: associations are only ever
// changed through the note side (link, unlink, replace).
package note

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/notes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/notes-backend/internal/domain"
)

const (
	tableNotes          = "notes"
	tableNoteCategories = "note_categories"

	returningColumns = "RETURNING id, title, content, archived, created_at, updated_at"
)

// touchExpr refreshes updated_at. clock_timestamp() advances within a
// transaction and GREATEST keeps the updated_at >= created_at check intact
// even if the writing transaction started before the row was created.
var touchExpr = squirrel.Expr("GREATEST(clock_timestamp(), created_at)")

var columns = []string{"n.id", "n.title", "n.content", "n.archived", "n.created_at", "n.updated_at"}

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new note repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func selectNotes() squirrel.SelectBuilder {
	return postgres.Builder.Select(columns...).From(tableNotes + " n")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByArchived returns notes with the given archived flag, most recently
// updated first. Categories are not populated.
func (r *Repo) ListByArchived(ctx context.Context, archived bool) ([]domain.Note, error) {
	query := selectNotes().
		Where(squirrel.Eq{"n.archived": archived}).
		OrderBy("n.updated_at DESC", "n.id DESC")

	return r.list(ctx, query)
}

// ListActiveByCategory returns non-archived notes linked to categoryID,
// most recently updated first. Categories are not populated.
func (r *Repo) ListActiveByCategory(ctx context.Context, categoryID int64) ([]domain.Note, error) {
	query := selectNotes().
		Join(tableNoteCategories + " nc ON nc.note_id = n.id").
		Where(squirrel.Eq{"nc.category_id": categoryID, "n.archived": false}).
		OrderBy("n.updated_at DESC", "n.id DESC")

	return r.list(ctx, query)
}

func (r *Repo) list(ctx context.Context, query squirrel.SelectBuilder) ([]domain.Note, error) {
	var result []domain.Note
	if err := postgres.Select(ctx, r.q(ctx), &result, query); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if result == nil {
		result = []domain.Note{}
	}
	return result, nil
}

// GetByID returns a note by primary key without categories.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	return r.get(ctx, id, selectNotes().Where(squirrel.Eq{"n.id": id}))
}

// GetForUpdate is GetByID plus a row lock held until the surrounding
// transaction ends. Concurrent mutations of the same note serialize on it.
func (r *Repo) GetForUpdate(ctx context.Context, id int64) (*domain.Note, error) {
	return r.get(ctx, id, selectNotes().Where(squirrel.Eq{"n.id": id}).Suffix("FOR UPDATE"))
}

func (r *Repo) get(ctx context.Context, id int64, query squirrel.Sqlizer) (*domain.Note, error) {
	var n domain.Note
	if err := postgres.Get(ctx, r.q(ctx), &n, query); err != nil {
		return nil, postgres.MapError(err, "note", id)
	}
	return &n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a note. created_at and updated_at take the same default
// now() value.
func (r *Repo) Create(ctx context.Context, fields domain.NoteFields) (*domain.Note, error) {
	stmt := postgres.Builder.
		Insert(tableNotes).
		Columns("title", "content", "archived").
		Values(fields.Title, fields.Content, fields.Archived).
		Suffix(returningColumns)

	return r.write(ctx, 0, stmt)
}

// Update replaces the scalar fields of a note and refreshes updated_at.
func (r *Repo) Update(ctx context.Context, id int64, fields domain.NoteFields) (*domain.Note, error) {
	stmt := postgres.Builder.
		Update(tableNotes).
		Set("title", fields.Title).
		Set("content", fields.Content).
		Set("archived", fields.Archived).
		Set("updated_at", touchExpr).
		Where(squirrel.Eq{"id": id}).
		Suffix(returningColumns)

	return r.write(ctx, id, stmt)
}

// SetArchived sets the archived flag unconditionally and refreshes updated_at.
func (r *Repo) SetArchived(ctx context.Context, id int64, archived bool) (*domain.Note, error) {
	stmt := postgres.Builder.
		Update(tableNotes).
		Set("archived", archived).
		Set("updated_at", touchExpr).
		Where(squirrel.Eq{"id": id}).
		Suffix(returningColumns)

	return r.write(ctx, id, stmt)
}

// Touch refreshes updated_at only. Used after association changes.
func (r *Repo) Touch(ctx context.Context, id int64) (*domain.Note, error) {
	stmt := postgres.Builder.
		Update(tableNotes).
		Set("updated_at", touchExpr).
		Where(squirrel.Eq{"id": id}).
		Suffix(returningColumns)

	return r.write(ctx, id, stmt)
}

func (r *Repo) write(ctx context.Context, id int64, stmt squirrel.Sqlizer) (*domain.Note, error) {
	var n domain.Note
	if err := postgres.Get(ctx, r.q(ctx), &n, stmt); err != nil {
		return nil, postgres.MapError(err, "note", id)
	}
	return &n, nil
}

// Delete removes a note. CASCADE deletes its note_categories rows;
// categories are NOT affected. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	stmt := postgres.Builder.
		Delete(tableNotes).
		Where(squirrel.Eq{"id": id})

	affected, err := postgres.Exec(ctx, r.q(ctx), stmt)
	if err != nil {
		return postgres.MapError(err, "note", id)
	}
	if affected == 0 {
		return fmt.Errorf("note %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// M2M: note <-> category
// ---------------------------------------------------------------------------

// LinkCategories links the note to every given category.
// Idempotent: existing links are skipped (ON CONFLICT DO NOTHING).
// Returns the number of new links. A category deleted concurrently makes
// the FK fail, reported as domain.ErrNotFound.
func (r *Repo) LinkCategories(ctx context.Context, noteID int64, categoryIDs []int64) (int, error) {
	if len(categoryIDs) == 0 {
		return 0, nil
	}

	stmt := postgres.Builder.
		Insert(tableNoteCategories).
		Columns("note_id", "category_id")
	for _, id := range categoryIDs {
		stmt = stmt.Values(noteID, id)
	}
	stmt = stmt.Suffix("ON CONFLICT (note_id, category_id) DO NOTHING")

	affected, err := postgres.Exec(ctx, r.q(ctx), stmt)
	if err != nil {
		return 0, postgres.MapError(err, "note_category", noteID)
	}

	return int(affected), nil
}

// UnlinkCategory removes the link between a note and a category.
// Not an error if the link does not exist; the result reports whether a
// row was removed.
func (r *Repo) UnlinkCategory(ctx context.Context, noteID, categoryID int64) (bool, error) {
	stmt := postgres.Builder.
		Delete(tableNoteCategories).
		Where(squirrel.Eq{"note_id": noteID, "category_id": categoryID})

	affected, err := postgres.Exec(ctx, r.q(ctx), stmt)
	if err != nil {
		return false, postgres.MapError(err, "note_category", noteID)
	}

	return affected > 0, nil
}

// ReplaceCategories makes categoryIDs the complete association set of the
// note. An empty slice clears every link. Must run inside a transaction to
// be atomic.
func (r *Repo) ReplaceCategories(ctx context.Context, noteID int64, categoryIDs []int64) error {
	stmt := postgres.Builder.
		Delete(tableNoteCategories).
		Where(squirrel.Eq{"note_id": noteID})

	if _, err := postgres.Exec(ctx, r.q(ctx), stmt); err != nil {
		return postgres.MapError(err, "note_category", noteID)
	}

	if _, err := r.LinkCategories(ctx, noteID, categoryIDs); err != nil {
		return err
	}

	return nil
}
