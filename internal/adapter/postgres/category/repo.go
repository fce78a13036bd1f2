// Package category implements the Category repository using PostgreSQL.
// Name uniqueness is backed by the categories_name_key constraint; a
// violation surfaces as domain.ErrAlreadyExists.
package category

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/notes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/notes-backend/internal/domain"
)

const (
	tableCategories     = "categories"
	tableNoteCategories = "note_categories"
)

var columns = []string{"id", "name", "created_at"}

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository. db is normally a *pgxpool.Pool;
// inside TxManager.RunInTx the transaction from the context is used instead.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns all categories in insertion (id) order.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	query := postgres.Builder.
		Select(columns...).
		From(tableCategories).
		OrderBy("id")

	var result []domain.Category
	if err := postgres.Select(ctx, r.q(ctx), &result, query); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if result == nil {
		result = []domain.Category{}
	}

	return result, nil
}

// GetByID returns a category by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := postgres.Builder.
		Select(columns...).
		From(tableCategories).
		Where(squirrel.Eq{"id": id})

	var c domain.Category
	if err := postgres.Get(ctx, r.q(ctx), &c, query); err != nil {
		return nil, postgres.MapError(err, "category", id)
	}

	return &c, nil
}

// ExistsByName reports whether a category other than excludeID carries name.
// Pass 0 as excludeID to check against every category.
func (r *Repo) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := postgres.Builder.
		Select("1").
		From(tableCategories).
		Where(squirrel.Eq{"name": name}).
		Where(squirrel.NotEq{"id": excludeID}).
		Prefix("SELECT EXISTS (").
		Suffix(")")

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists bool
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("category exists by name: %w", err)
	}

	return exists, nil
}

// ExistingIDs returns the subset of ids that correspond to stored categories,
// in ascending order. Unknown ids are dropped silently.
func (r *Repo) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}

	query := postgres.Builder.
		Select("id").
		From(tableCategories).
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id")

	var result []int64
	if err := postgres.Select(ctx, r.q(ctx), &result, query); err != nil {
		return nil, fmt.Errorf("resolve category ids: %w", err)
	}
	if result == nil {
		result = []int64{}
	}

	return result, nil
}

// ListByNoteIDs returns the categories linked to each of the given notes,
// ordered by note and then by category name. Callers group by NoteID.
func (r *Repo) ListByNoteIDs(ctx context.Context, noteIDs []int64) ([]domain.CategoryWithNoteID, error) {
	if len(noteIDs) == 0 {
		return []domain.CategoryWithNoteID{}, nil
	}

	query := postgres.Builder.
		Select("nc.note_id", "c.id", "c.name", "c.created_at").
		From(tableNoteCategories + " nc").
		Join(tableCategories + " c ON c.id = nc.category_id").
		Where(squirrel.Eq{"nc.note_id": noteIDs}).
		OrderBy("nc.note_id", "c.name", "c.id")

	var result []domain.CategoryWithNoteID
	if err := postgres.Select(ctx, r.q(ctx), &result, query); err != nil {
		return nil, fmt.Errorf("list categories by note ids: %w", err)
	}
	if result == nil {
		result = []domain.CategoryWithNoteID{}
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new category and returns it with its generated id and
// creation time. Returns domain.ErrAlreadyExists on a duplicate name.
func (r *Repo) Create(ctx context.Context, name string) (*domain.Category, error) {
	stmt := postgres.Builder.
		Insert(tableCategories).
		Columns("name").
		Values(name).
		Suffix("RETURNING id, name, created_at")

	var c domain.Category
	if err := postgres.Get(ctx, r.q(ctx), &c, stmt); err != nil {
		return nil, postgres.MapError(err, "category", 0)
	}

	return &c, nil
}

// Rename sets a new name on an existing category.
// Returns domain.ErrNotFound if it does not exist and domain.ErrAlreadyExists
// if another category already has the name.
func (r *Repo) Rename(ctx context.Context, id int64, name string) (*domain.Category, error) {
	stmt := postgres.Builder.
		Update(tableCategories).
		Set("name", name).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, created_at")

	var c domain.Category
	if err := postgres.Get(ctx, r.q(ctx), &c, stmt); err != nil {
		return nil, postgres.MapError(err, "category", id)
	}

	return &c, nil
}

// Delete removes a category. CASCADE deletes its note_categories rows;
// notes are NOT affected. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	stmt := postgres.Builder.
		Delete(tableCategories).
		Where(squirrel.Eq{"id": id})

	affected, err := postgres.Exec(ctx, r.q(ctx), stmt)
	if err != nil {
		return postgres.MapError(err, "category", id)
	}
	if affected == 0 {
		return fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
