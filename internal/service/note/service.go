package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/notes-backend/internal/domain"
)

type noteRepo interface {
	ListByArchived(ctx context.Context, archived bool) ([]domain.Note, error)
	ListActiveByCategory(ctx context.Context, categoryID int64) ([]domain.Note, error)
	GetByID(ctx context.Context, id int64) (*domain.Note, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.Note, error)
	Create(ctx context.Context, fields domain.NoteFields) (*domain.Note, error)
	Update(ctx context.Context, id int64, fields domain.NoteFields) (*domain.Note, error)
	SetArchived(ctx context.Context, id int64, archived bool) (*domain.Note, error)
	Touch(ctx context.Context, id int64) (*domain.Note, error)
	Delete(ctx context.Context, id int64) error

	// M2M: note <-> category
	LinkCategories(ctx context.Context, noteID int64, categoryIDs []int64) (int, error)
	UnlinkCategory(ctx context.Context, noteID, categoryID int64) (bool, error)
	ReplaceCategories(ctx context.Context, noteID int64, categoryIDs []int64) error
}

type categoryRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
	ListByNoteIDs(ctx context.Context, noteIDs []int64) ([]domain.CategoryWithNoteID, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides note management operations.
type Service struct {
	notes      noteRepo
	categories categoryRepo
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Note service.
func NewService(
	log *slog.Logger,
	notes noteRepo,
	categories categoryRepo,
	tx txManager,
) *Service {
	return &Service{
		notes:      notes,
		categories: categories,
		tx:         tx,
		log:        log.With("service", "note"),
	}
}

// resolveCategoryIDs deduplicates ids and drops the ones that do not name
// an existing category. The result may be empty.
func (s *Service) resolveCategoryIDs(ctx context.Context, ids []int64) ([]int64, error) {
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, dup := seen[id]; !dup {
			seen[id] = struct{}{}
			unique = append(unique, id)
		}
	}

	if len(unique) == 0 {
		return unique, nil
	}

	existing, err := s.categories.ExistingIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("resolve categories: %w", err)
	}
	return existing, nil
}

// attachCategories fills Categories of every note in place with one query.
// Notes without links get an empty, non-nil slice.
func (s *Service) attachCategories(ctx context.Context, notes []domain.Note) error {
	if len(notes) == 0 {
		return nil
	}

	ids := make([]int64, len(notes))
	for i := range notes {
		ids[i] = notes[i].ID
	}

	rows, err := s.categories.ListByNoteIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}

	byNote := make(map[int64][]domain.Category, len(notes))
	for _, r := range rows {
		byNote[r.NoteID] = append(byNote[r.NoteID], r.Category)
	}

	for i := range notes {
		cats := byNote[notes[i].ID]
		if cats == nil {
			cats = []domain.Category{}
		}
		notes[i].Categories = cats
	}

	return nil
}

// withCategories is attachCategories for a single note.
func (s *Service) withCategories(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	notes := []domain.Note{*n}
	if err := s.attachCategories(ctx, notes); err != nil {
		return nil, err
	}
	return &notes[0], nil
}
