package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/notes-backend/internal/domain"
)

// AddCategories links a note to more categories. Unknown ids are skipped
// and already linked ones are left as they are.
func (s *Service) AddCategories(ctx context.Context, noteID int64, categoryIDs []int64) (*domain.Note, error) {
	if err := validateID("note_id", noteID); err != nil {
		return nil, err
	}

	var (
		note  *domain.Note
		added int
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.notes.GetForUpdate(txCtx, noteID); err != nil {
			return fmt.Errorf("get note: %w", err)
		}

		ids, err := s.resolveCategoryIDs(txCtx, categoryIDs)
		if err != nil {
			return err
		}

		added, err = s.notes.LinkCategories(txCtx, noteID, ids)
		if err != nil {
			return fmt.Errorf("link categories: %w", err)
		}

		n, err := s.notes.Touch(txCtx, noteID)
		if err != nil {
			return fmt.Errorf("touch note: %w", err)
		}

		note, err = s.withCategories(txCtx, n)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "categories added to note",
		slog.Int64("note_id", noteID),
		slog.Int("requested", len(categoryIDs)),
		slog.Int("added", added),
	)

	return note, nil
}

// RemoveCategory unlinks one category from a note. Both the note and the
// category must exist; a category that is not linked is a no-op.
func (s *Service) RemoveCategory(ctx context.Context, noteID, categoryID int64) (*domain.Note, error) {
	if err := validateID("note_id", noteID); err != nil {
		return nil, err
	}
	if err := validateID("category_id", categoryID); err != nil {
		return nil, err
	}

	var (
		note    *domain.Note
		removed bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.notes.GetForUpdate(txCtx, noteID); err != nil {
			return fmt.Errorf("get note: %w", err)
		}
		if _, err := s.categories.GetByID(txCtx, categoryID); err != nil {
			return fmt.Errorf("get category: %w", err)
		}

		var err error
		removed, err = s.notes.UnlinkCategory(txCtx, noteID, categoryID)
		if err != nil {
			return fmt.Errorf("unlink category: %w", err)
		}

		n, err := s.notes.Touch(txCtx, noteID)
		if err != nil {
			return fmt.Errorf("touch note: %w", err)
		}

		note, err = s.withCategories(txCtx, n)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category removed from note",
		slog.Int64("note_id", noteID),
		slog.Int64("category_id", categoryID),
		slog.Bool("was_linked", removed),
	)

	return note, nil
}
