package note

import (
	"context"
	"fmt"

	"github.com/heartmarshall/notes-backend/internal/domain"
)

// ListActive returns non-archived notes, most recently updated first.
func (s *Service) ListActive(ctx context.Context) ([]domain.Note, error) {
	return s.listByArchived(ctx, false)
}

// ListArchived returns archived notes, most recently updated first.
func (s *Service) ListArchived(ctx context.Context) ([]domain.Note, error) {
	return s.listByArchived(ctx, true)
}

func (s *Service) listByArchived(ctx context.Context, archived bool) ([]domain.Note, error) {
	var notes []domain.Note
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		notes, err = s.notes.ListByArchived(txCtx, archived)
		if err != nil {
			return fmt.Errorf("list notes: %w", err)
		}
		return s.attachCategories(txCtx, notes)
	})
	if err != nil {
		return nil, err
	}

	return notes, nil
}

// ListByCategory returns the active notes linked to a category, most
// recently updated first. An unknown category yields domain.ErrNotFound.
func (s *Service) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Note, error) {
	if err := validateID("category_id", categoryID); err != nil {
		return nil, err
	}

	var notes []domain.Note
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.categories.GetByID(txCtx, categoryID); err != nil {
			return fmt.Errorf("get category: %w", err)
		}

		var err error
		notes, err = s.notes.ListActiveByCategory(txCtx, categoryID)
		if err != nil {
			return fmt.Errorf("list notes by category: %w", err)
		}
		return s.attachCategories(txCtx, notes)
	})
	if err != nil {
		return nil, err
	}

	return notes, nil
}
