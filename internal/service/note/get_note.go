package note

import (
	"context"
	"fmt"

	"github.com/heartmarshall/notes-backend/internal/domain"
)

// Get returns a single note with its categories.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Note, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}

	var note *domain.Note
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.notes.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get note: %w", err)
		}
		note, err = s.withCategories(txCtx, n)
		return err
	})
	if err != nil {
		return nil, err
	}

	return note, nil
}
