package category

import (
	"context"
	"fmt"

	"github.com/heartmarshall/notes-backend/internal/domain"
)

// List returns every category ordered by id.
func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		categories, err = s.categories.List(txCtx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}
