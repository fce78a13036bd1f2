package category

import (
	"context"
	"fmt"

	"github.com/heartmarshall/notes-backend/internal/domain"
)

// Get returns a single category by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Category, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	var category *domain.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		category, err = s.categories.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	return category, nil
}
