package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/notes-backend/internal/domain"
)

// Create adds a category. Names are unique: an existing category with the
// same name yields domain.ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.categories.ExistsByName(txCtx, input.Name, 0)
		if err != nil {
			return fmt.Errorf("check name: %w", err)
		}
		if exists {
			return fmt.Errorf("category %q: %w", input.Name, domain.ErrAlreadyExists)
		}

		// A concurrent insert of the same name is caught by UNIQUE(name).
		created, err = s.categories.Create(txCtx, input.Name)
		if err != nil {
			return fmt.Errorf("create category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category created",
		slog.Int64("category_id", created.ID),
		slog.String("name", created.Name),
	)

	return created, nil
}
