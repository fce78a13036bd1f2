package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/notes-backend/internal/domain"
)

// Update renames a category. Keeping the current name is a no-op; taking
// another category's name yields domain.ErrAlreadyExists.
func (s *Service) Update(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		oldName string
		updated *domain.Category
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.categories.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get category: %w", err)
		}
		oldName = current.Name

		if current.Name == input.Name {
			updated = current
			return nil
		}

		exists, err := s.categories.ExistsByName(txCtx, input.Name, input.ID)
		if err != nil {
			return fmt.Errorf("check name: %w", err)
		}
		if exists {
			return fmt.Errorf("category %q: %w", input.Name, domain.ErrAlreadyExists)
		}

		updated, err = s.categories.Rename(txCtx, input.ID, input.Name)
		if err != nil {
			return fmt.Errorf("rename category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if oldName != updated.Name {
		s.log.InfoContext(ctx, "category renamed",
			slog.Int64("category_id", updated.ID),
			slog.String("old_name", oldName),
			slog.String("name", updated.Name),
		)
	}

	return updated, nil
}
