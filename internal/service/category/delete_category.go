package category

import (
	"context"
	"fmt"
	"log/slog"
)

// Delete removes a category and its note associations. Notes are kept.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.categories.Delete(txCtx, id)
	})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted", slog.Int64("category_id", id))

	return nil
}
