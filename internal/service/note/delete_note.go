package note

import (
	"context"
	"fmt"
	"log/slog"
)

// Delete removes a note and its category links. Categories are kept.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := validateID("id", id); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.notes.Delete(txCtx, id)
	})
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	s.log.InfoContext(ctx, "note deleted", slog.Int64("note_id", id))

	return nil
}
