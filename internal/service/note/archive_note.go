package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/notes-backend/internal/domain"
)

// Archive marks a note archived. Archiving an archived note is not an error.
func (s *Service) Archive(ctx context.Context, id int64) (*domain.Note, error) {
	return s.setArchived(ctx, id, true)
}

// Unarchive clears the archived flag. Idempotent.
func (s *Service) Unarchive(ctx context.Context, id int64) (*domain.Note, error) {
	return s.setArchived(ctx, id, false)
}

func (s *Service) setArchived(ctx context.Context, id int64, archived bool) (*domain.Note, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}

	var note *domain.Note
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.notes.SetArchived(txCtx, id, archived)
		if err != nil {
			return fmt.Errorf("set archived: %w", err)
		}
		note, err = s.withCategories(txCtx, n)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "note archive flag set",
		slog.Int64("note_id", id),
		slog.Bool("archived", archived),
	)

	return note, nil
}
