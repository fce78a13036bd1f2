package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/notes-backend/internal/domain"
)

// Create adds a note and links it to the given categories. Category ids
// that do not exist are silently skipped.
func (s *Service) Create(ctx context.Context, input CreateNoteInput) (*domain.Note, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	fields := domain.NoteFields{
		Title:   input.Title,
		Content: input.Content,
	}
	if input.Archived != nil {
		fields.Archived = *input.Archived
	}

	var created *domain.Note
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.notes.Create(txCtx, fields)
		if err != nil {
			return fmt.Errorf("create note: %w", err)
		}

		ids, err := s.resolveCategoryIDs(txCtx, input.CategoryIDs)
		if err != nil {
			return err
		}
		if _, err := s.notes.LinkCategories(txCtx, n.ID, ids); err != nil {
			return fmt.Errorf("link categories: %w", err)
		}

		created, err = s.withCategories(txCtx, n)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "note created",
		slog.Int64("note_id", created.ID),
		slog.Bool("archived", created.Archived),
		slog.Int("categories", len(created.Categories)),
	)

	return created, nil
}
