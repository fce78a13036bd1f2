package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/notes-backend/internal/domain"
)

// Update replaces title and content of a note. Archived and CategoryIDs
// are applied only when set: a nil CategoryIDs keeps the current links,
// an empty one clears them.
func (s *Service) Update(ctx context.Context, input UpdateNoteInput) (*domain.Note, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Note
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.notes.GetForUpdate(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get note: %w", err)
		}

		fields := domain.NoteFields{
			Title:    input.Title,
			Content:  input.Content,
			Archived: current.Archived,
		}
		if input.Archived != nil {
			fields.Archived = *input.Archived
		}

		n, err := s.notes.Update(txCtx, input.ID, fields)
		if err != nil {
			return fmt.Errorf("update note: %w", err)
		}

		if input.CategoryIDs != nil {
			ids, err := s.resolveCategoryIDs(txCtx, input.CategoryIDs)
			if err != nil {
				return err
			}
			if err := s.notes.ReplaceCategories(txCtx, input.ID, ids); err != nil {
				return fmt.Errorf("replace categories: %w", err)
			}
		}

		updated, err = s.withCategories(txCtx, n)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "note updated",
		slog.Int64("note_id", updated.ID),
		slog.Bool("categories_replaced", input.CategoryIDs != nil),
	)

	return updated, nil
}
