package note

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/notes-backend/internal/domain"
)

// MaxTitleLength is the maximum note title length in characters.
const MaxTitleLength = 255

// CreateNoteInput holds the parameters for creating a note.
type CreateNoteInput struct {
	Title       string
	Content     *string
	Archived    *bool   // nil = false
	CategoryIDs []int64 // unknown ids are ignored
}

// Normalize returns a copy with surrounding whitespace removed from Title.
func (i CreateNoteInput) Normalize() CreateNoteInput {
	i.Title = strings.TrimSpace(i.Title)
	return i
}

// Validate checks all fields and collects all errors.
func (i CreateNoteInput) Validate() error {
	if errs := validateTitle(nil, i.Title); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateNoteInput holds the parameters for updating a note.
// Title and Content are always replaced.
type UpdateNoteInput struct {
	ID          int64
	Title       string
	Content     *string
	Archived    *bool   // nil = don't change
	CategoryIDs []int64 // nil = don't change; empty = clear
}

// Normalize returns a copy with surrounding whitespace removed from Title.
func (i UpdateNoteInput) Normalize() UpdateNoteInput {
	i.Title = strings.TrimSpace(i.Title)
	return i
}

// Validate checks all fields and collects all errors.
func (i UpdateNoteInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be positive"})
	}
	errs = validateTitle(errs, i.Title)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateTitle(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}
	return errs
}

func validateID(field string, id int64) error {
	if id <= 0 {
		return domain.NewValidationError(field, "must be positive")
	}
	return nil
}
