package category

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/notes-backend/internal/domain"
)

// MaxNameLength is the maximum category name length in characters, after trimming.
const MaxNameLength = 100

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	Name string
}

// Normalize returns a copy with surrounding whitespace removed from Name.
func (i CreateCategoryInput) Normalize() CreateCategoryInput {
	i.Name = strings.TrimSpace(i.Name)
	return i
}

// Validate checks all fields and collects all errors.
func (i CreateCategoryInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateCategoryInput holds the parameters for renaming a category.
type UpdateCategoryInput struct {
	ID   int64
	Name string
}

// Normalize returns a copy with surrounding whitespace removed from Name.
func (i UpdateCategoryInput) Normalize() UpdateCategoryInput {
	i.Name = strings.TrimSpace(i.Name)
	return i
}

// Validate checks all fields and collects all errors.
func (i UpdateCategoryInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be positive"})
	}
	errs = validateName(errs, i.Name)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	return errs
}

func validateID(id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be positive")
	}
	return nil
}
