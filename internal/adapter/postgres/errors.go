package postgres

import (
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/notes-backend/internal/domain"
)

// PostgreSQL error codes the repositories translate into domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// MapError prefixes err with the entity and id and replaces driver errors
// that have a domain meaning with the matching sentinel. Context errors
// and anything unrecognised are wrapped unchanged.
func MapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %d: %w", entity, id, translate(err))
}

func translate(err error) error {
	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return domain.ErrAlreadyExists
	case codeForeignKeyViolation:
		return domain.ErrNotFound
	case codeCheckViolation:
		return domain.ErrValidation
	default:
		return err
	}
}
