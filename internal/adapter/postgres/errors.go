package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"adpilot/internal/core/domain"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// mapError translates constraint violations into domain errors so the
// upper layers never have to inspect driver types.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case uniqueViolation:
		return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.ConstraintName)
	case foreignKeyViolation:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, pgErr.ConstraintName)
	case checkViolation:
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, pgErr.ConstraintName)
	}
	return err
}

// scanner is implemented by pgx.Row and pgx.CollectableRow.
type scanner interface {
	Scan(dest ...any) error
}
