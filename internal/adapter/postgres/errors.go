package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taskmate/taskmate-backend/internal/domain"
)

// MapError converts pgx/pgconn/scany errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped — they pass through.
func MapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %d: %w", entity, id, err)
	}

	// no rows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %d: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %d: %w", entity, id, domain.ErrInvalidRequest)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %d: %w", entity, id, err)
}
