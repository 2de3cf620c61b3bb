// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskmate/taskmate-backend/internal/adapter/postgres"
	"github.com/taskmate/taskmate-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = "id, email, password_hash, role, created_at, modified_at"

// Create inserts a new user and returns the stored row.
// A duplicate email maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, email, passwordHash string, role domain.UserRole) (*domain.User, error) {
	query := postgres.Builder().
		Insert("users").
		Columns("email", "password_hash", "role").
		Values(email, passwordHash, role.String()).
		Suffix("RETURNING " + userColumns)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create user query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var u domain.User
	if err := pgxscan.Get(ctx, q, &u, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}

	return &u, nil
}

// GetByID returns a user by ID. Missing rows map to domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := postgres.Builder().
		Select(userColumns).
		From("users").
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var u domain.User
	if err := pgxscan.Get(ctx, q, &u, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return &u, nil
}

// GetByEmail returns a user by email. Missing rows map to domain.ErrNotFound.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := postgres.Builder().
		Select(userColumns).
		From("users").
		Where(squirrel.Eq{"email": email})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user by email query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var u domain.User
	if err := pgxscan.Get(ctx, q, &u, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}

	return &u, nil
}

// ExistsByEmail reports whether a user with the given email exists.
func (r *Repo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const sql = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, sql, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check user email exists: %w", err)
	}

	return exists, nil
}

// UpdatePassword replaces the stored password hash and bumps modified_at.
func (r *Repo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := postgres.Builder().
		Update("users").
		Set("password_hash", passwordHash).
		Set("modified_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build update password query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// UpdateRole replaces the user role and bumps modified_at.
func (r *Repo) UpdateRole(ctx context.Context, id int64, role domain.UserRole) error {
	query := postgres.Builder().
		Update("users").
		Set("role", role.String()).
		Set("modified_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build update role query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
