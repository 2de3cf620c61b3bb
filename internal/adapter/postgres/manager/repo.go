// Package manager implements the Manager assignment repository using PostgreSQL.
package manager

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskmate/taskmate-backend/internal/adapter/postgres"
	"github.com/taskmate/taskmate-backend/internal/domain"
)

// Repo provides manager assignment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new manager repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listByTodoWithUserSQL = `
SELECT
    m.id, m.user_id, m.todo_id, m.created_at,
    u.id AS "user.id",
    u.email AS "user.email",
    u.password_hash AS "user.password_hash",
    u.role AS "user.role",
    u.created_at AS "user.created_at",
    u.modified_at AS "user.modified_at"
FROM managers m
JOIN users u ON u.id = m.user_id
WHERE m.todo_id = $1
ORDER BY m.id`

// Create inserts a manager assignment and returns the stored row.
// A duplicate (user_id, todo_id) pair maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, userID, todoID int64) (*domain.Manager, error) {
	query := postgres.Builder().
		Insert("managers").
		Columns("user_id", "todo_id").
		Values(userID, todoID).
		Suffix("RETURNING id, user_id, todo_id, created_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create manager query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var m domain.Manager
	if err := pgxscan.Get(ctx, q, &m, sql, args...); err != nil {
		return nil, postgres.MapError(err, "manager", 0)
	}

	return &m, nil
}

// GetByID returns a manager assignment by ID.
// Missing rows map to domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Manager, error) {
	query := postgres.Builder().
		Select("id", "user_id", "todo_id", "created_at").
		From("managers").
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get manager query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var m domain.Manager
	if err := pgxscan.Get(ctx, q, &m, sql, args...); err != nil {
		return nil, postgres.MapError(err, "manager", id)
	}

	return &m, nil
}

// ListByTodoWithUser returns all manager assignments for a todo together
// with the assigned users, ordered by assignment ID.
func (r *Repo) ListByTodoWithUser(ctx context.Context, todoID int64) ([]domain.ManagerWithUser, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var managers []domain.ManagerWithUser
	if err := pgxscan.Select(ctx, q, &managers, listByTodoWithUserSQL, todoID); err != nil {
		return nil, fmt.Errorf("list managers by todo: %w", err)
	}

	if managers == nil {
		managers = []domain.ManagerWithUser{}
	}

	return managers, nil
}

// ExistsByTodoAndUser reports whether the user is assigned as a manager of the todo.
func (r *Repo) ExistsByTodoAndUser(ctx context.Context, todoID, userID int64) (bool, error) {
	const sql = `SELECT EXISTS (SELECT 1 FROM managers WHERE todo_id = $1 AND user_id = $2)`

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, sql, todoID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check manager exists: %w", err)
	}

	return exists, nil
}

// Delete removes a manager assignment by ID.
// Returns domain.ErrNotFound if 0 rows affected.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query := postgres.Builder().
		Delete("managers").
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build delete manager query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "manager", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("manager %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
