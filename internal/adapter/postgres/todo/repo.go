// Package todo implements the Todo repository using PostgreSQL.
// Read queries join the owner row and scan it into the nested User struct
// via "user."-prefixed column aliases.
package todo

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskmate/taskmate-backend/internal/adapter/postgres"
	"github.com/taskmate/taskmate-backend/internal/domain"
)

// Repo provides todo persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new todo repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const todoWithUserColumns = `
    t.id, t.title, t.contents, t.weather, t.user_id, t.created_at, t.modified_at,
    u.id AS "user.id",
    u.email AS "user.email",
    u.password_hash AS "user.password_hash",
    u.role AS "user.role",
    u.created_at AS "user.created_at",
    u.modified_at AS "user.modified_at"`

const getWithUserSQL = `
SELECT` + todoWithUserColumns + `
FROM todos t
JOIN users u ON u.id = t.user_id
WHERE t.id = $1`

const listWithUserSQL = `
SELECT` + todoWithUserColumns + `
FROM todos t
JOIN users u ON u.id = t.user_id
ORDER BY t.modified_at DESC
LIMIT $1 OFFSET $2`

// Create inserts a new todo owned by userID and returns the stored row.
func (r *Repo) Create(ctx context.Context, userID int64, title, contents, weather string) (*domain.Todo, error) {
	query := postgres.Builder().
		Insert("todos").
		Columns("title", "contents", "weather", "user_id").
		Values(title, contents, weather, userID).
		Suffix("RETURNING id, title, contents, weather, user_id, created_at, modified_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create todo query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.Todo
	if err := pgxscan.Get(ctx, q, &t, sql, args...); err != nil {
		return nil, postgres.MapError(err, "todo", 0)
	}

	return &t, nil
}

// GetWithUser returns a todo together with its owner.
// Missing rows map to domain.ErrNotFound.
func (r *Repo) GetWithUser(ctx context.Context, id int64) (*domain.TodoWithUser, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.TodoWithUser
	if err := pgxscan.Get(ctx, q, &t, getWithUserSQL, id); err != nil {
		return nil, postgres.MapError(err, "todo", id)
	}

	return &t, nil
}

// ListWithUser returns a page of todos with their owners,
// ordered by modified_at descending.
func (r *Repo) ListWithUser(ctx context.Context, limit, offset int) ([]domain.TodoWithUser, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var todos []domain.TodoWithUser
	if err := pgxscan.Select(ctx, q, &todos, listWithUserSQL, limit, offset); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	if todos == nil {
		todos = []domain.TodoWithUser{}
	}

	return todos, nil
}

// Count returns the total number of todos.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	const sql = `SELECT count(*) FROM todos`

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int64
	if err := q.QueryRow(ctx, sql).Scan(&count); err != nil {
		return 0, fmt.Errorf("count todos: %w", err)
	}

	return count, nil
}
