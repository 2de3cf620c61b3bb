// Package comment implements the Comment repository using PostgreSQL.
package comment

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskmate/taskmate-backend/internal/adapter/postgres"
	"github.com/taskmate/taskmate-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listByTodoWithUserSQL = `
SELECT
    c.id, c.contents, c.user_id, c.todo_id, c.created_at, c.modified_at,
    u.id AS "user.id",
    u.email AS "user.email",
    u.password_hash AS "user.password_hash",
    u.role AS "user.role",
    u.created_at AS "user.created_at",
    u.modified_at AS "user.modified_at"
FROM comments c
JOIN users u ON u.id = c.user_id
WHERE c.todo_id = $1
ORDER BY c.id`

// Create inserts a new comment and returns the stored row.
func (r *Repo) Create(ctx context.Context, userID, todoID int64, contents string) (*domain.Comment, error) {
	query := postgres.Builder().
		Insert("comments").
		Columns("contents", "user_id", "todo_id").
		Values(contents, userID, todoID).
		Suffix("RETURNING id, contents, user_id, todo_id, created_at, modified_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create comment query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Comment
	if err := pgxscan.Get(ctx, q, &c, sql, args...); err != nil {
		return nil, postgres.MapError(err, "comment", 0)
	}

	return &c, nil
}

// ListByTodoWithUser returns all comments for a todo together with their
// authors, ordered by comment ID.
func (r *Repo) ListByTodoWithUser(ctx context.Context, todoID int64) ([]domain.CommentWithUser, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var comments []domain.CommentWithUser
	if err := pgxscan.Select(ctx, q, &comments, listByTodoWithUserSQL, todoID); err != nil {
		return nil, fmt.Errorf("list comments by todo: %w", err)
	}

	if comments == nil {
		comments = []domain.CommentWithUser{}
	}

	return comments, nil
}

// DeleteByID removes a comment by ID and reports whether a row was deleted.
// Deleting a missing comment is not an error.
func (r *Repo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	query := postgres.Builder().
		Delete("comments").
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete comment query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "comment", id)
	}

	return tag.RowsAffected() > 0, nil
}
