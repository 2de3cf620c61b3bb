// Package adminlog implements the admin access log repository using PostgreSQL.
package adminlog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskmate/taskmate-backend/internal/adapter/postgres"
	"github.com/taskmate/taskmate-backend/internal/domain"
)

// Repo persists admin API access records.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new admin access log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts an access record. Duration is stored in milliseconds.
func (r *Repo) Create(ctx context.Context, entry domain.AdminAccessLog) error {
	query := postgres.Builder().
		Insert("admin_access_logs").
		Columns("user_id", "method", "path", "status", "duration_ms", "accessed_at").
		Values(entry.UserID, entry.Method, entry.Path, entry.Status, entry.Duration.Milliseconds(), entry.AccessedAt)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build create admin access log query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "admin_access_log", 0)
	}

	return nil
}
