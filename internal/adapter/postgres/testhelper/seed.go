package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskmate/taskmate-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with role USER and a placeholder password hash.
// Returns the stored domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserWithRole(t, pool, domain.UserRoleUser)
}

// SeedUserWithRole creates a user with the given role.
func SeedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	var u domain.User
	err := pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, role)
		 VALUES ($1, $2, $3)
		 RETURNING id, email, password_hash, role, created_at, modified_at`,
		"testuser-"+suffix+"@example.com", "$2a$10$test-hash-"+suffix, role.String(),
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.ModifiedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return u
}

// SeedTodo creates a todo owned by userID. Returns the stored domain.Todo.
func SeedTodo(t *testing.T, pool *pgxpool.Pool, userID int64) domain.Todo {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	var td domain.Todo
	err := pool.QueryRow(ctx,
		`INSERT INTO todos (title, contents, weather, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, title, contents, weather, user_id, created_at, modified_at`,
		"Test todo "+suffix, "Contents "+suffix, "맑음", userID,
	).Scan(&td.ID, &td.Title, &td.Contents, &td.Weather, &td.UserID, &td.CreatedAt, &td.ModifiedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTodo insert: %v", err)
	}

	return td
}

// SeedManager assigns userID as a manager of todoID. Returns the stored domain.Manager.
func SeedManager(t *testing.T, pool *pgxpool.Pool, userID, todoID int64) domain.Manager {
	t.Helper()
	ctx := context.Background()

	var m domain.Manager
	err := pool.QueryRow(ctx,
		`INSERT INTO managers (user_id, todo_id)
		 VALUES ($1, $2)
		 RETURNING id, user_id, todo_id, created_at`,
		userID, todoID,
	).Scan(&m.ID, &m.UserID, &m.TodoID, &m.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedManager insert: %v", err)
	}

	return m
}

// SeedComment creates a comment by userID on todoID. Returns the stored domain.Comment.
func SeedComment(t *testing.T, pool *pgxpool.Pool, userID, todoID int64) domain.Comment {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	var c domain.Comment
	err := pool.QueryRow(ctx,
		`INSERT INTO comments (contents, user_id, todo_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, contents, user_id, todo_id, created_at, modified_at`,
		"Test comment "+suffix, userID, todoID,
	).Scan(&c.ID, &c.Contents, &c.UserID, &c.TodoID, &c.CreatedAt, &c.ModifiedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedComment insert: %v", err)
	}

	return c
}
