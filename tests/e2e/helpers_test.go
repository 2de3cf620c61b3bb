//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/taskmate/taskmate-backend/internal/adapter/postgres"
	"github.com/taskmate/taskmate-backend/internal/adapter/postgres/adminlog"
	commentrepo "github.com/taskmate/taskmate-backend/internal/adapter/postgres/comment"
	managerrepo "github.com/taskmate/taskmate-backend/internal/adapter/postgres/manager"
	"github.com/taskmate/taskmate-backend/internal/adapter/postgres/testhelper"
	todorepo "github.com/taskmate/taskmate-backend/internal/adapter/postgres/todo"
	userrepo "github.com/taskmate/taskmate-backend/internal/adapter/postgres/user"
	authpkg "github.com/taskmate/taskmate-backend/internal/auth"
	"github.com/taskmate/taskmate-backend/internal/client/weather"
	"github.com/taskmate/taskmate-backend/internal/config"
	authsvc "github.com/taskmate/taskmate-backend/internal/service/auth"
	commentsvc "github.com/taskmate/taskmate-backend/internal/service/comment"
	managersvc "github.com/taskmate/taskmate-backend/internal/service/manager"
	todosvc "github.com/taskmate/taskmate-backend/internal/service/todo"
	usersvc "github.com/taskmate/taskmate-backend/internal/service/user"
	"github.com/taskmate/taskmate-backend/internal/transport/middleware"
	"github.com/taskmate/taskmate-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper). The external weather API is
// replaced with a local stub that always knows today's weather.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	todos := todorepo.New(pool)
	managers := managerrepo.New(pool)
	comments := commentrepo.New(pool)
	adminLogs := adminlog.New(pool)

	authCfg := config.AuthConfig{
		JWTSecret:        "e2e-test-secret",
		JWTIssuer:        "taskmate",
		AccessTokenTTL:   time.Hour,
		PasswordHashCost: 4, // bcrypt.MinCost, keeps signup fast
	}
	jwtManager := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	weatherStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		today := time.Now().Format("01-02")
		fmt.Fprintf(w, `[{"date":%q,"weather":"Sunny"}]`, today)
	}))
	t.Cleanup(weatherStub.Close)
	weatherClient := weather.NewClientWithURL(weatherStub.URL, logger)

	authService := authsvc.NewService(logger, users, txm, jwtManager, authCfg)
	userService := usersvc.NewService(logger, users, txm, authCfg)
	todoService := todosvc.NewService(logger, todos, weatherClient)
	managerService := managersvc.NewService(logger, todos, users, managers, txm)
	commentService := commentsvc.NewService(logger, todos, managers, comments)

	mux := rest.NewRouter(rest.RouterDeps{
		Auth:    rest.NewAuthHandler(authService, logger),
		User:    rest.NewUserHandler(userService, logger),
		Todo:    rest.NewTodoHandler(todoService, logger),
		Manager: rest.NewManagerHandler(managerService, logger),
		Comment: rest.NewCommentHandler(commentService, logger),
		Admin:   rest.NewAdminHandler(userService, commentService, logger),
		Health:  rest.NewHealthHandler(pool, "e2e"),
		AdminChain: middleware.Chain(
			middleware.RequireAdmin(),
			middleware.AdminAudit(logger, adminLogs),
		),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Auth(jwtManager),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtManager,
	}
}

// restRequest sends a JSON request and returns the status code and decoded
// body (nil for empty responses).
func (ts *testServer) restRequest(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(bytes.TrimSpace(raw)) == 0 {
		return resp.StatusCode, nil
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		// List endpoints return a bare array; wrap it for callers.
		var list []any
		require.NoError(t, json.Unmarshal(raw, &list))
		decoded = map[string]any{"items": list}
	}
	return resp.StatusCode, decoded
}

// signupUser registers a fresh user and returns its bearer token and id.
func (ts *testServer) signupUser(t *testing.T, role string) (string, int64) {
	t.Helper()

	email := fmt.Sprintf("e2e-%s@example.com", uuid.NewString()[:8])
	status, body := ts.restRequest(t, http.MethodPost, "/auth/signup", map[string]string{
		"email":    email,
		"password": "Password1",
		"role":     role,
	}, "")
	require.Equal(t, http.StatusOK, status, "signup failed: %v", body)

	token, ok := body["token"].(string)
	require.True(t, ok, "expected token in signup response")

	identity, err := ts.jwt.ValidateAccessToken(token)
	require.NoError(t, err)
	return token, identity.UserID
}

// promoteToAdmin escalates the user directly in the database and signs the
// user in again so the fresh token carries the ADMIN role claim.
func (ts *testServer) promoteToAdmin(t *testing.T, userID int64) string {
	t.Helper()

	var email string
	err := ts.Pool.QueryRow(t.Context(),
		"UPDATE users SET role = 'ADMIN' WHERE id = $1 RETURNING email", userID).Scan(&email)
	require.NoError(t, err)

	status, body := ts.restRequest(t, http.MethodPost, "/auth/signin", map[string]string{
		"email":    email,
		"password": "Password1",
	}, "")
	require.Equal(t, http.StatusOK, status, "signin failed: %v", body)

	token, ok := body["token"].(string)
	require.True(t, ok, "expected token in signin response")
	return token
}
