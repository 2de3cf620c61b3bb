package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for goose
	"github.com/pressly/goose/v3"

	"github.com/taskmate/taskmate-backend/internal/adapter/postgres"
	"github.com/taskmate/taskmate-backend/internal/adapter/postgres/adminlog"
	commentrepo "github.com/taskmate/taskmate-backend/internal/adapter/postgres/comment"
	managerrepo "github.com/taskmate/taskmate-backend/internal/adapter/postgres/manager"
	todorepo "github.com/taskmate/taskmate-backend/internal/adapter/postgres/todo"
	userrepo "github.com/taskmate/taskmate-backend/internal/adapter/postgres/user"
	"github.com/taskmate/taskmate-backend/internal/auth"
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

// Run is the application entry point. It loads configuration, connects to
// the database, applies pending migrations, wires services and handlers,
// and serves HTTP until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if err := runMigrations(ctx, cfg.Database); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	logger.Info("migrations applied")

	users := userrepo.New(pool)
	todos := todorepo.New(pool)
	managers := managerrepo.New(pool)
	comments := commentrepo.New(pool)
	adminLogs := adminlog.New(pool)
	tx := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	weatherClient := weather.NewClient(cfg.Weather, logger)

	authService := authsvc.NewService(logger, users, tx, jwtManager, cfg.Auth)
	userService := usersvc.NewService(logger, users, tx, cfg.Auth)
	todoService := todosvc.NewService(logger, todos, weatherClient)
	managerService := managersvc.NewService(logger, todos, users, managers, tx)
	commentService := commentsvc.NewService(logger, todos, managers, comments)

	mux := rest.NewRouter(rest.RouterDeps{
		Auth:    rest.NewAuthHandler(authService, logger),
		User:    rest.NewUserHandler(userService, logger),
		Todo:    rest.NewTodoHandler(todoService, logger),
		Manager: rest.NewManagerHandler(managerService, logger),
		Comment: rest.NewCommentHandler(commentService, logger),
		Admin:   rest.NewAdminHandler(userService, commentService, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
		AdminChain: middleware.Chain(
			middleware.RequireAdmin(),
			middleware.AdminAudit(logger, adminLogs),
		),
	})

	chain := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		chain = append(chain, limiter.Limit(cfg.RateLimit.PerMinute))
	}
	chain = append(chain, middleware.Auth(jwtManager))

	handler := middleware.Chain(chain...)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// runMigrations applies pending goose migrations. Goose needs database/sql,
// so a short-lived stdlib connection is opened next to the pgx pool.
func runMigrations(ctx context.Context, cfg config.DatabaseConfig) error {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(cfg.MigrationsDir))
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
