// Package user implements user profile, password change, and admin role
// change operations.
package user

import (
	"context"
	"log/slog"

	"github.com/taskmate/taskmate-backend/internal/config"
	"github.com/taskmate/taskmate-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateRole(ctx context.Context, id int64, role domain.UserRole) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	tx    txManager
	cfg   config.AuthConfig
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, tx txManager, cfg config.AuthConfig) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		tx:    tx,
		cfg:   cfg,
	}
}
