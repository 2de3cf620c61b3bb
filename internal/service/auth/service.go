// Package auth implements signup and signin operations.
package auth

import (
	"context"
	"log/slog"

	"github.com/taskmate/taskmate-backend/internal/config"
	"github.com/taskmate/taskmate-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, email, passwordHash string, role domain.UserRole) (*domain.User, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID int64, email, role string) (string, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	tx    txManager
	jwt   jwtManager
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, tx txManager, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		tx:    tx,
		jwt:   jwt,
		cfg:   cfg,
	}
}
