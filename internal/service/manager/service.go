// Package manager implements manager (co-owner) assignment rules: only a
// todo's owner may assign or remove managers, and an owner may not assign
// themself.
package manager

import (
	"context"
	"log/slog"

	"github.com/taskmate/taskmate-backend/internal/domain"
)

// todoRepo defines the todo repository interface needed by manager service.
type todoRepo interface {
	GetWithUser(ctx context.Context, id int64) (*domain.TodoWithUser, error)
}

// userRepo defines the user repository interface needed by manager service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// managerRepo defines the manager repository interface needed by manager service.
type managerRepo interface {
	Create(ctx context.Context, userID, todoID int64) (*domain.Manager, error)
	GetByID(ctx context.Context, id int64) (*domain.Manager, error)
	ListByTodoWithUser(ctx context.Context, todoID int64) ([]domain.ManagerWithUser, error)
	Delete(ctx context.Context, id int64) error
}

// txManager defines the transaction manager interface needed by manager service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements manager assignment operations.
type Service struct {
	log      *slog.Logger
	todos    todoRepo
	users    userRepo
	managers managerRepo
	tx       txManager
}

// NewService creates a new manager service instance.
func NewService(logger *slog.Logger, todos todoRepo, users userRepo, managers managerRepo, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "manager"),
		todos:    todos,
		users:    users,
		managers: managers,
		tx:       tx,
	}
}
