// Package comment implements comment authorization rules: only users
// registered as managers of a todo may comment on it. The todo's owner is
// not implicitly a manager.
package comment

import (
	"context"
	"log/slog"

	"github.com/taskmate/taskmate-backend/internal/domain"
)

// todoRepo defines the todo repository interface needed by comment service.
type todoRepo interface {
	GetWithUser(ctx context.Context, id int64) (*domain.TodoWithUser, error)
}

// managerRepo defines the manager repository interface needed by comment service.
type managerRepo interface {
	ExistsByTodoAndUser(ctx context.Context, todoID, userID int64) (bool, error)
}

// commentRepo defines the comment repository interface needed by comment service.
type commentRepo interface {
	Create(ctx context.Context, userID, todoID int64, contents string) (*domain.Comment, error)
	ListByTodoWithUser(ctx context.Context, todoID int64) ([]domain.CommentWithUser, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// Service implements comment operations.
type Service struct {
	log      *slog.Logger
	todos    todoRepo
	managers managerRepo
	comments commentRepo
}

// NewService creates a new comment service instance.
func NewService(logger *slog.Logger, todos todoRepo, managers managerRepo, comments commentRepo) *Service {
	return &Service{
		log:      logger.With("service", "comment"),
		todos:    todos,
		managers: managers,
		comments: comments,
	}
}
