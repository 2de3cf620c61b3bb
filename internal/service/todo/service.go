// Package todo implements todo creation and browsing.
package todo

import (
	"context"
	"log/slog"

	"github.com/taskmate/taskmate-backend/internal/domain"
)

// todoRepo defines the todo repository interface needed by todo service.
type todoRepo interface {
	Create(ctx context.Context, userID int64, title, contents, weather string) (*domain.Todo, error)
	GetWithUser(ctx context.Context, id int64) (*domain.TodoWithUser, error)
	ListWithUser(ctx context.Context, limit, offset int) ([]domain.TodoWithUser, error)
	Count(ctx context.Context) (int64, error)
}

// weatherClient defines the weather lookup interface needed by todo service.
type weatherClient interface {
	TodayWeather(ctx context.Context) (string, error)
}

// Service implements todo operations.
type Service struct {
	log     *slog.Logger
	todos   todoRepo
	weather weatherClient
}

// NewService creates a new todo service instance.
func NewService(logger *slog.Logger, todos todoRepo, weather weatherClient) *Service {
	return &Service{
		log:     logger.With("service", "todo"),
		todos:   todos,
		weather: weather,
	}
}
