package todo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskmate/taskmate-backend/internal/domain"
)

// SaveTodoInput holds parameters for the todo creation operation.
type SaveTodoInput struct {
	Title    string
	Contents string
}

// Validate validates the todo creation input.
func (i SaveTodoInput) Validate() error {
	if i.Title == "" {
		return domain.NewInvalidRequest("title is required")
	}
	if i.Contents == "" {
		return domain.NewInvalidRequest("contents is required")
	}
	return nil
}

// SaveTodo creates a todo owned by userID. The current weather label is
// fetched once and stored with the todo; it is never refreshed afterwards.
func (s *Service) SaveTodo(ctx context.Context, userID int64, input SaveTodoInput) (*domain.Todo, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	weather, err := s.weather.TodayWeather(ctx)
	if err != nil {
		return nil, err
	}

	created, err := s.todos.Create(ctx, userID, input.Title, input.Contents, weather)
	if err != nil {
		return nil, fmt.Errorf("todo.SaveTodo create: %w", err)
	}

	s.log.InfoContext(ctx, "todo created",
		slog.Int64("todo_id", created.ID),
		slog.Int64("user_id", userID))

	return created, nil
}
