package manager

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskmate/taskmate-backend/internal/domain"
)

// GetManagers returns all manager assignments for the todo with the
// assigned users.
func (s *Service) GetManagers(ctx context.Context, todoID int64) ([]domain.ManagerWithUser, error) {
	if _, err := s.todos.GetWithUser(ctx, todoID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewInvalidRequest("Todo not found")
		}
		return nil, fmt.Errorf("manager.GetManagers get todo: %w", err)
	}

	list, err := s.managers.ListByTodoWithUser(ctx, todoID)
	if err != nil {
		return nil, fmt.Errorf("manager.GetManagers list: %w", err)
	}

	return list, nil
}
