package todo

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskmate/taskmate-backend/internal/domain"
)

const (
	defaultPage = 1
	defaultSize = 10
)

// TodoPage is one page of todos ordered by modification time, descending.
type TodoPage struct {
	Items []domain.TodoWithUser
	Page  int
	Size  int
	Total int64
}

// GetTodos returns a page of todos with their owners. Page numbering starts
// at 1; non-positive page or size fall back to the defaults.
func (s *Service) GetTodos(ctx context.Context, page, size int) (*TodoPage, error) {
	if page < 1 {
		page = defaultPage
	}
	if size < 1 {
		size = defaultSize
	}

	items, err := s.todos.ListWithUser(ctx, size, (page-1)*size)
	if err != nil {
		return nil, fmt.Errorf("todo.GetTodos list: %w", err)
	}

	total, err := s.todos.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("todo.GetTodos count: %w", err)
	}

	return &TodoPage{Items: items, Page: page, Size: size, Total: total}, nil
}

// GetTodo returns a single todo with its owner.
func (s *Service) GetTodo(ctx context.Context, id int64) (*domain.TodoWithUser, error) {
	t, err := s.todos.GetWithUser(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewInvalidRequest("Todo not found")
		}
		return nil, fmt.Errorf("todo.GetTodo: %w", err)
	}
	return t, nil
}
