package comment

import (
	"context"
	"fmt"

	"github.com/taskmate/taskmate-backend/internal/domain"
)

// GetComments returns all comments for the todo with their authors, in
// insertion order. A todo with no comments yields an empty list, never an
// error.
func (s *Service) GetComments(ctx context.Context, todoID int64) ([]domain.CommentWithUser, error) {
	list, err := s.comments.ListByTodoWithUser(ctx, todoID)
	if err != nil {
		return nil, fmt.Errorf("comment.GetComments list: %w", err)
	}
	return list, nil
}
