package comment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskmate/taskmate-backend/internal/domain"
)

// SaveComment attaches a comment to the todo. The author must currently be a
// registered manager of that todo; ownership alone does not grant the right
// to comment.
func (s *Service) SaveComment(ctx context.Context, userID, todoID int64, contents string) (*domain.Comment, error) {
	if contents == "" {
		return nil, domain.NewInvalidRequest("contents is required")
	}

	if _, err := s.todos.GetWithUser(ctx, todoID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewInvalidRequest("Todo not found")
		}
		return nil, fmt.Errorf("comment.SaveComment get todo: %w", err)
	}

	isManager, err := s.managers.ExistsByTodoAndUser(ctx, todoID, userID)
	if err != nil {
		return nil, fmt.Errorf("comment.SaveComment check manager: %w", err)
	}
	if !isManager {
		return nil, domain.NewInvalidRequest("관리자만 댓글을 추가할 수 있습니다")
	}

	created, err := s.comments.Create(ctx, userID, todoID, contents)
	if err != nil {
		return nil, fmt.Errorf("comment.SaveComment create: %w", err)
	}

	s.log.InfoContext(ctx, "comment created",
		slog.Int64("comment_id", created.ID),
		slog.Int64("todo_id", todoID))

	return created, nil
}
