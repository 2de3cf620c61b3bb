package manager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskmate/taskmate-backend/internal/domain"
)

// DeleteManager removes a manager assignment. Only the todo's owner may
// remove managers, and the assignment must belong to the given todo.
func (s *Service) DeleteManager(ctx context.Context, requesterID, todoID, managerID int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.users.GetByID(txCtx, requesterID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewInvalidRequest("User not found")
			}
			return fmt.Errorf("manager.DeleteManager get requester: %w", err)
		}

		todo, err := s.todos.GetWithUser(txCtx, todoID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewInvalidRequest("Todo not found")
			}
			return fmt.Errorf("manager.DeleteManager get todo: %w", err)
		}

		// Covers both a missing owner and an owner other than the requester.
		if todo.User.ID == 0 || todo.UserID != requesterID {
			return domain.NewInvalidRequest("해당 일정을 만든 유저가 유효하지 않습니다")
		}

		m, err := s.managers.GetByID(txCtx, managerID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewInvalidRequest("Manager not found")
			}
			return fmt.Errorf("manager.DeleteManager get manager: %w", err)
		}

		if m.TodoID != todoID {
			return domain.NewInvalidRequest("해당 일정에 등록된 담당자가 아닙니다")
		}

		if err := s.managers.Delete(txCtx, m.ID); err != nil {
			return fmt.Errorf("manager.DeleteManager delete: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "manager removed",
		slog.Int64("todo_id", todoID),
		slog.Int64("manager_id", managerID))

	return nil
}
