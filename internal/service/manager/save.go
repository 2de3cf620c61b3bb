package manager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskmate/taskmate-backend/internal/domain"
)

// SaveManager assigns targetUserID as a manager of the todo. Only the todo's
// owner may assign managers, and the owner cannot assign themself.
func (s *Service) SaveManager(ctx context.Context, requesterID, todoID, targetUserID int64) (*domain.ManagerWithUser, error) {
	var result *domain.ManagerWithUser

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		todo, err := s.todos.GetWithUser(txCtx, todoID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewInvalidRequest("Todo not found")
			}
			return fmt.Errorf("manager.SaveManager get todo: %w", err)
		}

		if todo.User.ID == 0 {
			return domain.NewInvalidRequest("Todo에 연관된 사용자 정보가 없습니다")
		}

		if todo.UserID != requesterID {
			return domain.NewInvalidRequest("담당자를 등록하려고 하는 유저가 일정을 만든 유저가 유효하지 않습니다")
		}

		target, err := s.users.GetByID(txCtx, targetUserID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewInvalidRequest("등록하려고 하는 담당자 유저가 존재하지 않습니다")
			}
			return fmt.Errorf("manager.SaveManager get target user: %w", err)
		}

		if target.ID == requesterID {
			return domain.NewInvalidRequest("일정 작성자는 본인을 담당자로 등록할 수 없습니다")
		}

		created, err := s.managers.Create(txCtx, target.ID, todoID)
		if err != nil {
			// The (user_id, todo_id) unique constraint: a repeat assignment
			// is a caller mistake, not a server failure.
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.NewInvalidRequest("이미 등록된 담당자입니다")
			}
			return fmt.Errorf("manager.SaveManager create: %w", err)
		}

		result = &domain.ManagerWithUser{Manager: *created, User: *target}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "manager assigned",
		slog.Int64("todo_id", todoID),
		slog.Int64("user_id", result.UserID))

	return result, nil
}
