package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskmate/taskmate-backend/internal/domain"
)

// ChangeUserRole overwrites the user's role unconditionally.
// Admin-only; the role check happens at the transport boundary.
func (s *Service) ChangeUserRole(ctx context.Context, userID int64, roleName string) error {
	role, err := domain.ParseUserRole(roleName)
	if err != nil {
		return err
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.users.GetByID(txCtx, userID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewInvalidRequest("User not found")
			}
			return fmt.Errorf("user.ChangeUserRole get user: %w", err)
		}

		if err := s.users.UpdateRole(txCtx, userID, role); err != nil {
			return fmt.Errorf("user.ChangeUserRole update: %w", err)
		}

		s.log.InfoContext(ctx, "user role changed",
			slog.Int64("user_id", userID),
			slog.String("role", role.String()))
		return nil
	})
}
