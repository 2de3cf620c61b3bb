package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskmate/taskmate-backend/internal/domain"
)

// ChangePasswordInput holds parameters for the password change operation.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// ChangePassword replaces the user's password after three order-sensitive
// checks: the new password must meet policy, must differ from the current
// password, and the supplied old password must match the current hash.
// Policy is checked before sameness, sameness before old-password correctness.
func (s *Service) ChangePassword(ctx context.Context, userID int64, input ChangePasswordInput) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.users.GetByID(txCtx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewInvalidRequest("User not found")
			}
			return fmt.Errorf("user.ChangePassword get user: %w", err)
		}

		if !meetsPasswordPolicy(input.NewPassword) {
			return domain.NewInvalidRequest("새 비밀번호는 8자 이상이어야 하고, 숫자와 대문자를 포함해야 합니다.")
		}

		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.NewPassword)) == nil {
			return domain.NewInvalidRequest("새 비밀번호는 기존 비밀번호와 같을 수 없습니다.")
		}

		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.OldPassword)) != nil {
			return domain.NewInvalidRequest("잘못된 비밀번호입니다.")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.PasswordHashCost)
		if err != nil {
			return fmt.Errorf("user.ChangePassword hash password: %w", err)
		}

		if err := s.users.UpdatePassword(txCtx, userID, string(hash)); err != nil {
			return fmt.Errorf("user.ChangePassword update: %w", err)
		}

		s.log.InfoContext(ctx, "password changed", slog.Int64("user_id", userID))
		return nil
	})
}

// meetsPasswordPolicy reports whether the password is at least 8 characters
// long and contains a digit and an upper-case letter.
func meetsPasswordPolicy(password string) bool {
	// Character count, not byte count — a multibyte password must not pass
	// the minimum length on byte length alone.
	if utf8.RuneCountInString(password) < 8 {
		return false
	}
	var hasDigit, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	return hasDigit && hasUpper
}
