package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskmate/taskmate-backend/internal/domain"
)

// Signup registers a new user and returns a bearer token for it.
// A duplicate email fails with a fixed user-facing message.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	role, err := domain.ParseUserRole(input.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup hash password: %w", err)
	}

	var user *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.users.ExistsByEmail(txCtx, input.Email)
		if err != nil {
			return fmt.Errorf("auth.Signup check email: %w", err)
		}
		if exists {
			return domain.NewInvalidRequest("이미 존재하는 이메일입니다")
		}

		user, err = s.users.Create(txCtx, input.Email, string(hash), role)
		if err != nil {
			// A concurrent signup can slip between the existence check and
			// the insert; the unique violation gets the same message.
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.NewInvalidRequest("이미 존재하는 이메일입니다")
			}
			return fmt.Errorf("auth.Signup create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Email, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("auth.Signup generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up",
		slog.Int64("user_id", user.ID),
		slog.String("role", user.Role.String()))

	return &AuthResult{BearerToken: token}, nil
}
