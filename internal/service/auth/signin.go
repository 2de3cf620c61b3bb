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

// Signin authenticates a user with email + password and returns a bearer token.
// An unknown email fails as an invalid request; a wrong password fails as an
// authentication error, which the boundary surfaces with a different status.
func (s *Service) Signin(ctx context.Context, input SigninInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewInvalidRequest("가입되지 않은 유저입니다")
		}
		return nil, fmt.Errorf("auth.Signin get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.NewAuthError("잘못된 비밀번호입니다")
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Email, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("auth.Signin generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user signed in", slog.Int64("user_id", user.ID))

	return &AuthResult{BearerToken: token}, nil
}
