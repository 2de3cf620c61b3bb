package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskmate/taskmate-backend/internal/domain"
)

// GetUser returns the user with the given ID.
func (s *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewInvalidRequest("User not found")
		}
		return nil, fmt.Errorf("user.GetUser: %w", err)
	}
	return u, nil
}
