package auth

import "github.com/taskmate/taskmate-backend/internal/domain"

// SignupInput holds parameters for the signup operation.
type SignupInput struct {
	Email    string
	Password string
	Role     string
}

// Validate validates the signup input.
func (i SignupInput) Validate() error {
	if i.Email == "" {
		return domain.NewInvalidRequest("이메일은 필수 입력 항목입니다")
	}
	if i.Password == "" {
		return domain.NewInvalidRequest("비밀번호는 필수 입력 항목입니다")
	}
	return nil
}

// SigninInput holds parameters for the signin operation.
type SigninInput struct {
	Email    string
	Password string
}

// Validate validates the signin input.
func (i SigninInput) Validate() error {
	if i.Email == "" {
		return domain.NewInvalidRequest("이메일은 필수 입력 항목입니다")
	}
	if i.Password == "" {
		return domain.NewInvalidRequest("비밀번호는 필수 입력 항목입니다")
	}
	return nil
}
