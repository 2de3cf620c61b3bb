package domain

import "time"

// User represents a registered account. The password is stored as a bcrypt
// hash and is only ever replaced through the password-change rule; the role
// is only ever replaced through the admin override.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	ModifiedAt   time.Time
}

// IsAdmin reports whether the user holds the elevated role.
func (u *User) IsAdmin() bool { return u.Role == UserRoleAdmin }
