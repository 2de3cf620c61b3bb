package domain

// UserRole is the application-level role of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

// ParseUserRole converts a role name from a request into a UserRole.
// Unknown names fail with the fixed invalid-role message.
func ParseUserRole(name string) (UserRole, error) {
	role := UserRole(name)
	if !role.IsValid() {
		return "", NewInvalidRequest("유효하지 않은 UserRole 입니다")
	}
	return role, nil
}
