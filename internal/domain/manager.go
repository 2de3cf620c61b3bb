package domain

import "time"

// Manager links a user to a todo as co-owner. A manager found by id whose
// TodoID differs from the todo being operated on is invalid for that todo.
type Manager struct {
	ID        int64
	UserID    int64
	TodoID    int64
	CreatedAt time.Time
}

// ManagerWithUser is a manager assignment joined with the assigned user.
type ManagerWithUser struct {
	Manager
	User User
}
