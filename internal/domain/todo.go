package domain

import "time"

// Todo is a task item. The owner (UserID) is fixed at creation, as is the
// weather label captured from the weather collaborator at save time.
type Todo struct {
	ID         int64
	Title      string
	Contents   string
	Weather    string
	UserID     int64
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// TodoWithUser is a todo joined with its owner, as returned by list and
// detail queries.
type TodoWithUser struct {
	Todo
	User User
}
