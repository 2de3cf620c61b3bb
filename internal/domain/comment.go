package domain

import "time"

// Comment is a remark attached to a todo by one of its managers.
type Comment struct {
	ID         int64
	Contents   string
	UserID     int64
	TodoID     int64
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// CommentWithUser is a comment joined with its author.
type CommentWithUser struct {
	Comment
	User User
}
