package domain

import "time"

// AdminAccessLog records one call to an admin endpoint: who called it, when,
// which path, and how long the handler ran. Written by the admin audit
// middleware regardless of the handler's outcome.
type AdminAccessLog struct {
	ID         int64
	UserID     int64
	Method     string
	Path       string
	Status     int
	Duration   time.Duration
	AccessedAt time.Time
}
