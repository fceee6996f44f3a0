package models

import "time"

// Todo is a single todo item owned by a user. CompletedAt is set when the
// item transitions to completed and cleared when it transitions back.
type Todo struct {
	ID          string
	UserID      string
	Text        string
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
}
