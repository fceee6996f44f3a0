package models

import "time"

// SessionToken is one currently valid, revocable issued token tied to a user
// and a scope. Token is the opaque signed value and must be treated as
// secret-bearing. Rows are never mutated in place: a token is appended on
// issue and deleted on revocation.
type SessionToken struct {
	ID        int64
	UserID    string
	Scope     string
	Token     string
	CreatedAt time.Time
}
