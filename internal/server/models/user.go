package models

import "time"

// User is a registered account. PasswordDigest holds the bcrypt digest of the
// password — never the plaintext — and is rewritten only through the explicit
// password-change path. Email is stored trimmed and lowercased.
type User struct {
	ID             string
	Email          string
	PasswordDigest string
	CreatedAt      time.Time
}
