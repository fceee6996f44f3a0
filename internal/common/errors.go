// Package common defines shared constants and sentinel errors used across
// the layers of TodoKeeper. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound   = errors.New("not found")
	ErrorEmailTaken = errors.New("email already taken")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors (malformed email, password below minimum length).
	ErrorValidation = errors.New("validation error")

	// Login errors. Deliberately uniform: an unknown email and a wrong
	// password must be indistinguishable for the caller.
	ErrorInvalidCredentials = errors.New("invalid email or password")

	// Auth errors (invalid, malformed, or expired token).
	ErrInvalidToken = errors.New("invalid token")

	// The token verifies cryptographically but is not registered (anymore)
	// for the account it names.
	ErrorTokenNotActive = errors.New("token is not active")
)
