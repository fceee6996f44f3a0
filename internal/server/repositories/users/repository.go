// Package users declares the server-side repository contract for account
// records: the credential store of the authentication subsystem.
package users

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/server/models"
)

// Repository defines persistence operations for accounts.
type Repository interface {
	// Create inserts a new account. The email must already be normalized
	// (trimmed, lowercased); a write that violates the unique-email invariant
	// returns common.ErrorEmailTaken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail looks up an account by its normalized email.
	// Returns common.ErrorNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID looks up an account by id. Returns common.ErrorNotFound when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByIDTokenScope returns the account only when it exists AND the given
	// token is currently registered for it under the given scope. This is the
	// authoritative authentication predicate: a signed token that has been
	// revoked no longer matches. Returns common.ErrorNotFound on miss.
	GetByIDTokenScope(ctx context.Context, id, token, scope string) (*models.User, error)

	// UpdatePasswordDigest rewrites only the password digest of the account.
	// This is the single write path through which a digest may change.
	UpdatePasswordDigest(ctx context.Context, id, digest string) error
}
