// Package sessions declares the repository contract for the per-account
// registry of issued tokens. The registry is what makes otherwise-stateless
// signed tokens individually revocable.
package sessions

import "context"

// Repository defines operations over an account's ordered session-token list.
// All mutations are single-statement row operations, so concurrent appends
// and removes on the same account cannot lose updates.
type Repository interface {
	// Append registers the token for userID under scope. Appending a value
	// that is already present for the account is a no-op, not a duplicate.
	Append(ctx context.Context, userID, scope, token string) error

	// Remove deletes the entry whose value matches exactly. Removing a
	// non-existent value is a no-op, not an error.
	Remove(ctx context.Context, userID, token string) error

	// Contains reports whether the token is currently registered for userID
	// under scope, reflecting the latest committed state.
	Contains(ctx context.Context, userID, scope, token string) (bool, error)

	// ListByUser returns the account's token values in insertion order.
	ListByUser(ctx context.Context, userID string) ([]string, error)
}
