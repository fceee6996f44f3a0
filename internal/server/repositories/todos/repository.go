// Package todos declares the repository contract for todo items.
// Every operation is scoped to the owning user.
package todos

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/server/models"
)

// Repository defines persistence operations for todo items.
type Repository interface {
	// Create inserts a new todo owned by todo.UserID.
	Create(ctx context.Context, todo *models.Todo) (*models.Todo, error)

	// ListByUser returns the user's todos in creation order.
	ListByUser(ctx context.Context, userID string) ([]*models.Todo, error)

	// GetByID returns the todo only when it is owned by userID.
	// Returns common.ErrorNotFound otherwise.
	GetByID(ctx context.Context, userID, id string) (*models.Todo, error)

	// Update rewrites text, completed, and completed_at of the user's todo.
	// Returns common.ErrorNotFound when no owned row matches.
	Update(ctx context.Context, todo *models.Todo) error

	// Delete removes the user's todo. Returns common.ErrorNotFound when no
	// owned row matches.
	Delete(ctx context.Context, userID, id string) error
}
