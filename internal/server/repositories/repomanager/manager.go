// Package repomanager defines a factory abstraction that vends repositories
// bound to a concrete database handle or transaction, so services can run the
// same repository code inside or outside a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/todos"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to the provided
// DBTX and exposes a schema migration hook.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Todos(db dbx.DBTX) todos.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
