package todos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the todo with a fresh uuid.
func (r *PostgresRepository) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	query := `
		INSERT INTO todos (id, user_id, text, completed, completed_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	todo.ID = uuid.NewString()
	err := r.db.QueryRowContext(ctx, query,
		todo.ID, todo.UserID, todo.Text, todo.Completed, todo.CompletedAt).
		Scan(&todo.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return todo, nil
}

// ListByUser returns the user's todos in creation order.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Todo, error) {
	query := `
		SELECT id, user_id, text, completed, completed_at, created_at FROM todos
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Todo
	for rows.Next() {
		todo := &models.Todo{}
		if err := rows.Scan(&todo.ID, &todo.UserID, &todo.Text,
			&todo.Completed, &todo.CompletedAt, &todo.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// GetByID returns the todo only when owned by userID.
func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*models.Todo, error) {
	query := `
		SELECT id, user_id, text, completed, completed_at, created_at FROM todos
		WHERE id = $1 AND user_id = $2
	`
	todo := &models.Todo{}
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&todo.ID, &todo.UserID, &todo.Text,
			&todo.Completed, &todo.CompletedAt, &todo.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return todo, nil
}

// Update rewrites the mutable fields of the user's todo.
func (r *PostgresRepository) Update(ctx context.Context, todo *models.Todo) error {
	query := `
		UPDATE todos SET text = $3, completed = $4, completed_at = $5
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query,
		todo.ID, todo.UserID, todo.Text, todo.Completed, todo.CompletedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

// Delete removes the user's todo.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `
		DELETE FROM todos
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}
