package sessions

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/todokeeper/internal/dbx"
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

// Append inserts the token row. The UNIQUE (user_id, token) constraint plus
// ON CONFLICT DO NOTHING turns a duplicate append into a no-op.
func (r *PostgresRepository) Append(ctx context.Context, userID, scope, token string) error {
	query := `
		INSERT INTO session_tokens (user_id, scope, token)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, token) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, userID, scope, token); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Remove deletes the matching token row, if any.
func (r *PostgresRepository) Remove(ctx context.Context, userID, token string) error {
	query := `
		DELETE FROM session_tokens
		WHERE user_id = $1 AND token = $2
	`
	if _, err := r.db.ExecContext(ctx, query, userID, token); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Contains checks the committed registry state for the exact triple.
func (r *PostgresRepository) Contains(ctx context.Context, userID, scope, token string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM session_tokens
			WHERE user_id = $1 AND scope = $2 AND token = $3
		)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, scope, token).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// ListByUser returns token values in insertion order (serial key order).
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT token FROM session_tokens
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return tokens, nil
}
