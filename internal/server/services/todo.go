package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TodoPatch carries the optional fields of a todo update. A nil field is
// left untouched.
type TodoPatch struct {
	Text      *string
	Completed *bool
}

// TodoService provides owner-scoped todo CRUD.
type TodoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTodoService constructs a TodoService.
func NewTodoService(db *sql.DB, m repomanager.RepositoryManager) *TodoService {
	return &TodoService{db: db, repomanager: m}
}

// Create inserts a new todo for userID. Empty text is a validation error.
func (s *TodoService) Create(ctx context.Context, userID, text string) (*models.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, common.ErrorValidation
	}
	todo, err := s.repomanager.Todos(s.db).Create(ctx, &models.Todo{UserID: userID, Text: text})
	if err != nil {
		return nil, fmt.Errorf("error creating todo: %w", err)
	}
	return todo, nil
}

// List returns the user's todos in creation order.
func (s *TodoService) List(ctx context.Context, userID string) ([]*models.Todo, error) {
	result, err := s.repomanager.Todos(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing todos: %w", err)
	}
	return result, nil
}

// Get returns the user's todo by id. A syntactically invalid id behaves like
// a missing row.
func (s *TodoService) Get(ctx context.Context, userID, id string) (*models.Todo, error) {
	if err := validateTodoID(id); err != nil {
		return nil, err
	}
	todo, err := s.repomanager.Todos(s.db).GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error getting todo: %w", err)
	}
	return todo, nil
}

// Update applies the patch. Completing a todo stamps CompletedAt; clearing
// the completed flag wipes it.
func (s *TodoService) Update(ctx context.Context, userID, id string, patch TodoPatch) (*models.Todo, error) {
	todo, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.Text != nil {
		text := strings.TrimSpace(*patch.Text)
		if text == "" {
			return nil, common.ErrorValidation
		}
		todo.Text = text
	}
	if patch.Completed != nil {
		todo.Completed = *patch.Completed
		if todo.Completed {
			now := time.Now()
			todo.CompletedAt = &now
		} else {
			todo.CompletedAt = nil
		}
	}

	if err := s.repomanager.Todos(s.db).Update(ctx, todo); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating todo: %w", err)
	}
	return todo, nil
}

// Delete removes the user's todo by id.
func (s *TodoService) Delete(ctx context.Context, userID, id string) error {
	if err := validateTodoID(id); err != nil {
		return err
	}
	if err := s.repomanager.Todos(s.db).Delete(ctx, userID, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting todo: %w", err)
	}
	return nil
}

// validateTodoID treats malformed ids as not-found, matching the endpoint
// contract (404, not 400).
func validateTodoID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}
	return nil
}
