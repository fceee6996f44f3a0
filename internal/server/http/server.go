// Package http exposes the public HTTP API: account registration and login,
// the authenticated identity/revocation endpoints, and owner-scoped todo CRUD.
// The authentication gate lives here as a middleware; everything it guards is
// resolved through the services layer.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

// UserService is the slice of services.UserService the transport needs.
type UserService interface {
	Register(ctx context.Context, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	RevokeToken(ctx context.Context, userID, token string) error
	ChangePassword(ctx context.Context, userID, current, next string) error
}

// TodoService is the slice of services.TodoService the transport needs.
type TodoService interface {
	Create(ctx context.Context, userID, text string) (*models.Todo, error)
	List(ctx context.Context, userID string) ([]*models.Todo, error)
	Get(ctx context.Context, userID, id string) (*models.Todo, error)
	Update(ctx context.Context, userID, id string, patch services.TodoPatch) (*models.Todo, error)
	Delete(ctx context.Context, userID, id string) error
}

// HTTPServer serves the public API.
type HTTPServer struct {
	address string
	logger  logging.Logger
	users   UserService
	todos   TodoService
}

// NewHTTPServer constructs the server.
func NewHTTPServer(a string, l logging.Logger, us UserService, ts TodoService) (*HTTPServer, error) {
	return &HTTPServer{
		address: a,
		logger:  l.With("module", "http_server"),
		users:   us,
		todos:   ts,
	}, nil
}

// Router builds the gin engine with all routes registered.
func (s *HTTPServer) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/users", s.handleRegister)
	r.POST("/users/login", s.handleLogin)

	authed := r.Group("/", s.authenticate())
	authed.GET("/users/me", s.handleMe)
	authed.DELETE("/users/me/token", s.handleRevokeToken)
	authed.PUT("/users/me/password", s.handleChangePassword)

	authed.POST("/todos", s.handleCreateTodo)
	authed.GET("/todos", s.handleListTodos)
	authed.GET("/todos/:todoId", s.handleGetTodo)
	authed.PATCH("/todos/:todoId", s.handleUpdateTodo)
	authed.DELETE("/todos/:todoId", s.handleDeleteTodo)

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is done.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
