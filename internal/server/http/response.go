package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/gin-gonic/gin"
)

// errorResponse is the uniform error body for every non-2xx reply.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// userResponse is the public view of an account. The password digest never
// leaves the server.
type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// todoResponse is the public view of a todo item.
type todoResponse struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email}
}

func toTodoResponse(t *models.Todo) todoResponse {
	return todoResponse{
		ID:          t.ID,
		Text:        t.Text,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
	}
}

func toTodoResponses(todos []*models.Todo) []todoResponse {
	result := make([]todoResponse, 0, len(todos))
	for _, t := range todos {
		result = append(result, toTodoResponse(t))
	}
	return result
}

// abortWithError translates a service error into an HTTP status and a
// uniform error body. Unrecognized errors become a generic 500 so that
// internal details never leak to the client.
func (s *HTTPServer) abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		c.AbortWithStatusJSON(http.StatusBadRequest,
			errorResponse{Code: "validation_failed", Message: "validation failed"})
	case errors.Is(err, common.ErrorEmailTaken):
		c.AbortWithStatusJSON(http.StatusConflict,
			errorResponse{Code: "email_taken", Message: "email already taken"})
	case errors.Is(err, common.ErrorInvalidCredentials):
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			errorResponse{Code: "invalid_credentials", Message: "invalid email or password"})
	case errors.Is(err, common.ErrInvalidToken):
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			errorResponse{Code: "invalid_token", Message: "invalid token"})
	case errors.Is(err, common.ErrorTokenNotActive):
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			errorResponse{Code: "token_not_active", Message: "token is not active"})
	case errors.Is(err, common.ErrorNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound,
			errorResponse{Code: "not_found", Message: "not found"})
	default:
		s.logger.Error(c.Request.Context(), "request failed", "error", err.Error())
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			errorResponse{Code: "internal_error", Message: "internal error"})
	}
}

// abortBadRequest reports a malformed request body.
func abortBadRequest(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest,
		errorResponse{Code: "invalid_request", Message: "invalid request body"})
}
