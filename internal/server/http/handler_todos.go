package http

import (
	"net/http"

	"github.com/dmitrijs2005/todokeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

type createTodoRequest struct {
	Text string `json:"text"`
}

type updateTodoRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// handleCreateTodo adds a todo owned by the authenticated account.
func (s *HTTPServer) handleCreateTodo(c *gin.Context) {
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c)
		return
	}

	todo, err := s.todos.Create(c.Request.Context(), currentUser(c).ID, req.Text)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"todo": toTodoResponse(todo)})
}

// handleListTodos returns the account's todos in creation order.
func (s *HTTPServer) handleListTodos(c *gin.Context) {
	todos, err := s.todos.List(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"todos": toTodoResponses(todos)})
}

// handleGetTodo returns a single todo. Another account's todo, a missing
// one, and a malformed id all read as 404.
func (s *HTTPServer) handleGetTodo(c *gin.Context) {
	todo, err := s.todos.Get(c.Request.Context(), currentUser(c).ID, c.Param("todoId"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"todo": toTodoResponse(todo)})
}

// handleUpdateTodo applies a partial update. Completion transitions manage
// the completedAt stamp server-side.
func (s *HTTPServer) handleUpdateTodo(c *gin.Context) {
	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c)
		return
	}

	patch := services.TodoPatch{Text: req.Text, Completed: req.Completed}

	todo, err := s.todos.Update(c.Request.Context(), currentUser(c).ID, c.Param("todoId"), patch)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"todo": toTodoResponse(todo)})
}

// handleDeleteTodo removes the todo if the authenticated account owns it.
func (s *HTTPServer) handleDeleteTodo(c *gin.Context) {
	if err := s.todos.Delete(c.Request.Context(), currentUser(c).ID, c.Param("todoId")); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
