package http

import (
	"net/http"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// handleRegister creates an account and returns its public view with a fresh
// access token in the x-auth response header.
func (s *HTTPServer) handleRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c)
		return
	}

	user, token, err := s.users.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Header(common.AuthTokenHeaderName, token)
	c.JSON(http.StatusCreated, toUserResponse(user))
}

// handleLogin verifies credentials and returns the account with a fresh
// access token in the x-auth response header.
func (s *HTTPServer) handleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c)
		return
	}

	user, token, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Header(common.AuthTokenHeaderName, token)
	c.JSON(http.StatusOK, toUserResponse(user))
}

// handleMe returns the account behind the presented token.
func (s *HTTPServer) handleMe(c *gin.Context) {
	c.JSON(http.StatusOK, toUserResponse(currentUser(c)))
}

// handleRevokeToken removes the presented token from the account's active
// set, ending the session it represents.
func (s *HTTPServer) handleRevokeToken(c *gin.Context) {
	user := currentUser(c)

	if err := s.users.RevokeToken(c.Request.Context(), user.ID, currentToken(c)); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// handleChangePassword rewrites the account's password digest after
// verifying the current password.
func (s *HTTPServer) handleChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c)
		return
	}

	user := currentUser(c)

	if err := s.users.ChangePassword(c.Request.Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
