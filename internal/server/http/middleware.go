package http

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/gin-gonic/gin"
)

// Context keys set by the authentication middleware.
const (
	contextKeyUser  = "auth_user"
	contextKeyToken = "auth_token"
)

// authenticate is the gate in front of every protected route. It reads the
// access token from the x-auth header, resolves it to an active account, and
// stores the account and the raw token on the request context. No request
// passes without an active token; every failure is a 401 with a body that
// names the reason class but nothing more.
func (s *HTTPServer) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(common.AuthTokenHeaderName)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				errorResponse{Code: "missing_token", Message: "authentication token is required"})
			return
		}

		user, err := s.users.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, common.ErrInvalidToken):
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					errorResponse{Code: "invalid_token", Message: "invalid token"})
			case errors.Is(err, common.ErrorTokenNotActive):
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					errorResponse{Code: "token_not_active", Message: "token is not active"})
			default:
				// Store failure: reject rather than guess, keep the
				// detail in the log only.
				s.logger.Error(c.Request.Context(), "authentication check failed", "error", err.Error())
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					errorResponse{Code: "unauthorized", Message: "unauthorized"})
			}
			return
		}

		c.Set(contextKeyUser, user)
		c.Set(contextKeyToken, token)
		c.Next()
	}
}

// currentUser returns the account attached by the authentication middleware.
func currentUser(c *gin.Context) *models.User {
	return c.MustGet(contextKeyUser).(*models.User)
}

// currentToken returns the raw token attached by the authentication middleware.
func currentToken(c *gin.Context) string {
	return c.MustGet(contextKeyToken).(string)
}
