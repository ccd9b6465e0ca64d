package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"user-management-api/internal/infrastructure/token"
	"user-management-api/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// Auth validates the Authorization bearer token and injects the caller's
// identity into the Gin context.
func Auth(jwt *token.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		if raw == "" || !strings.HasPrefix(raw, "Bearer ") {
			response.Error[any](c, http.StatusUnauthorized, "missing bearer token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.Parse(strings.TrimPrefix(raw, "Bearer "))
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", nil)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.Subject)
		c.Next()
	}
}
