package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/jwt"
)

// AdminMiddleware must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextKeyRole) != jwt.RoleAdmin {
			response.AbortWithError(c, http.StatusForbidden, "Access denied: admin role required")
			return
		}
		c.Next()
	}
}
