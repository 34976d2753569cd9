package middleware

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/utils"
)

const ContextKeyClientIP = "client_ip"

// ClientIPMiddleware stores the resolved client IP for handlers (login throttling, logs).
func ClientIPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyClientIP, utils.ExtractClientIP(c.Request))
		c.Next()
	}
}

// GetClientIP falls back to resolving the request when the middleware did not run.
func GetClientIP(c *gin.Context) string {
	if ip := c.GetString(ContextKeyClientIP); ip != "" {
		return ip
	}
	return utils.ExtractClientIP(c.Request)
}
