package middleware

import (
	"main/utils"

	"github.com/gin-gonic/gin"
)

// IdentityMiddleware resolves the calling user from the X-User-ID header.
// Authentication is handled upstream of this service.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			utils.Unauthorized(c, "Missing user ID")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
