package middleware

import "github.com/gin-gonic/gin"

// CacheControlMiddleware marks read-only mission and mood listings as
// briefly cacheable. Mutating endpoints never carry this.
func CacheControlMiddleware(maxAgeSeconds string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age="+maxAgeSeconds)
		c.Next()
	}
}
