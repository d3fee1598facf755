package identity

import "github.com/gin-gonic/gin"

// UserID returns the caller's user id or empty string.
func UserID(c *gin.Context) string {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
