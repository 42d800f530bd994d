package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireUser rejects requests without the X-User-ID header set by the
// gateway after authentication.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
