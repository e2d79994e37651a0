package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionKeyAdmin is where the logged-in admin's username lives in the session.
const SessionKeyAdmin = "adminUser"

// AuthRequired rejects requests without a logged-in admin session and injects
// the principal into the request context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		username, _ := session.Get(SessionKeyAdmin).(string)
		if username == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		c.Set(SessionKeyAdmin, username)
		c.Next()
	}
}

// CurrentAdmin extracts the logged-in admin username from the context.
func CurrentAdmin(c *gin.Context) string {
	username, _ := c.Get(SessionKeyAdmin)
	s, _ := username.(string)
	return s
}
