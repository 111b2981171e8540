package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/circuitshelf/componentstore-api/session"
)

// RequireLogin guards endpoints that need a session identity. The username
// is placed in the request context for handlers downstream.
func RequireLogin(c *gin.Context) {
	username, ok := session.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in first"})
		c.Abort()
		return
	}
	c.Set("username", username)
	c.Next()
}
