package middleware

import (
	"net/http"
	"strings"

	"student_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// JWT validates the bearer token and stores the decoded session on the
// request context. The session carries the Google access token, so there is
// no server-side session state to look up.
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		sess, err := service.ParseSession(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// Session returns the decoded session stored by JWT.
func Session(c *gin.Context) (service.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return service.Session{}, false
	}
	sess, ok := v.(service.Session)
	return sess, ok
}
