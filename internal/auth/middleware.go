package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookieName = "session_id"

// UserIDKey is the gin context key the resolved caller identity is stored
// under.
const UserIDKey = "user_id"

// UserIDFromContext returns the current user ID set by RequireSession.
// uuid.Nil if not set.
func UserIDFromContext(c *gin.Context) uuid.UUID {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// RequireSession returns a middleware that resolves the session cookie to a
// user ID before any handler runs. If missing or invalid, the request is
// aborted with 401 and no data is read or written on the caller's behalf.
func RequireSession(sessions *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		userID, ok := sessions.GetUserID(c.Request.Context(), sessionID)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}
