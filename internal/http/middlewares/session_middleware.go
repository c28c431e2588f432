package middlewares

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the opaque client-held token. It has no payload;
// the server-side store is the source of truth.
const SessionCookieName = "recipebox_session"

const (
	ctxUserIDKey       = "session.userID"
	ctxSessionTokenKey = "session.token"
)

// Keep this small interface so tests can fake it easily.
type SessionResolver interface {
	UserID(ctx context.Context, token string) (string, error)
}

type SessionMiddleware struct {
	sessions SessionResolver
}

func NewSessionMiddleware(sessions SessionResolver) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// RequireSession is the gate in front of every ownership-scoped route. The
// user id it resolves is the only scoping key handlers may use; a
// caller-supplied user id is never accepted.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)

		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "unauthorized",
					"message": "Login required",
				},
			})
			return
		}

		userID, err := m.sessions.UserID(c.Request.Context(), token)

		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "unauthorized",
					"message": "Invalid or expired session",
				},
			})
			return
		}

		SetUserID(c, userID)
		c.Set(ctxSessionTokenKey, token)

		c.Next()
	}
}

// Helpers so handlers don't need to know the magic keys.

func SetUserID(c *gin.Context, userID string) {
	c.Set(ctxUserIDKey, userID)
}

func UserIDFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func SessionTokenFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxSessionTokenKey)
	if !ok {
		return "", false
	}
	token, ok := v.(string)
	return token, ok && token != ""
}
