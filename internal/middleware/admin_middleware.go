package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BossEnterprises/chataru_api/internal/session"
	"github.com/BossEnterprises/chataru_api/internal/utils"
)

// AdminMiddleware gates admin-only routes on a valid session cookie.
type AdminMiddleware struct {
	sessions *session.Store
}

// NewAdminMiddleware creates an AdminMiddleware backed by the given store.
func NewAdminMiddleware(sessions *session.Store) *AdminMiddleware {
	return &AdminMiddleware{sessions: sessions}
}

// Handle rejects the request with 401 before any handler logic runs unless
// the session cookie holds a live token. Missing, unknown and expired
// tokens all produce the same client-visible response.
func (m *AdminMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || !m.sessions.Validate(token) {
			utils.Error(c, 401, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}
