package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware handles Cross-Origin Resource Sharing (CORS) headers.
// Exactly one frontend origin is allowed; cookies are permitted cross-origin
// for that origin. When allowedOrigin is "*" (unconfigured bootstrap) any
// origin is allowed but without credentials, since browsers reject the
// wildcard together with Access-Control-Allow-Credentials.
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	allowedOrigin = strings.TrimSuffix(strings.TrimSpace(allowedOrigin), "/")

	return func(c *gin.Context) {
		origin := strings.TrimSuffix(c.Request.Header.Get("Origin"), "/")

		switch {
		case allowedOrigin == "*":
			c.Header("Access-Control-Allow-Origin", "*")
		case origin != "" && origin == allowedOrigin:
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Vary", "Origin")
		}

		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Header("Access-Control-Max-Age", "86400")

		// Handle preflight request
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
