package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BossEnterprises/chataru_api/internal/session"
	"github.com/BossEnterprises/chataru_api/internal/utils"
)

// AuthHandler handles admin login and logout.
type AuthHandler struct {
	sessions *session.Store
	password string
}

// NewAuthHandler creates an AuthHandler checking against the configured
// admin password.
func NewAuthHandler(sessions *session.Store, password string) *AuthHandler {
	return &AuthHandler{sessions: sessions, password: password}
}

// Login handles POST /api/admin/login. A missing and a wrong password
// produce the same response on purpose.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil ||
		subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) != 1 {
		utils.Error(c, 401, "INVALID_CREDENTIALS", "Invalid credentials")
		return
	}

	token, err := h.sessions.Create()
	if err != nil {
		log.Error().Err(err).Msg("session token generation failed")
		utils.Error(c, 500, "INTERNAL_ERROR", "Login failed")
		return
	}

	setSessionCookie(c, token, int(session.MaxAge.Seconds()))
	c.JSON(200, gin.H{"success": true})
}

// Logout handles POST /api/admin/logout. Revoking an unknown or absent
// token is a no-op; the cookie is cleared either way.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil {
		h.sessions.Revoke(token)
	}

	setSessionCookie(c, "", -1)
	c.JSON(200, gin.H{"success": true})
}

// setSessionCookie writes the admin session cookie. The cookie is sent
// cross-site by the frontend, so it must be Secure with SameSite=None.
func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(session.CookieName, token, maxAge, "/", "", true, true)
}
