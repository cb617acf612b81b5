package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobguard/internal/backend"
	"jobguard/internal/session"
	"jobguard/internal/shared/server/middleware"
	"jobguard/internal/shared/server/respond"
)

// Authenticator is the remote auth surface the session routes need.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, backend.User, error)
	Signup(ctx context.Context, name, email, password, profession string) (string, backend.User, error)
}

// Handler wires HTTP handlers to the application services.
type Handler struct {
	Deps
}

const sessionKey = "session"

// requireSession loads the stored session and rejects the request when it
// does not carry a usable identity.
func (h *Handler) requireSession(c *gin.Context) {
	sess := h.Session.Load()
	if !sess.LoggedIn() {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required", nil)
		return
	}
	c.Set(sessionKey, sess)
	c.Set(middleware.UserEmailKey, sess.User.Email)
	c.Next()
}

func sessionFromContext(c *gin.Context) session.Session {
	val, _ := c.Get(sessionKey)
	sess, _ := val.(session.Session)
	return sess
}
