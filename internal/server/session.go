package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobguard/internal/shared/server/respond"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Profession string `json:"profession"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "email and password are required", nil)
		return
	}

	token, user, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respond.Error(c, http.StatusUnauthorized, "login_failed", err.Error(), nil)
		return
	}
	if err := h.Session.Save(token, user); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store session", nil)
		return
	}
	respond.OK(c, gin.H{"user": user})
}

func (h *Handler) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "name, email and password are required", nil)
		return
	}

	token, user, err := h.Auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password, req.Profession)
	if err != nil {
		respond.Error(c, http.StatusBadGateway, "signup_failed", err.Error(), nil)
		return
	}
	if err := h.Session.Save(token, user); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store session", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, gin.H{"user": user})
}

func (h *Handler) logout(c *gin.Context) {
	if sess := h.Session.Load(); sess.LoggedIn() {
		h.Records.ClearActiveResume(sess.User.Email)
	}
	h.Session.Clear()
	respond.OK(c, gin.H{"message": "Logged out"})
}

func (h *Handler) currentSession(c *gin.Context) {
	sess := h.Session.Load()
	if !sess.LoggedIn() {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Not logged in", nil)
		return
	}
	respond.OK(c, gin.H{"user": sess.User})
}
