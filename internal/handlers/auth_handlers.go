package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"edusport/internal/apperrors"
	"edusport/internal/middleware"
	"edusport/internal/session"
	"edusport/internal/store"
)

// AuthHandler handles login, logout and the current-user probe.
type AuthHandler struct {
	db       *store.Store
	sessions *session.Store
	log      *zap.Logger
	secure   bool
}

// NewAuthHandler creates a new AuthHandler. secure controls the cookie's
// Secure flag and should be true in production.
func NewAuthHandler(db *store.Store, sessions *session.Store, log *zap.Logger, secure bool) *AuthHandler {
	return &AuthHandler{db: db, sessions: sessions, log: log, secure: secure}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials and issues a session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.Validation("Username and password are required")
	}

	// The login field accepts a username or an email address.
	user, ok := h.db.GetUserByUsername(req.Username)
	if !ok {
		user, ok = h.db.GetUserByEmail(req.Username)
	}
	if !ok {
		return apperrors.Unauthorized("Incorrect username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return apperrors.Unauthorized("Incorrect username or password")
	}
	if !user.Active {
		return apperrors.Unauthorized("Account is deactivated")
	}

	token := h.sessions.Create(user.ID)
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})

	h.log.Info("user logged in", zap.Int("user_id", user.ID), zap.String("username", user.Username))
	return c.JSON(http.StatusOK, map[string]any{"user": user})
}

// Logout removes the session and clears the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		h.sessions.Delete(cookie.Value)
	}
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	})
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

// CurrentUser returns the authenticated user together with the student or
// instructor profile attached to the account, when one exists.
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return apperrors.Unauthorized("Not authenticated")
	}
	resp := map[string]any{"user": user}
	if student, ok := h.db.GetStudentByUserID(user.ID); ok {
		resp["student"] = student
	}
	if instructor, ok := h.db.GetInstructorByUserID(user.ID); ok {
		resp["instructor"] = instructor
	}
	return c.JSON(http.StatusOK, resp)
}
