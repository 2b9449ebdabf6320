package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"edusport/internal/apperrors"
	"edusport/internal/middleware"
	"edusport/internal/models"
	"edusport/internal/store"
	"edusport/pkg/logger"
)

// UserHandler handles registration and user administration.
type UserHandler struct {
	db  *store.Store
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(db *store.Store, log *zap.Logger) *UserHandler {
	return &UserHandler{db: db, log: log}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	RoleID   int    `json:"roleId"`
	Language string `json:"language"`
}

type userPatchRequest struct {
	Email    *string `json:"email"`
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
	RoleID   *int    `json:"roleId"`
	Language *string `json:"language"`
	Active   *bool   `json:"active"`
}

// Register creates a user account. Students get their profile record
// created alongside.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if req.Username == "" || req.Password == "" || req.Email == "" || req.FullName == "" {
		return apperrors.Validation("username, password, email and fullName are required")
	}

	role, ok := h.db.GetRole(req.RoleID)
	if !ok {
		return apperrors.NotFound("Role not found")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Internal("Failed to hash password")
	}

	language := req.Language
	if language == "" {
		language = "vi"
	}

	user, err := h.db.CreateUser(models.User{
		Username: req.Username,
		Password: string(hash),
		Email:    req.Email,
		FullName: req.FullName,
		Phone:    req.Phone,
		RoleID:   role.ID,
		Language: language,
		Active:   true,
	})
	if err != nil {
		return err
	}

	if role.Name == models.RoleStudent {
		if _, err := h.db.CreateStudent(models.Student{UserID: user.ID}); err != nil {
			h.log.Warn("failed to create student profile", zap.Int(logger.FieldUserID, user.ID), zap.Error(err))
		}
	}

	h.log.Info("user registered", zap.Int(logger.FieldUserID, user.ID), zap.String("role", string(role.Name)))
	return c.JSON(http.StatusCreated, user)
}

// List returns all users, optionally filtered by role. Admin only.
func (h *UserHandler) List(c echo.Context) error {
	roleID, err := intQueryParam(c, "roleId")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.db.ListUsers(roleID))
}

// Get returns one user. Admins can read anyone; everyone else only
// themselves.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	user, ok := h.db.GetUser(id)
	if !ok {
		return apperrors.NotFound("User not found")
	}

	current, _ := middleware.CurrentUser(c)
	if current.ID != user.ID && !middleware.IsAdmin(c, h.db) {
		return apperrors.Forbidden("Forbidden")
	}
	return c.JSON(http.StatusOK, user)
}

// Patch updates user fields. Admin only.
func (h *UserHandler) Patch(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req userPatchRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	user, err := h.db.UpdateUser(id, store.UserPatch{
		Email:    req.Email,
		FullName: req.FullName,
		Phone:    req.Phone,
		RoleID:   req.RoleID,
		Language: req.Language,
		Active:   req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
