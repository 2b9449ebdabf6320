package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"edusport/internal/apperrors"
	"edusport/internal/models"
	"edusport/internal/store"
)

// InstructorHandler handles instructor profiles.
type InstructorHandler struct {
	db *store.Store
}

// NewInstructorHandler creates a new InstructorHandler.
func NewInstructorHandler(db *store.Store) *InstructorHandler {
	return &InstructorHandler{db: db}
}

// List returns instructors enriched with user and category details,
// optionally filtered by sport category.
func (h *InstructorHandler) List(c echo.Context) error {
	sportCategoryID, err := intQueryParam(c, "sportCategoryId")
	if err != nil {
		return err
	}
	instructors := h.db.ListInstructors(sportCategoryID)
	views := make([]InstructorView, 0, len(instructors))
	for _, instructor := range instructors {
		views = append(views, composeInstructor(h.db, instructor))
	}
	return c.JSON(http.StatusOK, views)
}

type instructorRequest struct {
	UserID          int                     `json:"userId"`
	SportCategoryID int                     `json:"sportCategoryId"`
	Bio             string                  `json:"bio"`
	Specialties     []string                `json:"specialties"`
	YearsExperience int                     `json:"yearsExperience"`
	Availability    []models.Weekday        `json:"availability"`
	Status          models.InstructorStatus `json:"status"`
	LeaveUntil      *models.Date            `json:"leaveUntil"`
}

// Create adds an instructor profile. Admin only.
func (h *InstructorHandler) Create(c echo.Context) error {
	var req instructorRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if req.Status != "" && !req.Status.Valid() {
		return apperrors.Validation("Invalid instructor status")
	}
	for _, day := range req.Availability {
		if !day.Valid() {
			return apperrors.Validation("Invalid availability day: " + string(day))
		}
	}

	instructor, err := h.db.CreateInstructor(models.Instructor{
		UserID:          req.UserID,
		SportCategoryID: req.SportCategoryID,
		Bio:             req.Bio,
		Specialties:     req.Specialties,
		YearsExperience: req.YearsExperience,
		Availability:    req.Availability,
		Status:          req.Status,
		LeaveUntil:      req.LeaveUntil,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, instructor)
}

type instructorPatchRequest struct {
	SportCategoryID *int                     `json:"sportCategoryId"`
	Bio             *string                  `json:"bio"`
	Specialties     *[]string                `json:"specialties"`
	YearsExperience *int                     `json:"yearsExperience"`
	Availability    *[]models.Weekday        `json:"availability"`
	Status          *models.InstructorStatus `json:"status"`
	LeaveUntil      *models.Date             `json:"leaveUntil"`
}

// Patch updates instructor fields. Admin only.
func (h *InstructorHandler) Patch(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req instructorPatchRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if req.Status != nil && !req.Status.Valid() {
		return apperrors.Validation("Invalid instructor status")
	}
	if req.Availability != nil {
		for _, day := range *req.Availability {
			if !day.Valid() {
				return apperrors.Validation("Invalid availability day: " + string(day))
			}
		}
	}
	instructor, err := h.db.UpdateInstructor(id, store.InstructorPatch{
		SportCategoryID: req.SportCategoryID,
		Bio:             req.Bio,
		Specialties:     req.Specialties,
		YearsExperience: req.YearsExperience,
		Availability:    req.Availability,
		Status:          req.Status,
		LeaveUntil:      req.LeaveUntil,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, instructor)
}
