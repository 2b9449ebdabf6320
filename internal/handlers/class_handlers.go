package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"edusport/internal/apperrors"
	"edusport/internal/models"
	"edusport/internal/store"
)

// ClassHandler handles class catalog management.
type ClassHandler struct {
	db *store.Store
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(db *store.Store) *ClassHandler {
	return &ClassHandler{db: db}
}

// List returns classes enriched with instructor, category, venue and
// schedules, optionally filtered by sport category.
func (h *ClassHandler) List(c echo.Context) error {
	sportCategoryID, err := intQueryParam(c, "sportCategoryId")
	if err != nil {
		return err
	}
	classes := h.db.ListClasses(sportCategoryID)
	views := make([]ClassView, 0, len(classes))
	for _, class := range classes {
		views = append(views, composeClass(h.db, class))
	}
	return c.JSON(http.StatusOK, views)
}

// Get returns one class with its joined details.
func (h *ClassHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	class, ok := h.db.GetClass(id)
	if !ok {
		return apperrors.NotFound("Class not found")
	}
	return c.JSON(http.StatusOK, composeClass(h.db, class))
}

type classRequest struct {
	Name            string `json:"name"`
	SportCategoryID int    `json:"sportCategoryId"`
	Description     string `json:"description"`
	AgeGroup        string `json:"ageGroup"`
	Capacity        int    `json:"capacity"`
	InstructorID    int    `json:"instructorId"`
	VenueID         *int   `json:"venueId"`
	Price           int    `json:"price"`
	Active          *bool  `json:"active"`
}

// Create adds a class. Admin only.
func (h *ClassHandler) Create(c echo.Context) error {
	var req classRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if req.Name == "" {
		return apperrors.Validation("name is required")
	}
	if req.Capacity <= 0 {
		return apperrors.Validation("capacity must be positive")
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	class, err := h.db.CreateClass(models.Class{
		Name:            req.Name,
		SportCategoryID: req.SportCategoryID,
		Description:     req.Description,
		AgeGroup:        req.AgeGroup,
		Capacity:        req.Capacity,
		InstructorID:    req.InstructorID,
		VenueID:         req.VenueID,
		Price:           req.Price,
		Active:          active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, class)
}

type classPatchRequest struct {
	Name            *string `json:"name"`
	SportCategoryID *int    `json:"sportCategoryId"`
	Description     *string `json:"description"`
	AgeGroup        *string `json:"ageGroup"`
	Capacity        *int    `json:"capacity"`
	InstructorID    *int    `json:"instructorId"`
	VenueID         *int    `json:"venueId"`
	Price           *int    `json:"price"`
	Active          *bool   `json:"active"`
}

// Patch updates class fields. Admin only.
func (h *ClassHandler) Patch(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req classPatchRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if req.Capacity != nil && *req.Capacity <= 0 {
		return apperrors.Validation("capacity must be positive")
	}
	class, err := h.db.UpdateClass(id, store.ClassPatch{
		Name:            req.Name,
		SportCategoryID: req.SportCategoryID,
		Description:     req.Description,
		AgeGroup:        req.AgeGroup,
		Capacity:        req.Capacity,
		InstructorID:    req.InstructorID,
		VenueID:         req.VenueID,
		Price:           req.Price,
		Active:          req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, class)
}
