package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"edusport/internal/apperrors"
	"edusport/internal/models"
	"edusport/internal/store"
)

// CatalogHandler serves the small reference collections: roles, sport
// categories and venues.
type CatalogHandler struct {
	db *store.Store
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(db *store.Store) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// ListRoles returns the seeded roles.
func (h *CatalogHandler) ListRoles(c echo.Context) error {
	return c.JSON(http.StatusOK, h.db.ListRoles())
}

// ListSportCategories returns all sport categories.
func (h *CatalogHandler) ListSportCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.db.ListSportCategories())
}

type sportCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// CreateSportCategory adds a category. Admin only.
func (h *CatalogHandler) CreateSportCategory(c echo.Context) error {
	var req sportCategoryRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if req.Name == "" {
		return apperrors.Validation("name is required")
	}
	color := req.Color
	if color == "" {
		color = "#1E88E5"
	}
	category := h.db.CreateSportCategory(models.SportCategory{
		Name:        req.Name,
		Description: req.Description,
		Color:       color,
	})
	return c.JSON(http.StatusCreated, category)
}

// ListVenues returns all venues.
func (h *CatalogHandler) ListVenues(c echo.Context) error {
	return c.JSON(http.StatusOK, h.db.ListVenues())
}

type venueRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	Available   *bool  `json:"available"`
}

// CreateVenue adds a venue. Admin only.
func (h *CatalogHandler) CreateVenue(c echo.Context) error {
	var req venueRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if req.Name == "" {
		return apperrors.Validation("name is required")
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	venue := h.db.CreateVenue(models.Venue{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		Available:   available,
	})
	return c.JSON(http.StatusCreated, venue)
}

// PatchVenue updates venue fields. Admin only.
func (h *CatalogHandler) PatchVenue(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Capacity    *int    `json:"capacity"`
		Available   *bool   `json:"available"`
	}
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	venue, err := h.db.UpdateVenue(id, store.VenuePatch{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		Available:   req.Available,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, venue)
}
