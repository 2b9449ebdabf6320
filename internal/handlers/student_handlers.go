package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"edusport/internal/apperrors"
	"edusport/internal/middleware"
	"edusport/internal/models"
	"edusport/internal/store"
)

// StudentHandler handles student profiles (parent contacts, medical notes,
// membership). Profiles are created automatically at registration; this
// surface reads and maintains them.
type StudentHandler struct {
	db *store.Store
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(db *store.Store) *StudentHandler {
	return &StudentHandler{db: db}
}

// List returns all student profiles. Admin only.
func (h *StudentHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.db.ListStudents())
}

// Get returns one profile. Admins can read anyone; students only their own.
func (h *StudentHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	student, ok := h.db.GetStudent(id)
	if !ok {
		return apperrors.NotFound("Student not found")
	}
	current, _ := middleware.CurrentUser(c)
	if student.UserID != current.ID && !middleware.IsAdmin(c, h.db) {
		return apperrors.Forbidden("Forbidden")
	}
	return c.JSON(http.StatusOK, student)
}

type studentPatchRequest struct {
	ParentName       *string                `json:"parentName"`
	ParentEmail      *string                `json:"parentEmail"`
	ParentPhone      *string                `json:"parentPhone"`
	DateOfBirth      *models.Date           `json:"dateOfBirth"`
	EmergencyContact *string                `json:"emergencyContact"`
	MedicalNotes     *string                `json:"medicalNotes"`
	MembershipType   *models.MembershipType `json:"membershipType"`
	MembershipExpiry *models.Date           `json:"membershipExpiry"`
}

// Patch updates profile fields. Admin only.
func (h *StudentHandler) Patch(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req studentPatchRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if req.MembershipType != nil && !req.MembershipType.Valid() {
		return apperrors.Validation("Invalid membership type")
	}
	student, err := h.db.UpdateStudent(id, store.StudentPatch{
		ParentName:       req.ParentName,
		ParentEmail:      req.ParentEmail,
		ParentPhone:      req.ParentPhone,
		DateOfBirth:      req.DateOfBirth,
		EmergencyContact: req.EmergencyContact,
		MedicalNotes:     req.MedicalNotes,
		MembershipType:   req.MembershipType,
		MembershipExpiry: req.MembershipExpiry,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}
