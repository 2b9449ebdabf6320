package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"edusport/internal/apperrors"
	"edusport/internal/middleware"
	"edusport/internal/models"
	"edusport/internal/store"
	"edusport/pkg/logger"
)

// BookingHandler handles class bookings.
type BookingHandler struct {
	db  *store.Store
	log *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(db *store.Store, log *zap.Logger) *BookingHandler {
	return &BookingHandler{db: db, log: log}
}

// List returns bookings with joined details. Non-admin callers only ever
// see their own bookings, whatever filter they pass.
func (h *BookingHandler) List(c echo.Context) error {
	userID, err := intQueryParam(c, "userId")
	if err != nil {
		return err
	}
	classID, err := intQueryParam(c, "classId")
	if err != nil {
		return err
	}
	var status *models.BookingStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := models.BookingStatus(raw)
		if !s.Valid() {
			return apperrors.Validation("Invalid status")
		}
		status = &s
	}

	if !middleware.IsAdmin(c, h.db) {
		current, _ := middleware.CurrentUser(c)
		userID = &current.ID
	}

	bookings := h.db.ListBookings(userID, classID, status)
	views := make([]BookingView, 0, len(bookings))
	for _, booking := range bookings {
		views = append(views, composeBooking(h.db, booking))
	}
	return c.JSON(http.StatusOK, views)
}

// Get returns one booking. Admins can read any; owners their own.
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	booking, ok := h.db.GetBooking(id)
	if !ok {
		return apperrors.NotFound("Booking not found")
	}
	current, _ := middleware.CurrentUser(c)
	if booking.UserID != current.ID && !middleware.IsAdmin(c, h.db) {
		return apperrors.Forbidden("Forbidden")
	}
	return c.JSON(http.StatusOK, composeBooking(h.db, booking))
}

type bookingRequest struct {
	UserID      int         `json:"userId"`
	ClassID     int         `json:"classId"`
	ScheduleID  int         `json:"scheduleId"`
	BookingDate models.Date `json:"bookingDate"`
}

// Create books a spot in a class. Capacity is enforced atomically in the
// store; non-admins can only book for themselves.
func (h *BookingHandler) Create(c echo.Context) error {
	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if req.BookingDate.IsZero() {
		return apperrors.Validation("bookingDate is required")
	}

	current, _ := middleware.CurrentUser(c)
	userID := req.UserID
	if userID == 0 {
		userID = current.ID
	}
	if userID != current.ID && !middleware.IsAdmin(c, h.db) {
		return apperrors.Forbidden("Cannot book for another user")
	}

	booking, err := h.db.CreateBooking(models.Booking{
		UserID:      userID,
		ClassID:     req.ClassID,
		ScheduleID:  req.ScheduleID,
		BookingDate: req.BookingDate,
	})
	if err != nil {
		return err
	}
	h.log.Info("booking created",
		zap.Int(logger.FieldBookingID, booking.ID),
		zap.Int(logger.FieldUserID, booking.UserID),
		zap.Int(logger.FieldClassID, booking.ClassID))
	return c.JSON(http.StatusCreated, booking)
}

type bookingPatchRequest struct {
	ScheduleID  *int                  `json:"scheduleId"`
	BookingDate *models.Date          `json:"bookingDate"`
	Status      *models.BookingStatus `json:"status"`
}

// Patch updates a booking. Admin only.
func (h *BookingHandler) Patch(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req bookingPatchRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if req.Status != nil && !req.Status.Valid() {
		return apperrors.Validation("Invalid status")
	}
	booking, err := h.db.UpdateBooking(id, store.BookingPatch{
		ScheduleID:  req.ScheduleID,
		BookingDate: req.BookingDate,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}
