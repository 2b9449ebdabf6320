package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"edusport/internal/apperrors"
	"edusport/internal/models"
)

// InstructorView is an instructor enriched with its user and category.
// Missing references stay null; joins are best-effort.
type InstructorView struct {
	models.Instructor
	User          *models.UserSummary   `json:"user"`
	SportCategory *models.SportCategory `json:"sportCategory"`
}

// ClassView is a class enriched with instructor, category, venue and
// schedules.
type ClassView struct {
	models.Class
	Instructor    *InstructorView       `json:"instructor"`
	SportCategory *models.SportCategory `json:"sportCategory"`
	Venue         *models.Venue         `json:"venue"`
	Schedules     []models.Schedule     `json:"schedules"`
}

// BookingView is a booking enriched with its user, class, schedule and
// payments.
type BookingView struct {
	models.Booking
	User     *models.UserSummary `json:"user"`
	Class    *models.Class       `json:"class"`
	Schedule *models.Schedule    `json:"schedule"`
	Payments []models.Payment    `json:"payments"`
}

// CalendarEvent is one dated occurrence of a class schedule.
type CalendarEvent struct {
	Date          models.Date           `json:"date"`
	ScheduleID    int                   `json:"scheduleId"`
	ClassID       int                   `json:"classId"`
	ClassName     string                `json:"className"`
	StartTime     string                `json:"startTime"`
	EndTime       string                `json:"endTime"`
	SportCategory *models.SportCategory `json:"sportCategory"`
}

// intQueryParam parses an optional integer query parameter; nil means the
// parameter was absent.
func intQueryParam(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.Validation("Invalid " + name)
	}
	return &value, nil
}

// idParam parses the :id path parameter.
func idParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apperrors.Validation("Invalid id")
	}
	return id, nil
}
