package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/teambition/rrule-go"

	"edusport/internal/apperrors"
	"edusport/internal/models"
	"edusport/internal/store"
)

const (
	calendarDefaultDays = 7
	calendarMaxDays     = 31
)

var rruleWeekdays = map[models.Weekday]rrule.Weekday{
	models.Monday:    rrule.MO,
	models.Tuesday:   rrule.TU,
	models.Wednesday: rrule.WE,
	models.Thursday:  rrule.TH,
	models.Friday:    rrule.FR,
	models.Saturday:  rrule.SA,
	models.Sunday:    rrule.SU,
}

// ScheduleHandler handles weekly class schedules and the expanded calendar.
type ScheduleHandler struct {
	db    *store.Store
	nowFn func() time.Time
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(db *store.Store) *ScheduleHandler {
	return &ScheduleHandler{db: db, nowFn: func() time.Time { return time.Now().UTC() }}
}

// List returns schedules, optionally filtered by class.
func (h *ScheduleHandler) List(c echo.Context) error {
	classID, err := intQueryParam(c, "classId")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.db.ListSchedules(classID))
}

type scheduleRequest struct {
	ClassID   int            `json:"classId"`
	DayOfWeek models.Weekday `json:"dayOfWeek"`
	StartTime string         `json:"startTime"`
	EndTime   string         `json:"endTime"`
	Recurring *bool          `json:"recurring"`
}

func parseClock(value string) (time.Time, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, apperrors.Validation("Times must be in HH:MM format")
	}
	return t, nil
}

// Create adds a schedule slot. Admin only.
func (h *ScheduleHandler) Create(c echo.Context) error {
	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if !req.DayOfWeek.Valid() {
		return apperrors.Validation("Invalid dayOfWeek")
	}
	start, err := parseClock(req.StartTime)
	if err != nil {
		return err
	}
	end, err := parseClock(req.EndTime)
	if err != nil {
		return err
	}
	if !end.After(start) {
		return apperrors.Validation("endTime must be after startTime")
	}
	recurring := true
	if req.Recurring != nil {
		recurring = *req.Recurring
	}
	schedule, err := h.db.CreateSchedule(models.Schedule{
		ClassID:   req.ClassID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Recurring: recurring,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, schedule)
}

type schedulePatchRequest struct {
	DayOfWeek *models.Weekday `json:"dayOfWeek"`
	StartTime *string         `json:"startTime"`
	EndTime   *string         `json:"endTime"`
	Recurring *bool           `json:"recurring"`
}

// Patch updates a schedule slot. Admin only.
func (h *ScheduleHandler) Patch(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req schedulePatchRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if req.DayOfWeek != nil && !req.DayOfWeek.Valid() {
		return apperrors.Validation("Invalid dayOfWeek")
	}
	if req.StartTime != nil {
		if _, err := parseClock(*req.StartTime); err != nil {
			return err
		}
	}
	if req.EndTime != nil {
		if _, err := parseClock(*req.EndTime); err != nil {
			return err
		}
	}
	schedule, err := h.db.UpdateSchedule(id, store.SchedulePatch{
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Recurring: req.Recurring,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, schedule)
}

// Calendar expands schedules of active classes into dated events inside a
// window. The window defaults to the next seven days and is capped at 31.
func (h *ScheduleHandler) Calendar(c echo.Context) error {
	now := h.nowFn()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if raw := c.QueryParam("from"); raw != "" {
		date, err := models.ParseDate(raw)
		if err != nil {
			return apperrors.Validation("Invalid from date")
		}
		from = date.Time
	}
	to := from.AddDate(0, 0, calendarDefaultDays)
	if raw := c.QueryParam("to"); raw != "" {
		date, err := models.ParseDate(raw)
		if err != nil {
			return apperrors.Validation("Invalid to date")
		}
		to = date.Time
	}
	if !to.After(from) {
		return apperrors.Validation("to must be after from")
	}
	if to.Sub(from) > calendarMaxDays*24*time.Hour {
		to = from.AddDate(0, 0, calendarMaxDays)
	}

	events := make([]CalendarEvent, 0)
	for _, schedule := range h.db.ListSchedules(nil) {
		class, ok := h.db.GetClass(schedule.ClassID)
		if !ok || !class.Active {
			continue
		}
		occurrences, err := h.occurrences(schedule, from, to)
		if err != nil {
			continue
		}
		var category *models.SportCategory
		if cat, ok := h.db.GetSportCategory(class.SportCategoryID); ok {
			category = &cat
		}
		for _, day := range occurrences {
			events = append(events, CalendarEvent{
				Date:          models.NewDate(day),
				ScheduleID:    schedule.ID,
				ClassID:       class.ID,
				ClassName:     class.Name,
				StartTime:     schedule.StartTime,
				EndTime:       schedule.EndTime,
				SportCategory: category,
			})
		}
	}
	return c.JSON(http.StatusOK, events)
}

// occurrences lists the dates a schedule lands on inside [from, to).
// Non-recurring schedules contribute at most their first occurrence.
func (h *ScheduleHandler) occurrences(schedule models.Schedule, from, to time.Time) ([]time.Time, error) {
	day, ok := rruleWeekdays[schedule.DayOfWeek]
	if !ok {
		return nil, apperrors.Internal("Unknown schedule weekday")
	}
	count := 0
	if !schedule.Recurring {
		count = 1
	}
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{day},
		Dtstart:   from,
		Count:     count,
	})
	if err != nil {
		return nil, err
	}
	return rule.Between(from, to.Add(-time.Nanosecond), true), nil
}
