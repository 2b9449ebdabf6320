package handlers

import (
	"math"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"edusport/internal/models"
	"edusport/internal/store"
)

// DashboardHandler aggregates the admin console landing page.
type DashboardHandler struct {
	db    *store.Store
	nowFn func() time.Time
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(db *store.Store) *DashboardHandler {
	return &DashboardHandler{db: db, nowFn: func() time.Time { return time.Now().UTC() }}
}

type dashboardStats struct {
	TotalStudents        int `json:"totalStudents"`
	ActiveClasses        int `json:"activeClasses"`
	TotalRevenue         int `json:"totalRevenue"`
	TotalInstructors     int `json:"totalInstructors"`
	StudentGrowthPercent int `json:"studentGrowthPercent"`
	NewStudentsThisMonth int `json:"newStudentsThisMonth"`
}

type recentBookingView struct {
	models.Booking
	User          *models.UserSummary   `json:"user"`
	Class         *models.ClassSummary  `json:"class"`
	Schedule      *models.Schedule      `json:"schedule"`
	SportCategory *models.SportCategory `json:"sportCategory"`
}

type availableInstructorView struct {
	InstructorView
	ClassesTaught []models.ClassSummary `json:"classesTaught"`
	Schedule      string                `json:"schedule"`
}

type dashboardResponse struct {
	Stats                dashboardStats            `json:"stats"`
	TodayBookings        []BookingView             `json:"todayBookings"`
	RecentBookings       []recentBookingView       `json:"recentBookings"`
	AvailableInstructors []availableInstructorView `json:"availableInstructors"`
}

// Get builds the dashboard snapshot.
func (h *DashboardHandler) Get(c echo.Context) error {
	now := h.nowFn()
	resp := dashboardResponse{
		Stats:                h.stats(now),
		TodayBookings:        h.todayBookings(now),
		RecentBookings:       h.recentBookings(),
		AvailableInstructors: h.availableInstructors(),
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) stats(now time.Time) dashboardStats {
	stats := dashboardStats{
		TotalInstructors: len(h.db.ListInstructors(nil)),
	}

	for _, class := range h.db.ListClasses(nil) {
		if class.Active {
			stats.ActiveClasses++
		}
	}
	for _, payment := range h.db.ListPayments(nil, nil) {
		if payment.Status == models.PaymentCompleted {
			stats.TotalRevenue += payment.Amount
		}
	}

	students := h.studentUsers()
	stats.TotalStudents = len(students)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := monthStart.AddDate(0, -1, 0)
	var lastMonth int
	for _, user := range students {
		switch {
		case !user.CreatedAt.Before(monthStart):
			stats.NewStudentsThisMonth++
		case !user.CreatedAt.Before(lastMonthStart):
			lastMonth++
		}
	}
	if lastMonth > 0 {
		growth := float64(stats.NewStudentsThisMonth-lastMonth) / float64(lastMonth) * 100
		stats.StudentGrowthPercent = int(math.Round(growth))
	}
	return stats
}

// studentUsers returns users holding the student role. The role is looked
// up by name so reseeded stores with different ids still work.
func (h *DashboardHandler) studentUsers() []models.User {
	role, ok := h.db.GetRoleByName(models.RoleStudent)
	if !ok {
		return nil
	}
	return h.db.ListUsers(&role.ID)
}

func (h *DashboardHandler) todayBookings(now time.Time) []BookingView {
	today := models.NewDate(now)
	views := make([]BookingView, 0)
	for _, booking := range h.db.ListBookings(nil, nil, nil) {
		if booking.BookingDate.Equal(today) {
			views = append(views, composeBooking(h.db, booking))
		}
	}
	return views
}

func (h *DashboardHandler) recentBookings() []recentBookingView {
	bookings := h.db.ListBookings(nil, nil, nil)
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	if len(bookings) > 5 {
		bookings = bookings[:5]
	}

	views := make([]recentBookingView, 0, len(bookings))
	for _, booking := range bookings {
		view := recentBookingView{Booking: booking}
		if user, ok := h.db.GetUser(booking.UserID); ok {
			summary := user.Summary()
			view.User = &summary
		}
		if class, ok := h.db.GetClass(booking.ClassID); ok {
			summary := class.Summary()
			view.Class = &summary
			if category, ok := h.db.GetSportCategory(class.SportCategoryID); ok {
				view.SportCategory = &category
			}
		}
		if schedule, ok := h.db.GetSchedule(booking.ScheduleID); ok {
			view.Schedule = &schedule
		}
		views = append(views, view)
	}
	return views
}

func (h *DashboardHandler) availableInstructors() []availableInstructorView {
	views := make([]availableInstructorView, 0)
	for _, instructor := range h.db.ListInstructors(nil) {
		if instructor.Status != models.InstructorAvailable {
			continue
		}
		view := availableInstructorView{
			InstructorView: composeInstructor(h.db, instructor),
			ClassesTaught:  make([]models.ClassSummary, 0),
		}
		for _, class := range h.db.ListClasses(nil) {
			if class.InstructorID == instructor.ID && class.Active {
				view.ClassesTaught = append(view.ClassesTaught, class.Summary())
			}
		}
		days := make([]string, 0, len(instructor.Availability))
		for _, day := range instructor.Availability {
			days = append(days, string(day))
		}
		view.Schedule = strings.Join(days, ", ")
		views = append(views, view)
	}
	return views
}
