package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"edusport/internal/middleware"
	"edusport/internal/models"
	"edusport/internal/session"
	"edusport/internal/store"
)

// Register mounts the full API surface on e. secure controls the session
// cookie's Secure flag.
func Register(e *echo.Echo, db *store.Store, sessions *session.Store, log *zap.Logger, secure bool) {
	auth := NewAuthHandler(db, sessions, log, secure)
	users := NewUserHandler(db, log)
	catalog := NewCatalogHandler(db)
	instructors := NewInstructorHandler(db)
	classes := NewClassHandler(db)
	schedules := NewScheduleHandler(db)
	students := NewStudentHandler(db)
	bookings := NewBookingHandler(db, log)
	payments := NewPaymentHandler(db, log)
	promotions := NewPromotionHandler(db, log)
	dashboard := NewDashboardHandler(db)

	api := e.Group("/api")
	authed := middleware.RequireAuth(sessions, db)
	adminOnly := middleware.RequireRole(db, models.RoleAdmin)

	// Public.
	api.POST("/auth/login", auth.Login)
	api.POST("/auth/logout", auth.Logout)
	api.POST("/users", users.Register)
	api.GET("/sport-categories", catalog.ListSportCategories)
	api.GET("/venues", catalog.ListVenues)
	api.GET("/instructors", instructors.List)
	api.GET("/classes", classes.List)
	api.GET("/classes/:id", classes.Get)
	api.GET("/schedules", schedules.List)
	api.GET("/promotions", promotions.List)
	api.GET("/promotions/validate/:code", promotions.Validate)

	// Authenticated.
	api.GET("/auth/user", auth.CurrentUser, authed)
	api.GET("/roles", catalog.ListRoles, authed)
	api.GET("/users/:id", users.Get, authed)
	api.GET("/calendar", schedules.Calendar, authed)
	api.GET("/bookings", bookings.List, authed)
	api.GET("/bookings/:id", bookings.Get, authed)
	api.POST("/bookings", bookings.Create, authed)
	api.GET("/students/:id", students.Get, authed)
	api.GET("/payments", payments.List, authed)
	api.GET("/payments/:id", payments.Get, authed)
	api.POST("/payments", payments.Create, authed)
	api.POST("/promotions/redeem/:code", promotions.Redeem, authed)
	api.GET("/dashboard", dashboard.Get, authed)

	// Admin.
	api.GET("/users", users.List, authed, adminOnly)
	api.PATCH("/users/:id", users.Patch, authed, adminOnly)
	api.POST("/sport-categories", catalog.CreateSportCategory, authed, adminOnly)
	api.POST("/venues", catalog.CreateVenue, authed, adminOnly)
	api.PATCH("/venues/:id", catalog.PatchVenue, authed, adminOnly)
	api.GET("/students", students.List, authed, adminOnly)
	api.PATCH("/students/:id", students.Patch, authed, adminOnly)
	api.POST("/instructors", instructors.Create, authed, adminOnly)
	api.PATCH("/instructors/:id", instructors.Patch, authed, adminOnly)
	api.POST("/classes", classes.Create, authed, adminOnly)
	api.PATCH("/classes/:id", classes.Patch, authed, adminOnly)
	api.POST("/schedules", schedules.Create, authed, adminOnly)
	api.PATCH("/schedules/:id", schedules.Patch, authed, adminOnly)
	api.PATCH("/bookings/:id", bookings.Patch, authed, adminOnly)
	api.PATCH("/payments/:id", payments.Patch, authed, adminOnly)
	api.POST("/promotions", promotions.Create, authed, adminOnly)
	api.PATCH("/promotions/:id", promotions.Patch, authed, adminOnly)
}
