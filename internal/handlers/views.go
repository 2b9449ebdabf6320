package handlers

import (
	"edusport/internal/models"
	"edusport/internal/store"
)

// View composition: resolve foreign keys into nested objects the way the
// admin console consumes them. Lookups that miss leave the field null
// rather than failing the request.

func composeInstructor(db *store.Store, instructor models.Instructor) InstructorView {
	view := InstructorView{Instructor: instructor}
	if user, ok := db.GetUser(instructor.UserID); ok {
		summary := user.Summary()
		view.User = &summary
	}
	if category, ok := db.GetSportCategory(instructor.SportCategoryID); ok {
		view.SportCategory = &category
	}
	return view
}

func composeClass(db *store.Store, class models.Class) ClassView {
	view := ClassView{Class: class, Schedules: db.ListSchedules(&class.ID)}
	if instructor, ok := db.GetInstructor(class.InstructorID); ok {
		iv := composeInstructor(db, instructor)
		view.Instructor = &iv
	}
	if category, ok := db.GetSportCategory(class.SportCategoryID); ok {
		view.SportCategory = &category
	}
	if class.VenueID != nil {
		if venue, ok := db.GetVenue(*class.VenueID); ok {
			view.Venue = &venue
		}
	}
	return view
}

func composeBooking(db *store.Store, booking models.Booking) BookingView {
	view := BookingView{
		Booking:  booking,
		Payments: db.ListPayments(&booking.UserID, &booking.ID),
	}
	if user, ok := db.GetUser(booking.UserID); ok {
		summary := user.Summary()
		view.User = &summary
	}
	if class, ok := db.GetClass(booking.ClassID); ok {
		view.Class = &class
	}
	if schedule, ok := db.GetSchedule(booking.ScheduleID); ok {
		view.Schedule = &schedule
	}
	return view
}
