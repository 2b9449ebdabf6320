package models

import "time"

// BookingStatus is the lifecycle state of a booking. Only confirmed bookings
// count against class capacity.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Booking reserves a spot in a class for a user on a given date.
type Booking struct {
	ID          int           `json:"id"`
	UserID      int           `json:"userId"`
	ClassID     int           `json:"classId"`
	ScheduleID  int           `json:"scheduleId"`
	BookingDate Date          `json:"bookingDate"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}
