package store

import (
	"edusport/internal/apperrors"
	"edusport/internal/models"
)

// BookingPatch is a partial update; nil fields are left untouched.
type BookingPatch struct {
	ScheduleID  *int
	BookingDate *models.Date
	Status      *models.BookingStatus
}

// CreateBooking validates and inserts a booking in one critical section:
// the class must exist, the schedule must exist, and the class's confirmed
// bookings must be under capacity. Because the capacity count and the
// insert happen under the same write lock, two concurrent requests cannot
// both observe a free slot.
func (s *Store) CreateBooking(booking models.Booking) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	class, ok := s.classes[booking.ClassID]
	if !ok {
		return models.Booking{}, apperrors.NotFound("Class not found")
	}
	schedule, ok := s.schedules[booking.ScheduleID]
	if !ok {
		return models.Booking{}, apperrors.NotFound("Schedule not found")
	}
	if schedule.ClassID != class.ID {
		return models.Booking{}, apperrors.Validation("Schedule does not belong to class")
	}
	if _, ok := s.users[booking.UserID]; !ok {
		return models.Booking{}, apperrors.NotFound("User not found")
	}

	confirmed := 0
	for _, existing := range s.bookings {
		if existing.ClassID == booking.ClassID && existing.Status == models.BookingConfirmed {
			confirmed++
		}
	}
	if confirmed >= class.Capacity {
		return models.Booking{}, apperrors.BusinessRule("Class is at full capacity")
	}

	if booking.Status == "" {
		booking.Status = models.BookingPending
	}
	s.bookingID++
	booking.ID = s.bookingID
	booking.CreatedAt = s.now()
	s.bookings[booking.ID] = booking
	return booking, nil
}

func (s *Store) GetBooking(id int) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	booking, ok := s.bookings[id]
	return booking, ok
}

func (s *Store) UpdateBooking(id int, patch BookingPatch) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateBookingLocked(id, patch)
}

// updateBookingLocked merges a patch onto a booking; callers hold the write
// lock. RecordPayment reuses it for the confirm side effect.
func (s *Store) updateBookingLocked(id int, patch BookingPatch) (models.Booking, error) {
	booking, ok := s.bookings[id]
	if !ok {
		return models.Booking{}, apperrors.NotFound("Booking not found")
	}
	if patch.ScheduleID != nil {
		schedule, ok := s.schedules[*patch.ScheduleID]
		if !ok {
			return models.Booking{}, apperrors.NotFound("Schedule not found")
		}
		if schedule.ClassID != booking.ClassID {
			return models.Booking{}, apperrors.Validation("Schedule does not belong to class")
		}
		booking.ScheduleID = *patch.ScheduleID
	}
	if patch.BookingDate != nil {
		booking.BookingDate = *patch.BookingDate
	}
	if patch.Status != nil {
		// Promoting to confirmed claims a capacity slot, so the same
		// check that guards CreateBooking applies here.
		if *patch.Status == models.BookingConfirmed && booking.Status != models.BookingConfirmed {
			if class, ok := s.classes[booking.ClassID]; ok {
				confirmed := 0
				for _, existing := range s.bookings {
					if existing.ClassID == booking.ClassID && existing.Status == models.BookingConfirmed {
						confirmed++
					}
				}
				if confirmed >= class.Capacity {
					return models.Booking{}, apperrors.BusinessRule("Class is at full capacity")
				}
			}
		}
		booking.Status = *patch.Status
	}
	s.bookings[id] = booking
	return booking, nil
}

// ListBookings returns bookings in creation order, filtered by any
// combination of user, class and status.
func (s *Store) ListBookings(userID, classID *int, status *models.BookingStatus) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, 0, len(s.bookings))
	for _, booking := range s.bookings {
		if userID != nil && booking.UserID != *userID {
			continue
		}
		if classID != nil && booking.ClassID != *classID {
			continue
		}
		if status != nil && booking.Status != *status {
			continue
		}
		out = append(out, booking)
	}
	return sortByID(out, func(b models.Booking) int { return b.ID })
}
