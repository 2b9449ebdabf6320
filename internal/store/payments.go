package store

import (
	"edusport/internal/apperrors"
	"edusport/internal/models"
)

// PaymentPatch is a partial update; nil fields are left untouched.
type PaymentPatch struct {
	Amount        *int
	PaymentMethod *models.PaymentMethod
	Status        *models.PaymentStatus
	TransactionID *string
}

// RecordPayment inserts a payment and, when the payment is completed and
// tied to a booking, confirms that booking in the same critical section.
// The cross-entity write is deliberate coupling: payment settlement is what
// promotes a booking from pending to confirmed.
func (s *Store) RecordPayment(payment models.Payment) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[payment.UserID]; !ok {
		return models.Payment{}, apperrors.NotFound("User not found")
	}
	if payment.BookingID != nil {
		if _, ok := s.bookings[*payment.BookingID]; !ok {
			return models.Payment{}, apperrors.NotFound("Booking not found")
		}
	}

	// Confirm before inserting so a failed confirmation (class already at
	// capacity) leaves no orphaned payment behind.
	if payment.BookingID != nil && payment.Status == models.PaymentCompleted {
		confirmed := models.BookingConfirmed
		if _, err := s.updateBookingLocked(*payment.BookingID, BookingPatch{Status: &confirmed}); err != nil {
			return models.Payment{}, err
		}
	}

	s.paymentID++
	payment.ID = s.paymentID
	payment.CreatedAt = s.now()
	s.payments[payment.ID] = payment
	return payment, nil
}

func (s *Store) GetPayment(id int) (models.Payment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payment, ok := s.payments[id]
	return payment, ok
}

func (s *Store) UpdatePayment(id int, patch PaymentPatch) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payment, ok := s.payments[id]
	if !ok {
		return models.Payment{}, apperrors.NotFound("Payment not found")
	}
	if patch.Amount != nil {
		payment.Amount = *patch.Amount
	}
	if patch.PaymentMethod != nil {
		payment.PaymentMethod = *patch.PaymentMethod
	}
	if patch.Status != nil {
		payment.Status = *patch.Status
	}
	if patch.TransactionID != nil {
		payment.TransactionID = *patch.TransactionID
	}
	s.payments[id] = payment
	return payment, nil
}

// ListPayments returns payments in creation order, filtered by any
// combination of user and booking.
func (s *Store) ListPayments(userID, bookingID *int) []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Payment, 0, len(s.payments))
	for _, payment := range s.payments {
		if userID != nil && payment.UserID != *userID {
			continue
		}
		if bookingID != nil && (payment.BookingID == nil || *payment.BookingID != *bookingID) {
			continue
		}
		out = append(out, payment)
	}
	return sortByID(out, func(p models.Payment) int { return p.ID })
}
