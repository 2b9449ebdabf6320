package store

import (
	"sync"
	"testing"

	"edusport/internal/apperrors"
	"edusport/internal/models"
)

func TestCreateBookingDefaultsAndValidation(t *testing.T) {
	s := New()
	user, class, schedule := fixture(t, s, 10)
	date, _ := models.ParseDate("2026-09-07")

	booking, err := s.CreateBooking(models.Booking{
		UserID:      user.ID,
		ClassID:     class.ID,
		ScheduleID:  schedule.ID,
		BookingDate: date,
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if booking.Status != models.BookingPending {
		t.Errorf("expected pending default, got %q", booking.Status)
	}
	if booking.CreatedAt.IsZero() {
		t.Error("createdAt not stamped")
	}

	cases := []struct {
		name    string
		booking models.Booking
		kind    apperrors.Kind
	}{
		{"unknown class", models.Booking{UserID: user.ID, ClassID: 999, ScheduleID: schedule.ID, BookingDate: date}, apperrors.KindNotFound},
		{"unknown schedule", models.Booking{UserID: user.ID, ClassID: class.ID, ScheduleID: 999, BookingDate: date}, apperrors.KindNotFound},
		{"unknown user", models.Booking{UserID: 999, ClassID: class.ID, ScheduleID: schedule.ID, BookingDate: date}, apperrors.KindNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.CreateBooking(tc.booking); apperrors.KindOf(err) != tc.kind {
				t.Errorf("expected %s, got %v", tc.kind, err)
			}
		})
	}
}

func TestCreateBookingRejectsForeignSchedule(t *testing.T) {
	s := New()
	user, class, _ := fixture(t, s, 10)

	other, err := s.CreateClass(models.Class{
		Name:            "Bơi lội cơ bản",
		SportCategoryID: class.SportCategoryID,
		Capacity:        10,
		InstructorID:    class.InstructorID,
		Active:          true,
	})
	if err != nil {
		t.Fatal(err)
	}
	otherSchedule, err := s.CreateSchedule(models.Schedule{
		ClassID:   other.ID,
		DayOfWeek: models.Tuesday,
		StartTime: "09:00",
		EndTime:   "10:00",
		Recurring: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	date, _ := models.ParseDate("2026-09-08")
	_, err = s.CreateBooking(models.Booking{
		UserID:      user.ID,
		ClassID:     class.ID,
		ScheduleID:  otherSchedule.ID,
		BookingDate: date,
	})
	if apperrors.KindOf(err) != apperrors.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}

	// The patch path applies the same membership check.
	ownSchedule := s.ListSchedules(&class.ID)[0]
	booking, err := s.CreateBooking(models.Booking{
		UserID:      user.ID,
		ClassID:     class.ID,
		ScheduleID:  ownSchedule.ID,
		BookingDate: date,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.UpdateBooking(booking.ID, BookingPatch{ScheduleID: &otherSchedule.ID}); !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("patching in a foreign schedule: expected validation, got %v", err)
	}
}

func TestCreateBookingEnforcesCapacity(t *testing.T) {
	s := New()
	user, class, schedule := fixture(t, s, 2)
	date, _ := models.ParseDate("2026-09-07")

	for i := 0; i < 2; i++ {
		if _, err := s.CreateBooking(models.Booking{
			UserID:      user.ID,
			ClassID:     class.ID,
			ScheduleID:  schedule.ID,
			BookingDate: date,
			Status:      models.BookingConfirmed,
		}); err != nil {
			t.Fatalf("booking %d: %v", i, err)
		}
	}

	_, err := s.CreateBooking(models.Booking{
		UserID:      user.ID,
		ClassID:     class.ID,
		ScheduleID:  schedule.ID,
		BookingDate: date,
		Status:      models.BookingConfirmed,
	})
	if apperrors.KindOf(err) != apperrors.KindBusinessRule {
		t.Fatalf("expected business_rule at capacity, got %v", err)
	}

	// Once confirmed bookings fill the class, every new booking is
	// rejected regardless of its status.
	_, err = s.CreateBooking(models.Booking{
		UserID:      user.ID,
		ClassID:     class.ID,
		ScheduleID:  schedule.ID,
		BookingDate: date,
	})
	if !apperrors.IsKind(err, apperrors.KindBusinessRule) {
		t.Errorf("pending booking at capacity: expected business_rule, got %v", err)
	}
}

func TestConcurrentBookingsRespectCapacity(t *testing.T) {
	s := New()
	user, class, schedule := fixture(t, s, 1)
	date, _ := models.ParseDate("2026-09-07")

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.CreateBooking(models.Booking{
				UserID:      user.ID,
				ClassID:     class.ID,
				ScheduleID:  schedule.ID,
				BookingDate: date,
				Status:      models.BookingConfirmed,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else if apperrors.KindOf(err) != apperrors.KindBusinessRule {
			t.Errorf("unexpected error kind: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected exactly 1 booking to win the slot, got %d", succeeded)
	}
}

func TestRecordPaymentConfirmsBooking(t *testing.T) {
	s := New()
	user, class, schedule := fixture(t, s, 5)
	date, _ := models.ParseDate("2026-09-07")

	booking, err := s.CreateBooking(models.Booking{
		UserID:      user.ID,
		ClassID:     class.ID,
		ScheduleID:  schedule.ID,
		BookingDate: date,
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.RecordPayment(models.Payment{
		UserID:        user.ID,
		BookingID:     &booking.ID,
		Amount:        class.Price,
		PaymentMethod: models.PayMomo,
		Status:        models.PaymentCompleted,
		TransactionID: "tx-1",
	}); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}

	updated, _ := s.GetBooking(booking.ID)
	if updated.Status != models.BookingConfirmed {
		t.Errorf("expected booking confirmed after completed payment, got %q", updated.Status)
	}
}

func TestRecordPaymentPendingLeavesBooking(t *testing.T) {
	s := New()
	user, class, schedule := fixture(t, s, 5)
	date, _ := models.ParseDate("2026-09-07")

	booking, _ := s.CreateBooking(models.Booking{
		UserID:      user.ID,
		ClassID:     class.ID,
		ScheduleID:  schedule.ID,
		BookingDate: date,
	})
	if _, err := s.RecordPayment(models.Payment{
		UserID:        user.ID,
		BookingID:     &booking.ID,
		Amount:        100000,
		PaymentMethod: models.PayCash,
		Status:        models.PaymentPending,
	}); err != nil {
		t.Fatal(err)
	}

	updated, _ := s.GetBooking(booking.ID)
	if updated.Status != models.BookingPending {
		t.Errorf("pending payment must not confirm booking, got %q", updated.Status)
	}
}

func TestListBookingsFilters(t *testing.T) {
	s := New()
	user, class, schedule := fixture(t, s, 10)
	role, _ := s.GetRoleByName(models.RoleStudent)
	other, _ := s.CreateUser(models.User{Username: "bob", Email: "bob@example.com", RoleID: role.ID})
	date, _ := models.ParseDate("2026-09-07")

	s.CreateBooking(models.Booking{UserID: user.ID, ClassID: class.ID, ScheduleID: schedule.ID, BookingDate: date, Status: models.BookingConfirmed})
	s.CreateBooking(models.Booking{UserID: other.ID, ClassID: class.ID, ScheduleID: schedule.ID, BookingDate: date})

	if got := len(s.ListBookings(nil, nil, nil)); got != 2 {
		t.Fatalf("expected 2 bookings, got %d", got)
	}
	if got := len(s.ListBookings(&other.ID, nil, nil)); got != 1 {
		t.Errorf("user filter: expected 1, got %d", got)
	}
	confirmed := models.BookingConfirmed
	if got := len(s.ListBookings(nil, nil, &confirmed)); got != 1 {
		t.Errorf("status filter: expected 1, got %d", got)
	}
	if got := len(s.ListBookings(&other.ID, &class.ID, &confirmed)); got != 0 {
		t.Errorf("combined filter: expected 0, got %d", got)
	}
}
