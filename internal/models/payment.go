package models

import "time"

// PaymentMethod is how a payment was made.
type PaymentMethod string

const (
	PayCreditCard   PaymentMethod = "credit_card"
	PayMomo         PaymentMethod = "momo"
	PayZaloPay      PaymentMethod = "zalopay"
	PayCash         PaymentMethod = "cash"
	PayBankTransfer PaymentMethod = "bank_transfer"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PayCreditCard, PayMomo, PayZaloPay, PayCash, PayBankTransfer:
		return true
	}
	return false
}

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// Payment records money received from a user, optionally tied to a booking.
// A completed payment with a booking confirms that booking.
type Payment struct {
	ID            int           `json:"id"`
	UserID        int           `json:"userId"`
	BookingID     *int          `json:"bookingId,omitempty"`
	Amount        int           `json:"amount"` // in VND
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transactionId,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}
