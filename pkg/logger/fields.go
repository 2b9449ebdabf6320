package logger

// Standard field names for consistent logging.
const (
	FieldService   = "service"
	FieldUserID    = "user_id"
	FieldClassID   = "class_id"
	FieldBookingID = "booking_id"
)
