package models

// Schedule describes a weekly occurrence of a class.
type Schedule struct {
	ID        int     `json:"id"`
	ClassID   int     `json:"classId"`
	DayOfWeek Weekday `json:"dayOfWeek"`
	StartTime string  `json:"startTime"` // HH:MM
	EndTime   string  `json:"endTime"`   // HH:MM
	Recurring bool    `json:"recurring"`
}
