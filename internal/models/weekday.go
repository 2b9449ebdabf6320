package models

import "time"

// Weekday is the three-letter day code used by schedules and instructor
// availability: MON..SUN.
type Weekday string

const (
	Monday    Weekday = "MON"
	Tuesday   Weekday = "TUE"
	Wednesday Weekday = "WED"
	Thursday  Weekday = "THU"
	Friday    Weekday = "FRI"
	Saturday  Weekday = "SAT"
	Sunday    Weekday = "SUN"
)

var weekdayToTime = map[Weekday]time.Weekday{
	Monday:    time.Monday,
	Tuesday:   time.Tuesday,
	Wednesday: time.Wednesday,
	Thursday:  time.Thursday,
	Friday:    time.Friday,
	Saturday:  time.Saturday,
	Sunday:    time.Sunday,
}

// Valid reports whether w is one of the seven day codes.
func (w Weekday) Valid() bool {
	_, ok := weekdayToTime[w]
	return ok
}

// Time maps w onto the stdlib weekday. Callers must check Valid first.
func (w Weekday) Time() time.Weekday {
	return weekdayToTime[w]
}
