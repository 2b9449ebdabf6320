package models

// InstructorStatus tracks whether an instructor can currently be scheduled.
type InstructorStatus string

const (
	InstructorAvailable   InstructorStatus = "available"
	InstructorUnavailable InstructorStatus = "unavailable"
	InstructorOnLeave     InstructorStatus = "on_leave"
)

// Valid reports whether s is a known instructor status.
func (s InstructorStatus) Valid() bool {
	switch s {
	case InstructorAvailable, InstructorUnavailable, InstructorOnLeave:
		return true
	}
	return false
}

// Instructor is the coaching profile attached 1:1 to a user with the
// instructor role.
type Instructor struct {
	ID              int              `json:"id"`
	UserID          int              `json:"userId"`
	SportCategoryID int              `json:"sportCategoryId"`
	Bio             string           `json:"bio,omitempty"`
	Specialties     []string         `json:"specialties,omitempty"`
	YearsExperience int              `json:"yearsExperience,omitempty"`
	Availability    []Weekday        `json:"availability"`
	Status          InstructorStatus `json:"status"`
	LeaveUntil      *Date            `json:"leaveUntil,omitempty"`
}
