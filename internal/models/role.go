package models

// RoleName identifies one of the seeded roles.
type RoleName string

const (
	RoleAdmin      RoleName = "admin"
	RoleInstructor RoleName = "instructor"
	RoleStudent    RoleName = "student"
)

// Role is a named permission bundle assigned to users.
type Role struct {
	ID          int      `json:"id"`
	Name        RoleName `json:"name"`
	Permissions []string `json:"permissions"`
}
