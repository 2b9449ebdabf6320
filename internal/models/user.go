package models

import "time"

// User owns the credentials for anyone who can sign in: admins, instructors
// and students alike. The password hash never leaves the process.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone,omitempty"`
	RoleID    int       `json:"roleId"`
	Language  string    `json:"language"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserSummary is the safe projection embedded in enriched responses.
type UserSummary struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// Summary strips a user down to its embeddable fields.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, FullName: u.FullName, Email: u.Email, Phone: u.Phone}
}
