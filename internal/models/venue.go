package models

// Venue is an optional facility a class takes place in.
type Venue struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Capacity    int    `json:"capacity,omitempty"`
	Available   bool   `json:"available"`
}
