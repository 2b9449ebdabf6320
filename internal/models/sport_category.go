package models

// SportCategory groups classes and instructors by discipline.
type SportCategory struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color"`
}
