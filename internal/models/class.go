package models

// Class is a bookable course. Capacity bounds concurrent confirmed bookings.
type Class struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	SportCategoryID int    `json:"sportCategoryId"`
	Description     string `json:"description,omitempty"`
	AgeGroup        string `json:"ageGroup,omitempty"` // U10, U12, U15, ...
	Capacity        int    `json:"capacity"`
	InstructorID    int    `json:"instructorId"`
	VenueID         *int   `json:"venueId,omitempty"`
	Price           int    `json:"price"` // in VND
	Active          bool   `json:"active"`
}

// ClassSummary is the projection embedded in dashboard responses.
type ClassSummary struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	AgeGroup string `json:"ageGroup,omitempty"`
}

// Summary strips a class down to its embeddable fields.
func (c Class) Summary() ClassSummary {
	return ClassSummary{ID: c.ID, Name: c.Name, AgeGroup: c.AgeGroup}
}
