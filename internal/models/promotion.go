package models

import "time"

// Promotion is a discount code with an activity window and an optional
// usage ceiling. Exactly one of DiscountPercent/DiscountAmount is set.
type Promotion struct {
	ID              int       `json:"id"`
	Code            string    `json:"code"`
	DiscountPercent *int      `json:"discountPercent,omitempty"`
	DiscountAmount  *int      `json:"discountAmount,omitempty"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	MaxUses         *int      `json:"maxUses,omitempty"`
	UseCount        int       `json:"useCount"`
	SportCategoryID *int      `json:"sportCategoryId,omitempty"`
	Description     string    `json:"description,omitempty"`
	Active          bool      `json:"active"`
}
