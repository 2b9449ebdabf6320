package models

// MembershipType is the student membership tier.
type MembershipType string

const (
	MembershipStandard MembershipType = "standard"
	MembershipPremium  MembershipType = "premium"
	MembershipGold     MembershipType = "gold"
)

// Valid reports whether t is a known membership tier.
func (t MembershipType) Valid() bool {
	switch t {
	case MembershipStandard, MembershipPremium, MembershipGold:
		return true
	}
	return false
}

// Student is the profile attached 1:1 to a user with the student role.
// Parent and medical fields exist because most students are minors.
type Student struct {
	ID               int            `json:"id"`
	UserID           int            `json:"userId"`
	ParentName       string         `json:"parentName,omitempty"`
	ParentEmail      string         `json:"parentEmail,omitempty"`
	ParentPhone      string         `json:"parentPhone,omitempty"`
	DateOfBirth      *Date          `json:"dateOfBirth,omitempty"`
	EmergencyContact string         `json:"emergencyContact,omitempty"`
	MedicalNotes     string         `json:"medicalNotes,omitempty"`
	MembershipType   MembershipType `json:"membershipType"`
	MembershipExpiry *Date          `json:"membershipExpiry,omitempty"`
}
