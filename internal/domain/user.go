package domain

import "time"

// UserRecord is the per-user document in the users collection.
// IsAdmin is the flag consulted by the authorization check.
type UserRecord struct {
	UID         string      `json:"uid"`
	Email       string      `json:"email"`
	DisplayName string      `json:"displayName,omitempty"`
	PhotoURL    string      `json:"photoURL,omitempty"`
	Provider    string      `json:"provider,omitempty"`
	IsAdmin     bool        `json:"isAdmin"`
	Profile     UserProfile `json:"profile"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	LastLogin   *time.Time  `json:"lastLogin,omitempty"`
}

// UserProfile is the patient data a user edits about themselves.
type UserProfile struct {
	FullName         string `json:"fullName,omitempty"`
	Phone            string `json:"phone,omitempty"`
	BirthDate        string `json:"birthDate,omitempty"`
	Address          string `json:"address,omitempty"`
	BloodType        string `json:"bloodType,omitempty"`
	Allergies        string `json:"allergies,omitempty"`
	Medications      string `json:"medications,omitempty"`
	MedicalNotes     string `json:"medicalNotes,omitempty"`
	EmergencyContact string `json:"emergencyContact,omitempty"`
}
