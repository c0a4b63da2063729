package update_current_user

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/users/models"
)

// ProfileRequest данные пациента
type ProfileRequest struct {
	FullName         string `json:"fullName" validate:"max=200"`
	Phone            string `json:"phone" validate:"omitempty,max=32"`
	BirthDate        string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Address          string `json:"address" validate:"max=500"`
	BloodType        string `json:"bloodType" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies        string `json:"allergies" validate:"max=2000"`
	Medications      string `json:"medications" validate:"max=2000"`
	MedicalNotes     string `json:"medicalNotes" validate:"max=5000"`
	EmergencyContact string `json:"emergencyContact" validate:"max=200"`
}

// UpdateCurrentUserRequest HTTP request model; поля isAdmin нет намеренно
type UpdateCurrentUserRequest struct {
	DisplayName *string        `json:"displayName,omitempty" validate:"omitempty,max=200"`
	PhotoURL    *string        `json:"photoURL,omitempty" validate:"omitempty,url"`
	Profile     ProfileRequest `json:"profile"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateCurrentUserRequest) ToServiceRequest() *models.UpdateProfileRequest {
	return &models.UpdateProfileRequest{
		DisplayName: r.DisplayName,
		PhotoURL:    r.PhotoURL,
		Profile: domain.UserProfile{
			FullName:         r.Profile.FullName,
			Phone:            r.Profile.Phone,
			BirthDate:        r.Profile.BirthDate,
			Address:          r.Profile.Address,
			BloodType:        r.Profile.BloodType,
			Allergies:        r.Profile.Allergies,
			Medications:      r.Profile.Medications,
			MedicalNotes:     r.Profile.MedicalNotes,
			EmergencyContact: r.Profile.EmergencyContact,
		},
	}
}
