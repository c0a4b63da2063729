package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// UpdateProfileRequest изменение собственного профиля; isAdmin изменить нельзя
type UpdateProfileRequest struct {
	DisplayName *string
	PhotoURL    *string
	Profile     domain.UserProfile
}

// UserResponse пользователь в ответе API
type UserResponse struct {
	UID         string             `json:"uid"`
	Email       string             `json:"email"`
	DisplayName string             `json:"displayName,omitempty"`
	PhotoURL    string             `json:"photoURL,omitempty"`
	Provider    string             `json:"provider,omitempty"`
	IsAdmin     bool               `json:"isAdmin"`
	Profile     domain.UserProfile `json:"profile"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	LastLogin   *time.Time         `json:"lastLogin,omitempty"`
}

// UserListResponse список пользователей
type UserListResponse struct {
	Users []*UserResponse `json:"users"`
	Total int             `json:"total"`
}

// FromDomainUser конвертирует запись пользователя в ответ API
func FromDomainUser(user *domain.UserRecord) *UserResponse {
	return &UserResponse{
		UID:         user.UID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
		Provider:    user.Provider,
		IsAdmin:     user.IsAdmin,
		Profile:     user.Profile,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
		LastLogin:   user.LastLogin,
	}
}

// FromDomainUserList конвертирует список записей
func FromDomainUserList(users []*domain.UserRecord) *UserListResponse {
	out := make([]*UserResponse, len(users))
	for i, u := range users {
		out[i] = FromDomainUser(u)
	}
	return &UserListResponse{Users: out, Total: len(out)}
}
