package dto

import "letterbox/internal/http-api/models"

// UpdateProfileRequest carries only the fields to change; nil fields are
// left untouched.
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=255"`
	BirthDate   *string `json:"birth_date"`
	AvatarURL   *string `json:"avatar_url" binding:"omitempty,max=2048"`
}

// IsEmpty reports whether the request carries no fields at all.
func (r *UpdateProfileRequest) IsEmpty() bool {
	return r.DisplayName == nil && r.BirthDate == nil && r.AvatarURL == nil
}

type ProfileResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	DisplayName *string `json:"display_name,omitempty"`
	BirthDate   *string `json:"birth_date,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func FromModelToProfileResponse(profile *models.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:          profile.ID,
		UserID:      profile.UserID,
		DisplayName: profile.DisplayName,
		BirthDate:   profile.BirthDate,
		AvatarURL:   profile.AvatarURL,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}
}
