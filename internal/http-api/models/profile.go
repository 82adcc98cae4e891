package models

// Profile is the one-row-per-user profile, lazily created on first access.
type Profile struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	DisplayName *string `json:"display_name,omitempty"`
	BirthDate   *string `json:"birth_date,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
