package dto

import "letterbox/internal/supabase"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,min=5,max=254"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,min=5,max=254"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type UserResponse struct {
	ID               string  `json:"id"`
	Email            string  `json:"email,omitempty"`
	EmailConfirmedAt *string `json:"email_confirmed_at,omitempty"`
}

// FromSupabaseUser converts a GoTrue user to the API representation.
func FromSupabaseUser(user *supabase.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		EmailConfirmedAt: user.EmailConfirmedAt,
	}
}

type RegisterResponse struct {
	User                      UserResponse `json:"user"`
	EmailConfirmationRequired bool         `json:"email_confirmation_required"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
}
