package dto

import "letterbox/internal/http-api/models"

type CreateListDTO struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description"`
	IsPublic    bool    `json:"is_public"`
	SortMode    string  `json:"sort_mode" binding:"omitempty,oneof=manual recently_added rating_desc"`
}

type ListResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsPublic    bool    `json:"is_public"`
	SortMode    string  `json:"sort_mode"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func FromModelToListResponse(list *models.CustomList) *ListResponse {
	return &ListResponse{
		ID:          list.ID,
		UserID:      list.UserID,
		Name:        list.Name,
		Description: list.Description,
		IsPublic:    list.IsPublic,
		SortMode:    list.SortMode,
		CreatedAt:   list.CreatedAt,
		UpdatedAt:   list.UpdatedAt,
	}
}

type ListsResponse struct {
	Lists []ListResponse `json:"lists"`
}
