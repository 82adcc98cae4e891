package repository

import (
	"context"
	"net/url"

	"letterbox/internal/http-api/models"
	"letterbox/internal/supabase"
)

type ListRepository interface {
	Create(ctx context.Context, access supabase.Access, list *models.CustomList) (*models.CustomList, error)
	ListByUser(ctx context.Context, access supabase.Access, userID string) ([]models.CustomList, error)
}

type listRepository struct {
	client *supabase.Client
}

func NewListRepository(client *supabase.Client) ListRepository {
	return &listRepository{client: client}
}

type listRow struct {
	UserID      string  `json:"user_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsPublic    bool    `json:"is_public"`
	SortMode    string  `json:"sort_mode"`
}

func (r *listRepository) Create(ctx context.Context, access supabase.Access, list *models.CustomList) (*models.CustomList, error) {
	body := []listRow{{
		UserID:      list.UserID,
		Name:        list.Name,
		Description: list.Description,
		IsPublic:    list.IsPublic,
		SortMode:    list.SortMode,
	}}

	var rows []models.CustomList
	if err := r.client.Insert(ctx, access, "custom_lists", body, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

func (r *listRepository) ListByUser(ctx context.Context, access supabase.Access, userID string) ([]models.CustomList, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("user_id", "eq."+userID)
	params.Set("order", "created_at.desc")

	var rows []models.CustomList
	if err := r.client.Select(ctx, access, "custom_lists", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
