package repository

import (
	"context"
	"net/url"

	"letterbox/internal/http-api/models"
	"letterbox/internal/supabase"
)

type ProfileRepository interface {
	GetByUser(ctx context.Context, access supabase.Access, userID string) (*models.Profile, error)
	CreateEmpty(ctx context.Context, userID string) (*models.Profile, error)
	Update(ctx context.Context, access supabase.Access, userID string, fields map[string]interface{}) (*models.Profile, error)
}

type profileRepository struct {
	client *supabase.Client
}

func NewProfileRepository(client *supabase.Client) ProfileRepository {
	return &profileRepository{client: client}
}

func (r *profileRepository) GetByUser(ctx context.Context, access supabase.Access, userID string) (*models.Profile, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("user_id", "eq."+userID)

	var rows []models.Profile
	if err := r.client.Select(ctx, access, "profiles", params, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// CreateEmpty provisions the one-per-user profile row. It always runs
// elevated: insert policies for fresh users are not guaranteed, and the
// upsert keeps double provisioning harmless.
func (r *profileRepository) CreateEmpty(ctx context.Context, userID string) (*models.Profile, error) {
	body := []map[string]interface{}{{"user_id": userID}}

	var rows []models.Profile
	if err := r.client.Upsert(ctx, supabase.Elevated(), "profiles", "user_id", body, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

func (r *profileRepository) Update(ctx context.Context, access supabase.Access, userID string, fields map[string]interface{}) (*models.Profile, error) {
	params := url.Values{}
	params.Set("user_id", "eq."+userID)

	var rows []models.Profile
	if err := r.client.Update(ctx, access, "profiles", params, fields, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}
