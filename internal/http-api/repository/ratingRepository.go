package repository

import (
	"context"
	"fmt"
	"net/url"

	"letterbox/internal/http-api/models"
	"letterbox/internal/supabase"
)

type RatingRepository interface {
	Upsert(ctx context.Context, access supabase.Access, rating *models.Rating) (*models.Rating, error)
	ListByUser(ctx context.Context, access supabase.Access, userID string) ([]models.Rating, error)
	GetByUserAndMovie(ctx context.Context, access supabase.Access, userID string, tmdbID int64) (*models.Rating, error)
}

type ratingRepository struct {
	client *supabase.Client
}

func NewRatingRepository(client *supabase.Client) RatingRepository {
	return &ratingRepository{client: client}
}

// ratingRow is the writable column set; ids and timestamps are
// server-assigned.
type ratingRow struct {
	UserID string  `json:"user_id"`
	TmdbID int64   `json:"tmdb_id"`
	Rating float64 `json:"rating"`
	Review *string `json:"review"`
}

// Upsert creates or merges the unique (user_id, tmdb_id) row in one call.
// The store's uniqueness constraint makes this safe under concurrent
// requests for the same pair.
func (r *ratingRepository) Upsert(ctx context.Context, access supabase.Access, rating *models.Rating) (*models.Rating, error) {
	body := []ratingRow{{
		UserID: rating.UserID,
		TmdbID: rating.TmdbID,
		Rating: rating.Rating,
		Review: rating.Review,
	}}

	var rows []models.Rating
	if err := r.client.Upsert(ctx, access, "ratings", "user_id,tmdb_id", body, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// ListByUser returns every rating for a user; no pagination, the summary
// aggregation needs the full set.
func (r *ratingRepository) ListByUser(ctx context.Context, access supabase.Access, userID string) ([]models.Rating, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("user_id", "eq."+userID)

	var rows []models.Rating
	if err := r.client.Select(ctx, access, "ratings", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByUserAndMovie fetches the user's rating for one movie.
func (r *ratingRepository) GetByUserAndMovie(ctx context.Context, access supabase.Access, userID string, tmdbID int64) (*models.Rating, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("user_id", "eq."+userID)
	params.Set("tmdb_id", fmt.Sprintf("eq.%d", tmdbID))

	var rows []models.Rating
	if err := r.client.Select(ctx, access, "ratings", params, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}
