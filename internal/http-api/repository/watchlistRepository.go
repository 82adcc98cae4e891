package repository

import (
	"context"
	"fmt"
	"net/url"

	"letterbox/internal/http-api/models"
	"letterbox/internal/supabase"
)

type WatchlistRepository interface {
	Upsert(ctx context.Context, access supabase.Access, entry *models.WatchlistEntry) (*models.WatchlistEntry, error)
	Delete(ctx context.Context, access supabase.Access, userID string, tmdbID int64) error
	ListByUser(ctx context.Context, access supabase.Access, userID string) ([]models.WatchlistEntry, error)
	GetByUserAndMovie(ctx context.Context, access supabase.Access, userID string, tmdbID int64) (*models.WatchlistEntry, error)
}

type watchlistRepository struct {
	client *supabase.Client
}

func NewWatchlistRepository(client *supabase.Client) WatchlistRepository {
	return &watchlistRepository{client: client}
}

type watchlistRow struct {
	UserID string `json:"user_id"`
	TmdbID int64  `json:"tmdb_id"`
	Status string `json:"status"`
}

func (r *watchlistRepository) Upsert(ctx context.Context, access supabase.Access, entry *models.WatchlistEntry) (*models.WatchlistEntry, error) {
	body := []watchlistRow{{
		UserID: entry.UserID,
		TmdbID: entry.TmdbID,
		Status: entry.Status,
	}}

	var rows []models.WatchlistEntry
	if err := r.client.Upsert(ctx, access, "watchlist", "user_id,tmdb_id", body, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

func (r *watchlistRepository) Delete(ctx context.Context, access supabase.Access, userID string, tmdbID int64) error {
	params := url.Values{}
	params.Set("user_id", "eq."+userID)
	params.Set("tmdb_id", fmt.Sprintf("eq.%d", tmdbID))

	var rows []models.WatchlistEntry
	if err := r.client.Delete(ctx, access, "watchlist", params, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *watchlistRepository) ListByUser(ctx context.Context, access supabase.Access, userID string) ([]models.WatchlistEntry, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("user_id", "eq."+userID)

	var rows []models.WatchlistEntry
	if err := r.client.Select(ctx, access, "watchlist", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *watchlistRepository) GetByUserAndMovie(ctx context.Context, access supabase.Access, userID string, tmdbID int64) (*models.WatchlistEntry, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("user_id", "eq."+userID)
	params.Set("tmdb_id", fmt.Sprintf("eq.%d", tmdbID))

	var rows []models.WatchlistEntry
	if err := r.client.Select(ctx, access, "watchlist", params, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}
