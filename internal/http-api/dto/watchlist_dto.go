package dto

import "letterbox/internal/http-api/models"

// AddToWatchlistDTO creates or updates a watchlist entry. Absent or
// unrecognized statuses default to to_watch in the service.
type AddToWatchlistDTO struct {
	TmdbID int64  `json:"tmdb_id" binding:"required,gt=0"`
	Status string `json:"status"`
}

type WatchlistResponse struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	TmdbID  int64  `json:"tmdb_id"`
	Status  string `json:"status"`
	AddedAt string `json:"added_at"`
}

func FromModelToWatchlistResponse(entry *models.WatchlistEntry) *WatchlistResponse {
	return &WatchlistResponse{
		ID:      entry.ID,
		UserID:  entry.UserID,
		TmdbID:  entry.TmdbID,
		Status:  entry.Status,
		AddedAt: entry.AddedAt,
	}
}

type WatchlistListResponse struct {
	Watchlist []WatchlistResponse `json:"watchlist"`
}
