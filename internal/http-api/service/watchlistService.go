package service

import (
	"context"
	"log/slog"

	"letterbox/internal/http-api/dto"
	"letterbox/internal/http-api/models"
	"letterbox/internal/http-api/repository"
	"letterbox/internal/supabase"
)

type WatchlistService interface {
	Upsert(ctx context.Context, access supabase.Access, userID string, req *dto.AddToWatchlistDTO) (*dto.WatchlistResponse, error)
	Remove(ctx context.Context, access supabase.Access, userID string, tmdbID int64) error
	ListMine(ctx context.Context, access supabase.Access, userID string) (*dto.WatchlistListResponse, error)
}

type watchlistService struct {
	watchlistRepo repository.WatchlistRepository
	logger        *slog.Logger
}

func NewWatchlistService(watchlistRepo repository.WatchlistRepository, logger *slog.Logger) WatchlistService {
	return &watchlistService{
		watchlistRepo: watchlistRepo,
		logger:        logger,
	}
}

// Upsert adds the movie to the watchlist or moves it to a new status. An
// absent or unrecognized status falls back to to_watch.
func (s *watchlistService) Upsert(ctx context.Context, access supabase.Access, userID string, req *dto.AddToWatchlistDTO) (*dto.WatchlistResponse, error) {
	status := req.Status
	if !models.IsKnownStatus(status) {
		if status != "" {
			s.logger.Debug("unknown watchlist status, defaulting", "status", status)
		}
		status = models.StatusToWatch
	}

	entry := &models.WatchlistEntry{
		UserID: userID,
		TmdbID: req.TmdbID,
		Status: status,
	}

	saved, err := s.watchlistRepo.Upsert(ctx, access, entry)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToWatchlistResponse(saved), nil
}

func (s *watchlistService) Remove(ctx context.Context, access supabase.Access, userID string, tmdbID int64) error {
	return s.watchlistRepo.Delete(ctx, access, userID, tmdbID)
}

func (s *watchlistService) ListMine(ctx context.Context, access supabase.Access, userID string) (*dto.WatchlistListResponse, error) {
	entries, err := s.watchlistRepo.ListByUser(ctx, access, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.WatchlistResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, *dto.FromModelToWatchlistResponse(&entries[i]))
	}
	return &dto.WatchlistListResponse{Watchlist: responses}, nil
}
