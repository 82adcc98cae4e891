package service

import (
	"context"
	"log/slog"

	"letterbox/internal/http-api/dto"
	"letterbox/internal/http-api/models"
	"letterbox/internal/http-api/repository"
	"letterbox/internal/supabase"
	"letterbox/internal/tmdb"
)

type RatingService interface {
	Upsert(ctx context.Context, access supabase.Access, userID string, req *dto.CreateRatingDTO) (*dto.RatingResponse, error)
	ListMine(ctx context.Context, access supabase.Access, userID string) (*dto.RatingsListResponse, error)
	ListMineWithMovies(ctx context.Context, access supabase.Access, userID string) (*dto.RatedMoviesListResponse, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	catalog    CatalogAPI
	logger     *slog.Logger
}

func NewRatingService(ratingRepo repository.RatingRepository, catalog CatalogAPI, logger *slog.Logger) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		catalog:    catalog,
		logger:     logger,
	}
}

// Upsert writes the caller's rating for a movie, replacing any previous
// one for the same pair in a single store call.
func (s *ratingService) Upsert(ctx context.Context, access supabase.Access, userID string, req *dto.CreateRatingDTO) (*dto.RatingResponse, error) {
	rating := &models.Rating{
		UserID: userID,
		TmdbID: req.TmdbID,
		Rating: *req.Rating,
		Review: req.Review,
	}

	saved, err := s.ratingRepo.Upsert(ctx, access, rating)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToRatingResponse(saved), nil
}

func (s *ratingService) ListMine(ctx context.Context, access supabase.Access, userID string) (*dto.RatingsListResponse, error) {
	ratings, err := s.ratingRepo.ListByUser(ctx, access, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RatingResponse, 0, len(ratings))
	for i := range ratings {
		responses = append(responses, *dto.FromModelToRatingResponse(&ratings[i]))
	}
	return &dto.RatingsListResponse{Ratings: responses}, nil
}

// ListMineWithMovies enriches each rating with its catalog record. Lookups
// run per movie id; a failed lookup leaves that entry's movie empty rather
// than failing the listing.
func (s *ratingService) ListMineWithMovies(ctx context.Context, access supabase.Access, userID string) (*dto.RatedMoviesListResponse, error) {
	ratings, err := s.ratingRepo.ListByUser(ctx, access, userID)
	if err != nil {
		return nil, err
	}

	movies := s.resolveMovies(ctx, ratings)

	responses := make([]dto.RatedMovieResponse, 0, len(ratings))
	for i := range ratings {
		entry := dto.RatedMovieResponse{
			RatingResponse: *dto.FromModelToRatingResponse(&ratings[i]),
		}
		if movie, ok := movies[ratings[i].TmdbID]; ok {
			converted := dto.FromTMDBMovie(movie)
			entry.Movie = &converted
		}
		responses = append(responses, entry)
	}
	return &dto.RatedMoviesListResponse{Ratings: responses}, nil
}

// resolveMovies fetches each distinct movie id once for this call.
func (s *ratingService) resolveMovies(ctx context.Context, ratings []models.Rating) map[int64]*tmdb.Movie {
	movies := make(map[int64]*tmdb.Movie)
	for i := range ratings {
		id := ratings[i].TmdbID
		if _, seen := movies[id]; seen {
			continue
		}
		movie, err := s.catalog.GetMovieDetails(ctx, id)
		if err != nil {
			s.logger.Debug("movie lookup failed during rating listing", "tmdb_id", id, "error", err)
			continue
		}
		movies[id] = movie
	}
	return movies
}
