package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"letterbox/internal/cache"
	"letterbox/internal/http-api/dto"
	"letterbox/internal/http-api/repository"
	"letterbox/internal/supabase"
	"letterbox/internal/tmdb"
)

// ErrUpstream marks a catalog failure so the handler can answer 502
// instead of a generic 500.
var ErrUpstream = errors.New("movie catalog unavailable")

// ErrMovieNotFound marks an id the catalog does not know.
var ErrMovieNotFound = errors.New("movie not found")

// CatalogAPI is the slice of the TMDB client the services consume.
type CatalogAPI interface {
	GetPopularMovies(ctx context.Context, page int) (*tmdb.MovieListResponse, error)
	SearchMovies(ctx context.Context, query string, page int) (*tmdb.MovieListResponse, error)
	GetMovieDetails(ctx context.Context, movieID int64) (*tmdb.Movie, error)
	GetMovieVideos(ctx context.Context, movieID int64) (*tmdb.VideoListResponse, error)
	GetWatchProviders(ctx context.Context, movieID int64) (*tmdb.WatchProvidersResponse, error)
}

type MovieService interface {
	Popular(ctx context.Context, page int) (*dto.MovieListResponse, error)
	Search(ctx context.Context, query string, page int) (*dto.MovieListResponse, error)
	Details(ctx context.Context, tmdbID int64, region string, user *supabase.User, token string) (*dto.MovieDetailsResponse, error)
}

type movieService struct {
	catalog       CatalogAPI
	pages         *cache.PageCache
	ratingRepo    repository.RatingRepository
	watchlistRepo repository.WatchlistRepository
	logger        *slog.Logger
}

func NewMovieService(catalog CatalogAPI, pages *cache.PageCache, ratingRepo repository.RatingRepository, watchlistRepo repository.WatchlistRepository, logger *slog.Logger) MovieService {
	return &movieService{
		catalog:       catalog,
		pages:         pages,
		ratingRepo:    ratingRepo,
		watchlistRepo: watchlistRepo,
		logger:        logger,
	}
}

func (s *movieService) Popular(ctx context.Context, page int) (*dto.MovieListResponse, error) {
	key := fmt.Sprintf("tmdb:popular:%d", page)

	var cached dto.MovieListResponse
	if s.pages.Get(ctx, key, &cached) {
		return &cached, nil
	}

	list, err := s.catalog.GetPopularMovies(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	response := dto.FromTMDBList(list)
	s.pages.Set(ctx, key, response)
	return response, nil
}

func (s *movieService) Search(ctx context.Context, query string, page int) (*dto.MovieListResponse, error) {
	key := fmt.Sprintf("tmdb:search:%s:%d", strings.ToLower(query), page)

	var cached dto.MovieListResponse
	if s.pages.Get(ctx, key, &cached) {
		return &cached, nil
	}

	list, err := s.catalog.SearchMovies(ctx, query, page)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	response := dto.FromTMDBList(list)
	s.pages.Set(ctx, key, response)
	return response, nil
}

// Details assembles the full detail view: catalog record, trailer pick,
// regional providers, and the caller's own rating/watchlist state. The
// three catalog calls must all succeed; the personal block is best-effort
// and degrades to its defaults on any store failure.
func (s *movieService) Details(ctx context.Context, tmdbID int64, region string, user *supabase.User, token string) (*dto.MovieDetailsResponse, error) {
	movie, err := s.catalog.GetMovieDetails(ctx, tmdbID)
	if err != nil {
		if errors.Is(err, tmdb.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	videos, err := s.catalog.GetMovieVideos(ctx, tmdbID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	providers, err := s.catalog.GetWatchProviders(ctx, tmdbID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	response := &dto.MovieDetailsResponse{
		Movie:     dto.FromTMDBMovie(movie),
		Trailer:   pickTrailer(videos.Results),
		Providers: formatProviders(providers, region),
	}

	if user != nil {
		response.PersonalLists = s.personalLists(ctx, supabase.WithToken(token), user.ID, tmdbID)
	}
	return response, nil
}

// pickTrailer prefers a YouTube video typed Trailer, falling back to the
// first YouTube video of any type.
func pickTrailer(videos []tmdb.Video) *dto.TrailerResponse {
	var fallback *dto.TrailerResponse
	for i := range videos {
		v := &videos[i]
		if v.Site != "YouTube" {
			continue
		}
		if v.Type == "Trailer" {
			return &dto.TrailerResponse{Key: v.Key, Name: v.Name}
		}
		if fallback == nil {
			fallback = &dto.TrailerResponse{Key: v.Key, Name: v.Name}
		}
	}
	return fallback
}

// formatProviders extracts one region's availability. An absent region
// yields empty lists, not an error.
func formatProviders(response *tmdb.WatchProvidersResponse, region string) dto.ProvidersResponse {
	formatted := dto.ProvidersResponse{
		Subscription: []dto.ProviderResponse{},
		Rent:         []dto.ProviderResponse{},
		Buy:          []dto.ProviderResponse{},
	}

	entry, ok := response.Results[strings.ToUpper(region)]
	if !ok {
		return formatted
	}

	if entry.Link != "" {
		link := entry.Link
		formatted.Link = &link
	}
	formatted.Subscription = formatProviderList(entry.Flatrate)
	formatted.Rent = formatProviderList(entry.Rent)
	formatted.Buy = formatProviderList(entry.Buy)
	return formatted
}

func formatProviderList(providers []tmdb.Provider) []dto.ProviderResponse {
	formatted := make([]dto.ProviderResponse, 0, len(providers))
	for _, p := range providers {
		formatted = append(formatted, dto.ProviderResponse{
			ProviderID:   p.ProviderID,
			ProviderName: p.ProviderName,
			LogoPath:     p.LogoPath,
		})
	}
	return formatted
}

func (s *movieService) personalLists(ctx context.Context, access supabase.Access, userID string, tmdbID int64) dto.PersonalListsResponse {
	var personal dto.PersonalListsResponse

	rating, err := s.ratingRepo.GetByUserAndMovie(ctx, access, userID, tmdbID)
	switch {
	case err == nil:
		personal.Rated = true
		value := rating.Rating
		personal.Rating = &value
	case !errors.Is(err, repository.ErrNotFound):
		s.logger.Debug("personal rating lookup failed", "tmdb_id", tmdbID, "error", err)
	}

	entry, err := s.watchlistRepo.GetByUserAndMovie(ctx, access, userID, tmdbID)
	switch {
	case err == nil:
		status := entry.Status
		personal.WatchlistStatus = &status
	case !errors.Is(err, repository.ErrNotFound):
		s.logger.Debug("personal watchlist lookup failed", "tmdb_id", tmdbID, "error", err)
	}

	return personal
}
