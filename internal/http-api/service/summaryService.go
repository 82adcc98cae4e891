package service

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"letterbox/internal/http-api/dto"
	"letterbox/internal/http-api/models"
	"letterbox/internal/http-api/repository"
	"letterbox/internal/supabase"
	"letterbox/internal/tmdb"
)

const shelfSize = 10

// statusLabels maps each known watchlist status to its display label.
var statusLabels = map[string]string{
	models.StatusToWatch:   "To Watch",
	models.StatusWatching:  "Watching",
	models.StatusCompleted: "Completed",
	models.StatusOnHold:    "On Hold",
	models.StatusDropped:   "Dropped",
}

type SummaryService interface {
	Summarize(ctx context.Context, token string, userID string) (*dto.ProfileSummaryResponse, error)
}

type summaryService struct {
	ratingRepo    repository.RatingRepository
	watchlistRepo repository.WatchlistRepository
	catalog       CatalogAPI
	elevated      bool
	logger        *slog.Logger
}

// NewSummaryService wires the aggregation over ratings, watchlist and the
// catalog. With elevated true the store reads use the service-role key;
// otherwise they run under the caller's own token.
func NewSummaryService(ratingRepo repository.RatingRepository, watchlistRepo repository.WatchlistRepository, catalog CatalogAPI, elevated bool, logger *slog.Logger) SummaryService {
	return &summaryService{
		ratingRepo:    ratingRepo,
		watchlistRepo: watchlistRepo,
		catalog:       catalog,
		elevated:      elevated,
		logger:        logger,
	}
}

// Summarize builds the profile summary: the ten most recent and ten
// highest-rated ratings with movie metadata, aggregate stats, and
// watchlist counts per status.
func (s *summaryService) Summarize(ctx context.Context, token string, userID string) (*dto.ProfileSummaryResponse, error) {
	access := supabase.WithToken(token)
	if s.elevated {
		access = supabase.Elevated()
	}

	ratings, err := s.ratingRepo.ListByUser(ctx, access, userID)
	if err != nil {
		return nil, err
	}

	watchlist, err := s.watchlistRepo.ListByUser(ctx, access, userID)
	if err != nil {
		return nil, err
	}

	recent := sortByRecency(ratings)
	topRated := sortByRating(ratings)
	if len(recent) > shelfSize {
		recent = recent[:shelfSize]
	}
	if len(topRated) > shelfSize {
		topRated = topRated[:shelfSize]
	}

	movies := s.resolveShelfMovies(ctx, recent, topRated)

	return &dto.ProfileSummaryResponse{
		Recent:           buildShelf(recent, movies),
		TopRated:         buildShelf(topRated, movies),
		Stats:            buildStats(ratings, watchlist),
		WatchlistSummary: buildWatchlistSummary(watchlist),
	}, nil
}

// ratingTimestamp orders a rating by its last touch: updated_at when
// parsable, else created_at, else the zero instant so broken rows sink to
// the bottom of the recency shelf.
func ratingTimestamp(r *models.Rating) time.Time {
	if t, err := time.Parse(time.RFC3339, r.UpdatedAt); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
		return t
	}
	return time.Time{}
}

func sortByRecency(ratings []models.Rating) []models.Rating {
	sorted := make([]models.Rating, len(ratings))
	copy(sorted, ratings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ratingTimestamp(&sorted[i]).After(ratingTimestamp(&sorted[j]))
	})
	return sorted
}

func sortByRating(ratings []models.Rating) []models.Rating {
	sorted := make([]models.Rating, len(ratings))
	copy(sorted, ratings)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rating != sorted[j].Rating {
			return sorted[i].Rating > sorted[j].Rating
		}
		return ratingTimestamp(&sorted[i]).After(ratingTimestamp(&sorted[j]))
	})
	return sorted
}

// resolveShelfMovies fetches each distinct movie on either shelf once.
// A failed lookup is logged and leaves that entry without metadata.
func (s *summaryService) resolveShelfMovies(ctx context.Context, shelves ...[]models.Rating) map[int64]*tmdb.Movie {
	movies := make(map[int64]*tmdb.Movie)
	for _, shelf := range shelves {
		for i := range shelf {
			id := shelf[i].TmdbID
			if _, seen := movies[id]; seen {
				continue
			}
			movie, err := s.catalog.GetMovieDetails(ctx, id)
			if err != nil {
				s.logger.Debug("movie lookup failed during summary", "tmdb_id", id, "error", err)
				movies[id] = nil
				continue
			}
			movies[id] = movie
		}
	}
	return movies
}

func buildShelf(ratings []models.Rating, movies map[int64]*tmdb.Movie) []dto.SummaryItem {
	items := make([]dto.SummaryItem, 0, len(ratings))
	for i := range ratings {
		r := &ratings[i]
		item := dto.SummaryItem{
			TmdbID:    r.TmdbID,
			Rating:    r.Rating,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		}
		if movie := movies[r.TmdbID]; movie != nil {
			item.Movie = &dto.SummaryMovie{
				Title:      movie.Title,
				PosterPath: movie.PosterPath,
			}
		}
		items = append(items, item)
	}
	return items
}

// buildStats averages over every rating the user has, not just the shelf
// slice, rounded to two decimals. No ratings means 0.0.
func buildStats(ratings []models.Rating, watchlist []models.WatchlistEntry) dto.SummaryStats {
	stats := dto.SummaryStats{
		RatingsCount:   len(ratings),
		WatchlistCount: len(watchlist),
	}
	if len(ratings) == 0 {
		return stats
	}

	var sum float64
	for i := range ratings {
		sum += ratings[i].Rating
	}
	stats.AverageRating = math.Round(sum/float64(len(ratings))*100) / 100
	return stats
}

// buildWatchlistSummary emits one bucket per known status, zeroes
// included, in the canonical order, then one bucket per unknown status in
// first-seen order.
func buildWatchlistSummary(watchlist []models.WatchlistEntry) []dto.WatchlistBucket {
	counts := make(map[string]int)
	var unknownOrder []string
	for i := range watchlist {
		status := watchlist[i].Status
		if !models.IsKnownStatus(status) && counts[status] == 0 {
			unknownOrder = append(unknownOrder, status)
		}
		counts[status]++
	}

	buckets := make([]dto.WatchlistBucket, 0, len(models.KnownStatuses)+len(unknownOrder))
	for _, status := range models.KnownStatuses {
		buckets = append(buckets, dto.WatchlistBucket{
			Status: status,
			Label:  statusLabels[status],
			Count:  counts[status],
		})
	}
	for _, status := range unknownOrder {
		buckets = append(buckets, dto.WatchlistBucket{
			Status: status,
			Label:  unknownStatusLabel(status),
			Count:  counts[status],
		})
	}
	return buckets
}

// unknownStatusLabel turns e.g. "binge_later" into "Binge Later".
func unknownStatusLabel(status string) string {
	words := strings.Fields(strings.ReplaceAll(status, "_", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
