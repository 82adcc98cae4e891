package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"letterbox/internal/http-api/models"
	"letterbox/internal/tmdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func stringPtr(s string) *string { return &s }

func rating(tmdbID int64, score float64, createdAt, updatedAt string) models.Rating {
	return models.Rating{
		UserID:    "user-1",
		TmdbID:    tmdbID,
		Rating:    score,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

func newSummaryFixture() (*MockRatingRepository, *MockWatchlistRepository, *MockCatalog, SummaryService) {
	ratingRepo := new(MockRatingRepository)
	watchlistRepo := new(MockWatchlistRepository)
	catalog := new(MockCatalog)
	svc := NewSummaryService(ratingRepo, watchlistRepo, catalog, false, testLogger())
	return ratingRepo, watchlistRepo, catalog, svc
}

func TestSummarize_AverageRating(t *testing.T) {
	ratingRepo, watchlistRepo, catalog, svc := newSummaryFixture()

	ratingRepo.On("ListByUser", mock.Anything, mock.Anything, "user-1").Return([]models.Rating{
		rating(1, 2.0, "2024-01-01T00:00:00Z", ""),
		rating(2, 4.0, "2024-01-02T00:00:00Z", ""),
		rating(3, 6.0, "2024-01-03T00:00:00Z", ""),
	}, nil)
	watchlistRepo.On("ListByUser", mock.Anything, mock.Anything, "user-1").Return([]models.WatchlistEntry{}, nil)
	catalog.On("GetMovieDetails", mock.Anything, mock.Anything).Return(nil, errors.New("down"))

	summary, err := svc.Summarize(context.Background(), "token", "user-1")

	assert.NoError(t, err)
	assert.Equal(t, 3, summary.Stats.RatingsCount)
	assert.Equal(t, 4.0, summary.Stats.AverageRating)
	assert.Equal(t, 0, summary.Stats.WatchlistCount)
}

func TestSummarize_NoRatings(t *testing.T) {
	ratingRepo, watchlistRepo, _, svc := newSummaryFixture()

	ratingRepo.On("ListByUser", mock.Anything, mock.Anything, "user-1").Return([]models.Rating{}, nil)
	watchlistRepo.On("ListByUser", mock.Anything, mock.Anything, "user-1").Return([]models.WatchlistEntry{}, nil)

	summary, err := svc.Summarize(context.Background(), "token", "user-1")

	assert.NoError(t, err)
	assert.Equal(t, 0.0, summary.Stats.AverageRating)
	assert.Empty(t, summary.Recent)
	assert.Empty(t, summary.TopRated)
}

func TestSummarize_AverageRounding(t *testing.T) {
	ratingRepo, watchlistRepo, catalog, svc := newSummaryFixture()

	ratingRepo.On("ListByUser", mock.Anything, mock.Anything, "user-1").Return([]models.Rating{
		rating(1, 7.0, "2024-01-01T00:00:00Z", ""),
		rating(2, 8.0, "2024-01-02T00:00:00Z", ""),
		rating(3, 8.0, "2024-01-03T00:00:00Z", ""),
	}, nil)
	watchlistRepo.On("ListByUser", mock.Anything, mock.Anything, "user-1").Return([]models.WatchlistEntry{}, nil)
	catalog.On("GetMovieDetails", mock.Anything, mock.Anything).Return(nil, errors.New("down"))

	summary, err := svc.Summarize(context.Background(), "token", "user-1")

	assert.NoError(t, err)
	// 23/3 = 7.666... rounds to 7.67
	assert.Equal(t, 7.67, summary.Stats.AverageRating)
}

func TestSummarize_RecentOrderAndTruncation(t *testing.T) {
	ratingRepo, watchlistRepo, catalog, svc := newSummaryFixture()

	var ratings []models.Rating
	for i := 1; i <= 12; i++ {
		ratings = append(ratings, rating(int64(i), 5.0,
			"2024-01-01T00:00:00Z",
			// later days are more recent
			fmt.Sprintf("2024-02-%02dT00:00:00Z", i)))
	}
	ratingRepo.On("ListByUser", mock.Anything, mock.Anything, "user-1").Return(ratings, nil)
	watchlistRepo.On("ListByUser", mock.Anything, mock.Anything, "user-1").Return([]models.WatchlistEntry{}, nil)
	catalog.On("GetMovieDetails", mock.Anything, mock.Anything).Return(nil, errors.New("down"))

	summary, err := svc.Summarize(context.Background(), "token", "user-1")

	assert.NoError(t, err)
	assert.Len(t, summary.Recent, 10)
	assert.Len(t, summary.TopRated, 10)
	assert.Equal(t, int64(12), summary.Recent[0].TmdbID)
	assert.Equal(t, int64(3), summary.Recent[9].TmdbID)
}

func TestSummarize_UpdatedAtBeatsCreatedAt(t *testing.T) {
	ratingRepo, watchlistRepo, catalog, svc := newSummaryFixture()

	ratingRepo.On("ListByUser", mock.Anything, mock.Anything, "user-1").Return([]models.Rating{
		// created first but touched last
		rating(1, 5.0, "2024-01-01T00:00:00Z", "2024-03-01T00:00:00Z"),
		rating(2, 5.0, "2024-02-01T00:00:00Z", ""),
	}, nil)
	watchlistRepo.On("ListByUser", mock.Anything, mock.Anything, "user-1").Return([]models.WatchlistEntry{}, nil)
	catalog.On("GetMovieDetails", mock.Anything, mock.Anything).Return(nil, errors.New("down"))

	summary, err := svc.Summarize(context.Background(), "token", "user-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), summary.Recent[0].TmdbID)
}

func TestSummarize_UnparsableTimestampSortsLast(t *testing.T) {
	ratingRepo, watchlistRepo, catalog, svc := newSummaryFixture()

	ratingRepo.On("ListByUser", mock.Anything, mock.Anything, "user-1").Return([]models.Rating{
		rating(1, 5.0, "garbage", "also-garbage"),
		rating(2, 5.0, "2024-01-01T00:00:00Z", ""),
	}, nil)
	watchlistRepo.On("ListByUser", mock.Anything, mock.Anything, "user-1").Return([]models.WatchlistEntry{}, nil)
	catalog.On("GetMovieDetails", mock.Anything, mock.Anything).Return(nil, errors.New("down"))

	summary, err := svc.Summarize(context.Background(), "token", "user-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(2), summary.Recent[0].TmdbID)
	assert.Equal(t, int64(1), summary.Recent[1].TmdbID)
}

func TestSummarize_TopRatedOrder(t *testing.T) {
	ratingRepo, watchlistRepo, catalog, svc := newSummaryFixture()

	ratingRepo.On("ListByUser", mock.Anything, mock.Anything, "user-1").Return([]models.Rating{
		rating(1, 6.0, "2024-01-01T00:00:00Z", ""),
		rating(2, 9.0, "2024-01-02T00:00:00Z", ""),
		// same score as movie 2 but touched later, wins the tie
		rating(3, 9.0, "2024-01-03T00:00:00Z", ""),
	}, nil)
	watchlistRepo.On("ListByUser", mock.Anything, mock.Anything, "user-1").Return([]models.WatchlistEntry{}, nil)
	catalog.On("GetMovieDetails", mock.Anything, mock.Anything).Return(nil, errors.New("down"))

	summary, err := svc.Summarize(context.Background(), "token", "user-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), summary.TopRated[0].TmdbID)
	assert.Equal(t, int64(2), summary.TopRated[1].TmdbID)
	assert.Equal(t, int64(1), summary.TopRated[2].TmdbID)
}

func TestSummarize_MovieLookupFailureLeavesEntry(t *testing.T) {
	ratingRepo, watchlistRepo, catalog, svc := newSummaryFixture()

	ratingRepo.On("ListByUser", mock.Anything, mock.Anything, "user-1").Return([]models.Rating{
		rating(1, 8.0, "2024-01-01T00:00:00Z", ""),
		rating(2, 7.0, "2024-01-02T00:00:00Z", ""),
	}, nil)
	watchlistRepo.On("ListByUser", mock.Anything, mock.Anything, "user-1").Return([]models.WatchlistEntry{}, nil)
	catalog.On("GetMovieDetails", mock.Anything, int64(1)).Return(&tmdb.Movie{
		ID:         1,
		Title:      "Known Movie",
		PosterPath: stringPtr("/poster.jpg"),
	}, nil)
	catalog.On("GetMovieDetails", mock.Anything, int64(2)).Return(nil, errors.New("tmdb down"))

	summary, err := svc.Summarize(context.Background(), "token", "user-1")

	assert.NoError(t, err)
	assert.Len(t, summary.Recent, 2)
	assert.Equal(t, "Known Movie", summary.TopRated[0].Movie.Title)
	assert.Nil(t, summary.Recent[0].Movie) // movie 2 lookup failed
	// each id resolved once even though it appears on both shelves
	catalog.AssertNumberOfCalls(t, "GetMovieDetails", 2)
}

func TestSummarize_WatchlistBuckets(t *testing.T) {
	ratingRepo, watchlistRepo, _, svc := newSummaryFixture()

	ratingRepo.On("ListByUser", mock.Anything, mock.Anything, "user-1").Return([]models.Rating{}, nil)
	watchlistRepo.On("ListByUser", mock.Anything, mock.Anything, "user-1").Return([]models.WatchlistEntry{
		{UserID: "user-1", TmdbID: 1, Status: models.StatusCompleted},
		{UserID: "user-1", TmdbID: 2, Status: models.StatusCompleted},
		{UserID: "user-1", TmdbID: 3, Status: models.StatusToWatch},
		{UserID: "user-1", TmdbID: 4, Status: "binge_later"},
		{UserID: "user-1", TmdbID: 5, Status: "binge_later"},
	}, nil)

	summary, err := svc.Summarize(context.Background(), "token", "user-1")

	assert.NoError(t, err)
	assert.Equal(t, 5, summary.Stats.WatchlistCount)
	// five known buckets in canonical order, then the unknown one
	assert.Len(t, summary.WatchlistSummary, 6)
	assert.Equal(t, "to_watch", summary.WatchlistSummary[0].Status)
	assert.Equal(t, "To Watch", summary.WatchlistSummary[0].Label)
	assert.Equal(t, 1, summary.WatchlistSummary[0].Count)
	assert.Equal(t, "completed", summary.WatchlistSummary[2].Status)
	assert.Equal(t, 2, summary.WatchlistSummary[2].Count)
	assert.Equal(t, 0, summary.WatchlistSummary[4].Count) // dropped, empty

	unknown := summary.WatchlistSummary[5]
	assert.Equal(t, "binge_later", unknown.Status)
	assert.Equal(t, "Binge Later", unknown.Label)
	assert.Equal(t, 2, unknown.Count)
}

func TestSummarize_StoreFailure(t *testing.T) {
	ratingRepo, _, _, svc := newSummaryFixture()

	ratingRepo.On("ListByUser", mock.Anything, mock.Anything, "user-1").Return(nil, errors.New("store down"))

	summary, err := svc.Summarize(context.Background(), "token", "user-1")

	assert.Error(t, err)
	assert.Nil(t, summary)
}
