package service

import (
	"context"

	"letterbox/internal/http-api/models"
	"letterbox/internal/supabase"
	"letterbox/internal/tmdb"

	"github.com/stretchr/testify/mock"
)

// --- MOCK REPOSITORIES ---

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Upsert(ctx context.Context, access supabase.Access, rating *models.Rating) (*models.Rating, error) {
	args := m.Called(ctx, access, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) ListByUser(ctx context.Context, access supabase.Access, userID string) ([]models.Rating, error) {
	args := m.Called(ctx, access, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetByUserAndMovie(ctx context.Context, access supabase.Access, userID string, tmdbID int64) (*models.Rating, error) {
	args := m.Called(ctx, access, userID, tmdbID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

type MockWatchlistRepository struct {
	mock.Mock
}

func (m *MockWatchlistRepository) Upsert(ctx context.Context, access supabase.Access, entry *models.WatchlistEntry) (*models.WatchlistEntry, error) {
	args := m.Called(ctx, access, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WatchlistEntry), args.Error(1)
}

func (m *MockWatchlistRepository) Delete(ctx context.Context, access supabase.Access, userID string, tmdbID int64) error {
	args := m.Called(ctx, access, userID, tmdbID)
	return args.Error(0)
}

func (m *MockWatchlistRepository) ListByUser(ctx context.Context, access supabase.Access, userID string) ([]models.WatchlistEntry, error) {
	args := m.Called(ctx, access, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WatchlistEntry), args.Error(1)
}

func (m *MockWatchlistRepository) GetByUserAndMovie(ctx context.Context, access supabase.Access, userID string, tmdbID int64) (*models.WatchlistEntry, error) {
	args := m.Called(ctx, access, userID, tmdbID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WatchlistEntry), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByUser(ctx context.Context, access supabase.Access, userID string) (*models.Profile, error) {
	args := m.Called(ctx, access, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) CreateEmpty(ctx context.Context, userID string) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, access supabase.Access, userID string, fields map[string]interface{}) (*models.Profile, error) {
	args := m.Called(ctx, access, userID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) Create(ctx context.Context, access supabase.Access, list *models.CustomList) (*models.CustomList, error) {
	args := m.Called(ctx, access, list)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CustomList), args.Error(1)
}

func (m *MockListRepository) ListByUser(ctx context.Context, access supabase.Access, userID string) ([]models.CustomList, error) {
	args := m.Called(ctx, access, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CustomList), args.Error(1)
}

// --- MOCK OUTBOUND CLIENTS ---

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetPopularMovies(ctx context.Context, page int) (*tmdb.MovieListResponse, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tmdb.MovieListResponse), args.Error(1)
}

func (m *MockCatalog) SearchMovies(ctx context.Context, query string, page int) (*tmdb.MovieListResponse, error) {
	args := m.Called(ctx, query, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tmdb.MovieListResponse), args.Error(1)
}

func (m *MockCatalog) GetMovieDetails(ctx context.Context, movieID int64) (*tmdb.Movie, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tmdb.Movie), args.Error(1)
}

func (m *MockCatalog) GetMovieVideos(ctx context.Context, movieID int64) (*tmdb.VideoListResponse, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tmdb.VideoListResponse), args.Error(1)
}

func (m *MockCatalog) GetWatchProviders(ctx context.Context, movieID int64) (*tmdb.WatchProvidersResponse, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tmdb.WatchProvidersResponse), args.Error(1)
}

type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) SignUp(ctx context.Context, email, password string) (*supabase.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supabase.User), args.Error(1)
}

func (m *MockAuthAPI) SignInWithPassword(ctx context.Context, email, password string) (*supabase.Session, *supabase.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*supabase.Session), args.Get(1).(*supabase.User), args.Error(2)
}

func (m *MockAuthAPI) GetUser(ctx context.Context, token string) (*supabase.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supabase.User), args.Error(1)
}
