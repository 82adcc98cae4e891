package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"letterbox/internal/http-api/dto"
	"letterbox/internal/http-api/handler"
	"letterbox/internal/http-api/service"
	"letterbox/internal/supabase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) Popular(ctx context.Context, page int) (*dto.MovieListResponse, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieListResponse), args.Error(1)
}

func (m *MockMovieService) Search(ctx context.Context, query string, page int) (*dto.MovieListResponse, error) {
	args := m.Called(ctx, query, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieListResponse), args.Error(1)
}

func (m *MockMovieService) Details(ctx context.Context, tmdbID int64, region string, user *supabase.User, token string) (*dto.MovieDetailsResponse, error) {
	args := m.Called(ctx, tmdbID, region, user, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieDetailsResponse), args.Error(1)
}

func setupMovieRouter(mockService *MockMovieService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewMovieHandler(mockService)
	h.RegisterRoutes(r.Group("/movies"), r.Group("/movies"))
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPopularEndpoint_DefaultsPage(t *testing.T) {
	mockService := new(MockMovieService)
	r := setupMovieRouter(mockService)

	mockService.On("Popular", mock.Anything, 1).
		Return(&dto.MovieListResponse{Movies: []dto.MovieResponse{}, Page: 1}, nil)

	w := get(r, "/movies?page=junk")

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestSearchEndpoint_MissingQuery(t *testing.T) {
	mockService := new(MockMovieService)
	r := setupMovieRouter(mockService)

	w := get(r, "/movies/search")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Search")
}

func TestDetailsEndpoint_InvalidID(t *testing.T) {
	mockService := new(MockMovieService)
	r := setupMovieRouter(mockService)

	w := get(r, "/movies/abc/details")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Details")
}

func TestDetailsEndpoint_UnknownMovie(t *testing.T) {
	mockService := new(MockMovieService)
	r := setupMovieRouter(mockService)

	mockService.On("Details", mock.Anything, int64(999), "US", (*supabase.User)(nil), "").
		Return(nil, service.ErrMovieNotFound)

	w := get(r, "/movies/999/details")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDetailsEndpoint_UpstreamDown(t *testing.T) {
	mockService := new(MockMovieService)
	r := setupMovieRouter(mockService)

	mockService.On("Details", mock.Anything, int64(603), "US", (*supabase.User)(nil), "").
		Return(nil, service.ErrUpstream)

	w := get(r, "/movies/603/details")

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestDetailsEndpoint_RegionPassedThrough(t *testing.T) {
	mockService := new(MockMovieService)
	r := setupMovieRouter(mockService)

	mockService.On("Details", mock.Anything, int64(603), "fr", (*supabase.User)(nil), "").
		Return(&dto.MovieDetailsResponse{Movie: dto.MovieResponse{ID: 603, TmdbID: 603}}, nil)

	w := get(r, "/movies/603/details?region=fr")

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
