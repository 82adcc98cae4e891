package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// ErrNotFound marks a TMDB 404: the id does not exist upstream.
var ErrNotFound = errors.New("not found")

const (
	defaultBaseURL = "https://api.themoviedb.org/3"

	// TMDB tolerates ~50 req/s per key; stay well below it
	rateLimit = 20
	rateBurst = 40

	defaultLanguage = "en-US"
)

// Client handles TMDB API requests with client-side rate limiting.
// Calls are not retried: the caller maps failures straight to a 502.
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewClient creates a TMDB API client. baseURL may be empty for the public
// endpoint; timeout zero falls back to 10s.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), rateBurst),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// GetPopularMovies fetches one page of the popular listing.
func (c *Client) GetPopularMovies(ctx context.Context, page int) (*MovieListResponse, error) {
	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", page))

	var response MovieListResponse
	if err := c.doRequest(ctx, "/movie/popular", params, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch popular movies: %w", err)
	}
	return &response, nil
}

// SearchMovies searches movies by title.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*MovieListResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", fmt.Sprintf("%d", page))

	var response MovieListResponse
	if err := c.doRequest(ctx, "/search/movie", params, &response); err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}
	return &response, nil
}

// GetMovieDetails fetches the full record for a single movie.
func (c *Client) GetMovieDetails(ctx context.Context, movieID int64) (*Movie, error) {
	var response Movie
	if err := c.doRequest(ctx, fmt.Sprintf("/movie/%d", movieID), nil, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch movie %d: %w", movieID, err)
	}
	return &response, nil
}

// GetMovieVideos fetches the video list (trailers, teasers) for a movie.
func (c *Client) GetMovieVideos(ctx context.Context, movieID int64) (*VideoListResponse, error) {
	var response VideoListResponse
	if err := c.doRequest(ctx, fmt.Sprintf("/movie/%d/videos", movieID), nil, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch videos for movie %d: %w", movieID, err)
	}
	return &response, nil
}

// GetWatchProviders fetches per-region watch availability for a movie.
func (c *Client) GetWatchProviders(ctx context.Context, movieID int64) (*WatchProvidersResponse, error) {
	var response WatchProvidersResponse
	if err := c.doRequest(ctx, fmt.Sprintf("/movie/%d/watch/providers", movieID), nil, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch providers for movie %d: %w", movieID, err)
	}
	return &response, nil
}

func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	if !params.Has("language") {
		params.Set("language", defaultLanguage)
	}
	fullURL := c.baseURL + endpoint + "?" + params.Encode()

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
