package dto

import "letterbox/internal/http-api/models"

// CreateRatingDTO creates or updates the caller's rating for a movie.
// Rating is a pointer so an explicit 0.0 survives the required check.
type CreateRatingDTO struct {
	TmdbID int64    `json:"tmdb_id" binding:"required,gt=0"`
	Rating *float64 `json:"rating" binding:"required,gte=0,lte=10"`
	Review *string  `json:"review" binding:"omitempty,max=500"`
}

type RatingResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	TmdbID    int64   `json:"tmdb_id"`
	Rating    float64 `json:"rating"`
	Review    *string `json:"review,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

// FromModelToRatingResponse converts a Rating model to its response DTO
func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		ID:        rating.ID,
		UserID:    rating.UserID,
		TmdbID:    rating.TmdbID,
		Rating:    rating.Rating,
		Review:    rating.Review,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}

type RatingsListResponse struct {
	Ratings []RatingResponse `json:"ratings"`
}

// RatedMovieResponse is a rating joined with its movie metadata. Movie is
// nil when the per-id catalog lookup failed; the rest of the list still
// succeeds.
type RatedMovieResponse struct {
	RatingResponse
	Movie *MovieResponse `json:"movie,omitempty"`
}

type RatedMoviesListResponse struct {
	Ratings []RatedMovieResponse `json:"ratings"`
}
