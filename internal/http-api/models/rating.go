package models

// Rating is one user's score for a movie. Exactly one row exists per
// (user_id, tmdb_id); re-rating merges into the existing row. Timestamps
// are kept as the store's RFC 3339 strings and only parsed where ordering
// matters.
type Rating struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	TmdbID    int64   `json:"tmdb_id"`
	Rating    float64 `json:"rating"`
	Review    *string `json:"review,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}
