package dto

// SummaryMovie is the slim movie slice shown on profile shelves.
type SummaryMovie struct {
	Title      string  `json:"title"`
	PosterPath *string `json:"poster_path,omitempty"`
}

// SummaryItem is one rating on the recent or top-rated shelf. Movie is nil
// when the per-id catalog lookup failed.
type SummaryItem struct {
	TmdbID    int64         `json:"tmdb_id"`
	Rating    float64       `json:"rating"`
	CreatedAt string        `json:"created_at,omitempty"`
	UpdatedAt string        `json:"updated_at,omitempty"`
	Movie     *SummaryMovie `json:"movie,omitempty"`
}

type SummaryStats struct {
	RatingsCount   int     `json:"ratings_count"`
	AverageRating  float64 `json:"average_rating"`
	WatchlistCount int     `json:"watchlist_count"`
}

// WatchlistBucket counts the entries carrying one status.
type WatchlistBucket struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

type ProfileSummaryResponse struct {
	Recent           []SummaryItem     `json:"recent"`
	TopRated         []SummaryItem     `json:"top_rated"`
	Stats            SummaryStats      `json:"stats"`
	WatchlistSummary []WatchlistBucket `json:"watchlist_summary"`
}
