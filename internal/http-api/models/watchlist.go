package models

// Watchlist statuses known to the API. Rows written through this server
// always carry one of these; rows written by other clients may not, and
// readers must tolerate that.
const (
	StatusToWatch   = "to_watch"
	StatusWatching  = "watching"
	StatusCompleted = "completed"
	StatusOnHold    = "on_hold"
	StatusDropped   = "dropped"
)

// KnownStatuses lists the recognized statuses in display order.
var KnownStatuses = []string{
	StatusToWatch,
	StatusWatching,
	StatusCompleted,
	StatusOnHold,
	StatusDropped,
}

// IsKnownStatus reports whether s is one of the recognized statuses.
func IsKnownStatus(s string) bool {
	for _, known := range KnownStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// WatchlistEntry tags a movie with a user's viewing intent. One row per
// (user_id, tmdb_id); changing intent merges into the existing row.
type WatchlistEntry struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	TmdbID  int64  `json:"tmdb_id"`
	Status  string `json:"status"`
	AddedAt string `json:"added_at"`
}
