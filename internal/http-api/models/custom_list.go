package models

// Sort modes for custom lists.
const (
	SortManual        = "manual"
	SortRecentlyAdded = "recently_added"
	SortRatingDesc    = "rating_desc"
)

// CustomList is a user-curated named list of movies.
type CustomList struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsPublic    bool    `json:"is_public"`
	SortMode    string  `json:"sort_mode"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
