package dto

import "letterbox/internal/tmdb"

// MovieResponse is the stable internal movie representation. The duplicate
// id/tmdb_id pair is kept for frontend compatibility.
type MovieResponse struct {
	ID           int64        `json:"id"`
	TmdbID       int64        `json:"tmdb_id"`
	Title        string       `json:"title"`
	Overview     *string      `json:"overview,omitempty"`
	PosterPath   *string      `json:"poster_path,omitempty"`
	BackdropPath *string      `json:"backdrop_path,omitempty"`
	ReleaseDate  *string      `json:"release_date,omitempty"`
	VoteAverage  *float64     `json:"vote_average,omitempty"`
	Genres       []tmdb.Genre `json:"genres"`
}

// FromTMDBMovie reshapes a raw TMDB record into the API representation.
func FromTMDBMovie(movie *tmdb.Movie) MovieResponse {
	genres := movie.Genres
	if genres == nil {
		genres = []tmdb.Genre{}
	}
	return MovieResponse{
		ID:           movie.ID,
		TmdbID:       movie.ID,
		Title:        movie.Title,
		Overview:     movie.Overview,
		PosterPath:   movie.PosterPath,
		BackdropPath: movie.BackdropPath,
		ReleaseDate:  movie.ReleaseDate,
		VoteAverage:  movie.VoteAverage,
		Genres:       genres,
	}
}

// MovieListResponse is the paginated listing envelope.
type MovieListResponse struct {
	Movies       []MovieResponse `json:"movies"`
	Page         int             `json:"page"`
	TotalPages   int             `json:"total_pages"`
	TotalResults int             `json:"total_results"`
}

// FromTMDBList reshapes a TMDB page into the listing envelope.
func FromTMDBList(list *tmdb.MovieListResponse) *MovieListResponse {
	movies := make([]MovieResponse, 0, len(list.Results))
	for i := range list.Results {
		movies = append(movies, FromTMDBMovie(&list.Results[i]))
	}
	return &MovieListResponse{
		Movies:       movies,
		Page:         list.Page,
		TotalPages:   list.TotalPages,
		TotalResults: list.TotalResults,
	}
}

type TrailerResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type ProviderResponse struct {
	ProviderID   int64   `json:"provider_id"`
	ProviderName string  `json:"provider_name"`
	LogoPath     *string `json:"logo_path,omitempty"`
}

type ProvidersResponse struct {
	Link         *string            `json:"link"`
	Subscription []ProviderResponse `json:"subscription"`
	Rent         []ProviderResponse `json:"rent"`
	Buy          []ProviderResponse `json:"buy"`
}

// PersonalListsResponse is the caller's own state for a movie. The zero
// value is the anonymous default: not rated, no watchlist status.
type PersonalListsResponse struct {
	Rated           bool     `json:"rated"`
	Rating          *float64 `json:"rating"`
	WatchlistStatus *string  `json:"watchlist_status"`
}

type MovieDetailsResponse struct {
	Movie         MovieResponse         `json:"movie"`
	Trailer       *TrailerResponse      `json:"trailer"`
	Providers     ProvidersResponse     `json:"providers"`
	PersonalLists PersonalListsResponse `json:"personal_lists"`
}
