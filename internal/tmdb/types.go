package tmdb

// Genre is a TMDB genre tag as returned on a movie detail.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Movie is the raw TMDB movie record. List results carry genre ids only;
// details carry full genre objects.
type Movie struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Overview     *string  `json:"overview"`
	PosterPath   *string  `json:"poster_path"`
	BackdropPath *string  `json:"backdrop_path"`
	ReleaseDate  *string  `json:"release_date"`
	VoteAverage  *float64 `json:"vote_average"`
	Genres       []Genre  `json:"genres"`
}

// MovieListResponse is the paginated envelope for popular and search calls.
type MovieListResponse struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Video is one entry of a movie's video list (trailers, teasers, clips).
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

type VideoListResponse struct {
	ID      int64   `json:"id"`
	Results []Video `json:"results"`
}

// Provider is a single watch provider (streaming service, store).
type Provider struct {
	ProviderID   int64   `json:"provider_id"`
	ProviderName string  `json:"provider_name"`
	LogoPath     *string `json:"logo_path"`
}

// RegionProviders groups a region's availability by monetization model.
// Flatrate is TMDB's name for subscription availability.
type RegionProviders struct {
	Link     string     `json:"link"`
	Flatrate []Provider `json:"flatrate"`
	Rent     []Provider `json:"rent"`
	Buy      []Provider `json:"buy"`
}

type WatchProvidersResponse struct {
	ID      int64                      `json:"id"`
	Results map[string]RegionProviders `json:"results"`
}
