package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"letterbox/internal/http-api/service"
	"letterbox/internal/supabase"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	movieService service.MovieService
}

func NewMovieHandler(movieService service.MovieService) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
	}
}

// RegisterRoutes registers the public catalog endpoints. The detail route
// is attached by the caller with optional authentication so the personal
// block can be filled in.
func (h *MovieHandler) RegisterRoutes(public *gin.RouterGroup, optional *gin.RouterGroup) {
	public.GET("", h.Popular)
	public.GET("/search", h.Search)
	optional.GET("/:tmdb_id/details", h.Details)
}

// Popular returns one page of the popular listing
// GET /movies?page=1
func (h *MovieHandler) Popular(c *gin.Context) {
	page := parsePage(c)

	response, err := h.movieService.Popular(c.Request.Context(), page)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Search searches movies by title
// GET /movies/search?query=...&page=1
func (h *MovieHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}
	page := parsePage(c)

	response, err := h.movieService.Search(c.Request.Context(), query, page)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Details returns the full detail view for one movie
// GET /movies/:tmdb_id/details?region=US
func (h *MovieHandler) Details(c *gin.Context) {
	tmdbID, err := strconv.ParseInt(c.Param("tmdb_id"), 10, 64)
	if err != nil || tmdbID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	region := c.DefaultQuery("region", "US")

	// Optional auth: absent user means the personal block stays at its
	// anonymous defaults.
	var user *supabase.User
	var token string
	if userValue, exists := c.Get("user"); exists {
		user = userValue.(*supabase.User)
		token = c.GetString("token")
	}

	response, err := h.movieService.Details(c.Request.Context(), tmdbID, region, user, token)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

func parsePage(c *gin.Context) int {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	return page
}
