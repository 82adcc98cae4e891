package handler

import (
	"net/http"

	"letterbox/internal/http-api/dto"
	"letterbox/internal/http-api/service"
	"letterbox/internal/supabase"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// RegisterRoutes registers rating routes; the group is already behind
// authentication.
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup) {
	ratings := router.Group("/ratings")
	{
		ratings.POST("", h.CreateOrUpdate)
		ratings.GET("/me", h.ListMine)
		ratings.GET("/me/details", h.ListMineWithMovies)
	}
}

// CreateOrUpdate writes the caller's rating for a movie
// POST /movies/ratings
func (h *RatingHandler) CreateOrUpdate(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.CreateRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	access := supabase.WithToken(c.GetString("token"))
	rating, err := h.ratingService.Upsert(c.Request.Context(), access, userID.(string), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rating)
}

// ListMine returns every rating the caller has written
// GET /movies/ratings/me
func (h *RatingHandler) ListMine(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	access := supabase.WithToken(c.GetString("token"))
	ratings, err := h.ratingService.ListMine(c.Request.Context(), access, userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ratings)
}

// ListMineWithMovies returns the caller's ratings joined with movie
// metadata
// GET /movies/ratings/me/details
func (h *RatingHandler) ListMineWithMovies(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	access := supabase.WithToken(c.GetString("token"))
	ratings, err := h.ratingService.ListMineWithMovies(c.Request.Context(), access, userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ratings)
}
