package handler

import (
	"errors"
	"net/http"
	"strconv"

	"letterbox/internal/http-api/dto"
	"letterbox/internal/http-api/repository"
	"letterbox/internal/http-api/service"
	"letterbox/internal/supabase"

	"github.com/gin-gonic/gin"
)

type WatchlistHandler struct {
	watchlistService service.WatchlistService
}

func NewWatchlistHandler(watchlistService service.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistService: watchlistService,
	}
}

// RegisterRoutes registers watchlist routes; the group is already behind
// authentication.
func (h *WatchlistHandler) RegisterRoutes(router *gin.RouterGroup) {
	watchlist := router.Group("/watchlist")
	{
		watchlist.POST("", h.AddOrMove)
		watchlist.GET("/me", h.ListMine)
		watchlist.DELETE("/:tmdb_id", h.Remove)
	}
}

// AddOrMove puts a movie on the watchlist or changes its status
// POST /movies/watchlist
func (h *WatchlistHandler) AddOrMove(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.AddToWatchlistDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	access := supabase.WithToken(c.GetString("token"))
	entry, err := h.watchlistService.Upsert(c.Request.Context(), access, userID.(string), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ListMine returns the caller's watchlist
// GET /movies/watchlist/me
func (h *WatchlistHandler) ListMine(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	access := supabase.WithToken(c.GetString("token"))
	entries, err := h.watchlistService.ListMine(c.Request.Context(), access, userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// Remove takes a movie off the watchlist
// DELETE /movies/watchlist/:tmdb_id
func (h *WatchlistHandler) Remove(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	tmdbID, err := strconv.ParseInt(c.Param("tmdb_id"), 10, 64)
	if err != nil || tmdbID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	access := supabase.WithToken(c.GetString("token"))
	if err := h.watchlistService.Remove(c.Request.Context(), access, userID.(string), tmdbID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "watchlist entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Watchlist entry removed"})
}
