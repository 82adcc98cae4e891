package handler

import (
	"errors"
	"net/http"

	"letterbox/internal/http-api/dto"
	"letterbox/internal/http-api/service"
	"letterbox/internal/supabase"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// RegisterRoutes registers profile routes; the group is already behind
// authentication.
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/me", h.GetMine)
	router.PUT("/me", h.UpdateMine)
}

// GetMine returns the caller's profile, provisioning it if missing
// GET /profile/me
func (h *ProfileHandler) GetMine(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	access := supabase.WithToken(c.GetString("token"))
	profile, err := h.profileService.GetOrCreate(c.Request.Context(), access, userID.(string))
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateMine applies a partial update to the caller's profile
// PUT /profile/me
func (h *ProfileHandler) UpdateMine(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	access := supabase.WithToken(c.GetString("token"))
	profile, err := h.profileService.Update(c.Request.Context(), access, userID.(string), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}
