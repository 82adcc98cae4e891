package handler

import (
	"net/http"

	"letterbox/internal/http-api/dto"
	"letterbox/internal/http-api/service"
	"letterbox/internal/supabase"

	"github.com/gin-gonic/gin"
)

type ListHandler struct {
	listService service.ListService
}

func NewListHandler(listService service.ListService) *ListHandler {
	return &ListHandler{
		listService: listService,
	}
}

// RegisterRoutes registers custom list routes; the group is already
// behind authentication.
func (h *ListHandler) RegisterRoutes(router *gin.RouterGroup) {
	lists := router.Group("/lists")
	{
		lists.POST("", h.Create)
		lists.GET("/me", h.ListMine)
	}
}

// Create makes a new custom list
// POST /movies/lists
func (h *ListHandler) Create(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.CreateListDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	access := supabase.WithToken(c.GetString("token"))
	list, err := h.listService.Create(c.Request.Context(), access, userID.(string), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, list)
}

// ListMine returns the caller's custom lists
// GET /movies/lists/me
func (h *ListHandler) ListMine(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	access := supabase.WithToken(c.GetString("token"))
	lists, err := h.listService.ListMine(c.Request.Context(), access, userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, lists)
}
