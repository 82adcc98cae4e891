package handler

import (
	"net/http"

	"letterbox/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type SummaryHandler struct {
	summaryService service.SummaryService
}

func NewSummaryHandler(summaryService service.SummaryService) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
	}
}

// RegisterRoutes registers the summary route; the group is already behind
// authentication.
func (h *SummaryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/profile/summary", h.Summary)
}

// Summary returns the caller's profile summary: recent and top-rated
// shelves, stats, and watchlist counts
// GET /movies/profile/summary
func (h *SummaryHandler) Summary(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	summary, err := h.summaryService.Summarize(c.Request.Context(), c.GetString("token"), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
