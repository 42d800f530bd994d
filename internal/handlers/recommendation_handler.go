package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"listening-service/internal/service"
)

type RecommendationHandler struct {
	Service *service.RecommendationService
}

func NewRecommendationHandler(s *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{Service: s}
}

// GetRecommendations serves the ranked question list for the calling user.
// A catalog failure is reported as a whole-request failure rather than a
// partial list.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	recommendations, err := h.Service.GetRecommendedQuestions(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get recommendations"})
		return
	}
	c.JSON(http.StatusOK, recommendations)
}

// GetProfile exposes the derived learning profile.
func (h *RecommendationHandler) GetProfile(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	profile := h.Service.AnalyzeUserProfile(context.Background(), userID)
	c.JSON(http.StatusOK, profile)
}
