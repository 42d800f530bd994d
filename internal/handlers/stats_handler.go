package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"listening-service/internal/service"
)

type StatsHandler struct {
	Stats  *service.StatsService
	Review *service.ReviewService
}

func NewStatsHandler(stats *service.StatsService, review *service.ReviewService) *StatsHandler {
	return &StatsHandler{Stats: stats, Review: review}
}

func (h *StatsHandler) GetUserStats(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	stats, err := h.Stats.GetUserStats(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) GetLearningHistory(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)
	history, err := h.Stats.GetLearningHistory(context.Background(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get history"})
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *StatsHandler) GetWrongQuestions(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	questions, err := h.Review.GetWrongQuestions(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get wrong questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

type startReviewRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
}

func (h *StatsHandler) StartReview(c *gin.Context) {
	var req startReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}

	userID := c.GetHeader("X-User-ID")
	reviewID, err := h.Review.StartReview(context.Background(), userID, req.QuestionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "review_id": reviewID})
}

type saveReviewResultRequest struct {
	QuestionID string  `json:"question_id" binding:"required"`
	UserAnswer string  `json:"user_answer" binding:"required"`
	IsCorrect  bool    `json:"is_correct"`
	TimeSpent  float64 `json:"time_spent"`
}

func (h *StatsHandler) SaveReviewResult(c *gin.Context) {
	var req saveReviewResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}

	userID := c.GetHeader("X-User-ID")
	reviewID, err := h.Review.SaveReviewResult(context.Background(), userID, req.QuestionID, req.UserAnswer, req.IsCorrect, req.TimeSpent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review result"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "review_id": reviewID})
}

func (h *StatsHandler) GetAnswerHistory(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	history, err := h.Review.GetAnswerHistory(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get answer history"})
		return
	}
	c.JSON(http.StatusOK, history)
}
