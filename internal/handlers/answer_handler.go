package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"listening-service/internal/service"
)

type AnswerHandler struct {
	Service *service.AnswerService
}

func NewAnswerHandler(s *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{Service: s}
}

type submitAnswerRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	UserAnswer string `json:"user_answer" binding:"required"`
}

func (h *AnswerHandler) SubmitAnswer(c *gin.Context) {
	var req submitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}

	userID := c.GetHeader("X-User-ID")
	result, err := h.Service.SubmitAnswer(context.Background(), userID, req.QuestionID, req.UserAnswer)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}

type logLearningRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	UserAnswer string `json:"user_answer"`
	Score      int    `json:"score"`
}

func (h *AnswerHandler) LogLearning(c *gin.Context) {
	var req logLearningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}

	userID := c.GetHeader("X-User-ID")
	if err := h.Service.LogLearning(context.Background(), userID, req.QuestionID, req.UserAnswer, req.Score); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log learning"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
