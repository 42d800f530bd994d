package service

import (
	"context"
	"fmt"
	"time"

	"listening-service/internal/models"
)

const answerHistoryLimit = 20

// QuestionFinder is the single-question lookup the review service needs.
type QuestionFinder interface {
	FindByID(ctx context.Context, id string) (*models.Question, error)
}

// ReviewLogStore is the slice of the learning log repository the review
// service reads and writes.
type ReviewLogStore interface {
	Create(ctx context.Context, log *models.LearningLog) error
	FindRecentByUser(ctx context.Context, userID string, limit int64) ([]models.LearningLog, error)
}

type ReviewService struct {
	Logs      ReviewLogStore
	Questions QuestionFinder
}

func NewReviewService(logs ReviewLogStore, questions QuestionFinder) *ReviewService {
	return &ReviewService{Logs: logs, Questions: questions}
}

// StartReview opens a review session on a question by recording an
// incomplete log entry. The returned ID identifies the session; the entry is
// completed by SaveReviewResult.
func (s *ReviewService) StartReview(ctx context.Context, userID, questionID string) (string, error) {
	question, err := s.Questions.FindByID(ctx, questionID)
	if err != nil {
		return "", fmt.Errorf("question %s not found: %w", questionID, err)
	}

	now := time.Now()
	entry := &models.LearningLog{
		UserID:           userID,
		ContentID:        questionID,
		QuestionID:       questionID,
		Category:         question.Category,
		Difficulty:       question.Difficulty(),
		CompletionStatus: false,
		TimeSpent:        0,
		IsReview:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.Logs.Create(ctx, entry); err != nil {
		return "", fmt.Errorf("failed to start review: %w", err)
	}
	return entry.ID, nil
}

// SaveReviewResult records the outcome of a review session as a completed
// review log with the time spent. The 0/1 score follows isCorrect.
func (s *ReviewService) SaveReviewResult(ctx context.Context, userID, questionID, userAnswer string, isCorrect bool, timeSpent float64) (string, error) {
	score := 0
	if isCorrect {
		score = 1
	}

	var category, difficulty string
	if question, err := s.Questions.FindByID(ctx, questionID); err == nil {
		category = question.Category
		difficulty = question.Difficulty()
	}

	now := time.Now()
	entry := &models.LearningLog{
		UserID:           userID,
		ContentID:        questionID,
		QuestionID:       questionID,
		Category:         category,
		Difficulty:       difficulty,
		UserAnswer:       userAnswer,
		Score:            score,
		TimeSpent:        timeSpent,
		CompletionStatus: true,
		IsReview:         true,
		ReviewCount:      1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.Logs.Create(ctx, entry); err != nil {
		return "", fmt.Errorf("failed to save review result: %w", err)
	}
	return entry.ID, nil
}

// GetAnswerHistory returns the user's last completed answers joined with
// their questions, newest first.
func (s *ReviewService) GetAnswerHistory(ctx context.Context, userID string) ([]models.AnswerHistoryEntry, error) {
	logs, err := s.Logs.FindRecentByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	history := make([]models.AnswerHistoryEntry, 0)
	for _, l := range logs {
		if len(history) >= answerHistoryLimit {
			break
		}
		if !l.CompletionStatus || l.UserAnswer == "" || l.QuestionID == "" {
			continue
		}
		question, err := s.Questions.FindByID(ctx, l.QuestionID)
		if err != nil {
			continue
		}
		entry := models.AnswerHistoryEntry{
			ID:            l.ID,
			QuestionText:  question.QuestionText,
			UserAnswer:    l.UserAnswer,
			CorrectAnswer: question.CorrectAnswer,
			IsCorrect:     gradeAnswer(l.UserAnswer, question.CorrectAnswer),
			Score:         l.Score,
		}
		if !l.CreatedAt.IsZero() {
			entry.AnswerDate = l.CreatedAt.Format(time.RFC3339)
		}
		history = append(history, entry)
	}
	return history, nil
}

// GetWrongQuestions groups a user's incorrect attempts (score 0) by question,
// newest first, with the number of times each was missed.
func (s *ReviewService) GetWrongQuestions(ctx context.Context, userID string) ([]models.WrongQuestion, error) {
	logs, err := s.Logs.FindRecentByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	byQuestion := make(map[string]*models.WrongQuestion)
	order := make([]string, 0)

	for _, l := range logs {
		if l.Score != 0 || l.QuestionID == "" || !l.CompletionStatus {
			continue
		}
		if wq, ok := byQuestion[l.QuestionID]; ok {
			wq.WrongCount++
			continue
		}
		question, err := s.Questions.FindByID(ctx, l.QuestionID)
		if err != nil {
			// Question was removed; its logs no longer matter for review.
			continue
		}
		entry := &models.WrongQuestion{
			QuestionID:   question.ID,
			QuestionText: question.QuestionText,
			AudioURL:     question.AudioURL,
			WrongCount:   1,
			LastScore:    l.Score,
		}
		if !l.CreatedAt.IsZero() {
			entry.WrongDate = l.CreatedAt.Format(time.RFC3339)
		}
		byQuestion[l.QuestionID] = entry
		order = append(order, l.QuestionID)
	}

	result := make([]models.WrongQuestion, 0, len(order))
	for _, id := range order {
		result = append(result, *byQuestion[id])
	}
	return result, nil
}
