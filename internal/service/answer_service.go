package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"listening-service/internal/models"
	"listening-service/internal/repository"
)

type AnswerService struct {
	QuestionRepo *repository.QuestionRepository
	LogRepo      *repository.LearningLogRepository
}

func NewAnswerService(
	questionRepo *repository.QuestionRepository,
	logRepo *repository.LearningLogRepository,
) *AnswerService {
	return &AnswerService{QuestionRepo: questionRepo, LogRepo: logRepo}
}

// SubmitAnswer grades a submitted answer against the question's correct
// answer and records a learning log with the 0/1 score. Category and
// difficulty are copied onto the log so later profile analysis needs no join.
func (s *AnswerService) SubmitAnswer(ctx context.Context, userID, questionID, userAnswer string) (*models.AnswerResult, error) {
	question, err := s.QuestionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("question %s not found: %w", questionID, err)
	}

	isCorrect := gradeAnswer(userAnswer, question.CorrectAnswer)
	score := 0
	if isCorrect {
		score = 1
	}

	now := time.Now()
	entry := &models.LearningLog{
		UserID:           userID,
		ContentID:        questionID,
		QuestionID:       questionID,
		Category:         question.Category,
		Difficulty:       question.Difficulty(),
		UserAnswer:       userAnswer,
		Score:            score,
		CompletionStatus: true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.LogRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to log answer: %w", err)
	}

	return &models.AnswerResult{
		IsCorrect:     isCorrect,
		Score:         score,
		UserAnswer:    userAnswer,
		CorrectAnswer: question.CorrectAnswer,
		Explanation:   fmt.Sprintf("正解は「%s」です。", question.CorrectAnswer),
	}, nil
}

// LogLearning records a raw learning log entry, normalizing the score to 0/1.
func (s *AnswerService) LogLearning(ctx context.Context, userID, questionID, userAnswer string, score int) error {
	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}

	var category, difficulty string
	if question, err := s.QuestionRepo.FindByID(ctx, questionID); err == nil {
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
		CompletionStatus: true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.LogRepo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to record learning log: %w", err)
	}
	return nil
}

// gradeAnswer compares the user's answer with the correct one, ignoring
// surrounding whitespace and letter case.
func gradeAnswer(userAnswer, correctAnswer string) bool {
	return strings.EqualFold(strings.TrimSpace(userAnswer), strings.TrimSpace(correctAnswer))
}
