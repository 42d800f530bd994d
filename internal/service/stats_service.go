package service

import (
	"context"
	"math"
	"time"

	"listening-service/internal/models"
	"listening-service/internal/repository"
)

type StatsService struct {
	LogRepo *repository.LearningLogRepository
}

func NewStatsService(logRepo *repository.LearningLogRepository) *StatsService {
	return &StatsService{LogRepo: logRepo}
}

// GetUserStats computes totals, correct rate, average score and the current
// learning streak for a user.
func (s *StatsService) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	logs, err := s.LogRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return &models.UserStats{}, nil
	}

	total := len(logs)
	correct := 0
	scoreSum := 0
	for _, l := range logs {
		if l.Score == 1 {
			correct++
		}
		scoreSum += l.Score
	}

	return &models.UserStats{
		TotalQuestions: total,
		CorrectRate:    round1(float64(correct) / float64(total) * 100),
		AvgScore:       round1(float64(scoreSum) / float64(total)),
		LearningStreak: learningStreak(logs),
	}, nil
}

// GetLearningHistory returns the user's attempts newest first.
func (s *StatsService) GetLearningHistory(ctx context.Context, userID string, limit int64) ([]models.HistoryEntry, error) {
	logs, err := s.LogRepo.FindRecentByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	history := make([]models.HistoryEntry, 0, len(logs))
	for _, l := range logs {
		entry := models.HistoryEntry{
			ID:         l.ID,
			QuestionID: l.QuestionID,
			UserAnswer: l.UserAnswer,
			Score:      l.Score,
			Category:   l.Category,
			Difficulty: l.Difficulty,
		}
		if !l.CreatedAt.IsZero() {
			entry.CreatedAt = l.CreatedAt.Format(time.RFC3339)
		}
		history = append(history, entry)
	}
	return history, nil
}

// learningStreak counts consecutive calendar days of activity ending at the
// most recent log. Logs must be in chronological order.
func learningStreak(logs []models.LearningLog) int {
	if len(logs) == 0 {
		return 0
	}

	streak := 1
	current := dayOf(logs[len(logs)-1].CreatedAt)

	for i := len(logs) - 2; i >= 0; i-- {
		day := dayOf(logs[i].CreatedAt)
		diff := int(current.Sub(day).Hours() / 24)
		if diff == 1 {
			streak++
			current = day
		} else if diff > 1 {
			break
		}
	}
	return streak
}

// dayOf maps a timestamp to its calendar date, anchored in UTC so that
// consecutive dates are always exactly 24 hours apart regardless of the
// timestamp's zone or DST transitions.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
