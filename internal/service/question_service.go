package service

import (
	"context"
	"log"
	"time"

	"listening-service/internal/models"
	"listening-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type QuestionService struct {
	Repo    *repository.QuestionRepository
	LogRepo *repository.LearningLogRepository
}

func NewQuestionService(repo *repository.QuestionRepository, logRepo *repository.LearningLogRepository) *QuestionService {
	return &QuestionService{Repo: repo, LogRepo: logRepo}
}

// PublicQuestion is the listing view of a question with aggregated play data.
type PublicQuestion struct {
	ID           string  `json:"id"`
	QuestionText string  `json:"question_text"`
	Difficulty   string  `json:"difficulty"`
	Category     string  `json:"category"`
	CreatedAt    string  `json:"created_at"`
	PlayCount    int     `json:"play_count"`
	AvgScore     float64 `json:"avg_score"`
}

// ListPublicQuestions returns all public questions with play counts and
// average scores merged in from the learning logs.
func (s *QuestionService) ListPublicQuestions(ctx context.Context) ([]PublicQuestion, error) {
	questions, err := s.Repo.FindPublic(ctx, "", "", 0)
	if err != nil {
		return nil, err
	}

	stats, err := s.LogRepo.PlayStats(ctx)
	if err != nil {
		log.Printf("play stats unavailable for question listing: %v", err)
		stats = map[string]models.PlayStats{}
	}

	result := make([]PublicQuestion, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		entry := PublicQuestion{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Difficulty:   q.Difficulty(),
			Category:     q.Category,
		}
		if !q.CreatedAt.IsZero() {
			entry.CreatedAt = q.CreatedAt.Format(time.RFC3339)
		}
		if st, ok := stats[q.ID]; ok {
			entry.PlayCount = st.PlayCount
			entry.AvgScore = st.AvgScore
		}
		result = append(result, entry)
	}
	return result, nil
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *QuestionService) GetRandomPublicQuestion(ctx context.Context) (*models.Question, error) {
	return s.Repo.FindRandomPublic(ctx)
}

func (s *QuestionService) CreateQuestion(ctx context.Context, question *models.Question) error {
	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now()
	}
	if question.DifficultyLevel == 0 {
		question.DifficultyLevel = 1
	}
	return s.Repo.Create(ctx, question)
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, update map[string]interface{}) error {
	return s.Repo.Update(ctx, id, bson.M(update))
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// BulkCreateQuestions inserts a batch of questions, stopping on first error.
func (s *QuestionService) BulkCreateQuestions(ctx context.Context, questions []models.Question) (int, error) {
	for i := range questions {
		if err := s.CreateQuestion(ctx, &questions[i]); err != nil {
			return i, err
		}
	}
	return len(questions), nil
}
