package service

import (
	"context"
	"fmt"
	"log"

	"listening-service/internal/models"
	"listening-service/internal/recommend"
)

// AttemptStore is the slice of the learning log repository the
// recommendation service reads.
type AttemptStore interface {
	FindByUser(ctx context.Context, userID string) ([]models.LearningLog, error)
	PlayStats(ctx context.Context) (map[string]models.PlayStats, error)
}

type RecommendationService struct {
	LogRepo  AttemptStore
	selector *recommend.Selector
}

func NewRecommendationService(logRepo AttemptStore, catalog recommend.Catalog) *RecommendationService {
	return &RecommendationService{
		LogRepo:  logRepo,
		selector: recommend.NewSelector(catalog),
	}
}

// AnalyzeUserProfile derives the user's learning profile from their attempt
// history. It never fails: if the history cannot be read, the default
// beginner profile is returned so recommendation still works.
func (s *RecommendationService) AnalyzeUserProfile(ctx context.Context, userID string) recommend.Profile {
	logs, err := s.LogRepo.FindByUser(ctx, userID)
	if err != nil {
		log.Printf("profile analysis for user %s fell back to default: %v", userID, err)
		return recommend.DefaultProfile()
	}
	return recommend.Analyze(logs)
}

// GetRecommendedQuestions analyzes the user and returns up to six scored
// recommendations enriched with play statistics. A catalog failure fails the
// whole call; the caller decides the degraded response.
func (s *RecommendationService) GetRecommendedQuestions(ctx context.Context, userID string) ([]models.Recommendation, error) {
	profile := s.AnalyzeUserProfile(ctx, userID)

	recommendations, err := s.selector.Recommend(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to select recommendations: %w", err)
	}

	if len(recommendations) > 0 {
		if stats, err := s.LogRepo.PlayStats(ctx); err == nil {
			for i := range recommendations {
				if st, ok := stats[recommendations[i].QuestionID]; ok {
					recommendations[i].PlayCount = st.PlayCount
					recommendations[i].AvgScore = st.AvgScore
				}
			}
		} else {
			log.Printf("play stats unavailable, serving recommendations without them: %v", err)
		}
	}

	return recommendations, nil
}
