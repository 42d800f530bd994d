package recommend

import (
	"context"
	"fmt"

	"listening-service/internal/models"
)

const (
	maxRecommendations   = 6
	weaknessFetchLimit   = 2
	advancementFetch     = 1
	explorationFetch     = 1
	explorationPassLimit = 2
)

// Catalog is the bounded query surface the selector draws candidates from.
// Empty category or difficulty means no filter on that field. Implementations
// must return rows in a deterministic order so backfill is reproducible.
type Catalog interface {
	FindPublic(ctx context.Context, category, difficulty string, limit int64) ([]models.Question, error)
}

// Selector produces ranked question recommendations from a learning profile.
// It holds no state between calls; each Recommend issues a small fixed number
// of catalog queries.
type Selector struct {
	catalog Catalog
}

func NewSelector(catalog Catalog) *Selector {
	return &Selector{catalog: catalog}
}

// Recommend runs the four selection passes in priority order: weakness
// improvement, skill advancement, exploration of unseen categories, then
// backfill at the preferred difficulty. The result has no duplicate question
// IDs and at most six entries. Any catalog error aborts the whole call.
func (s *Selector) Recommend(ctx context.Context, profile Profile) ([]models.Recommendation, error) {
	acc := newAccumulator(profile)

	for _, category := range profile.Weaknesses {
		questions, err := s.catalog.FindPublic(ctx, category, string(profile.PreferredDifficulty), weaknessFetchLimit)
		if err != nil {
			return nil, fmt.Errorf("weakness pass for %q: %w", category, err)
		}
		acc.add(questions, ReasonWeaknessImprovement)
	}

	next := NextDifficulty(profile.PreferredDifficulty)
	for _, category := range profile.Strengths {
		questions, err := s.catalog.FindPublic(ctx, category, string(next), advancementFetch)
		if err != nil {
			return nil, fmt.Errorf("advancement pass for %q: %w", category, err)
		}
		acc.add(questions, ReasonSkillAdvancement)
	}

	explored := 0
	for _, category := range AllCategories {
		if profile.HasExplored(category) {
			continue
		}
		if explored >= explorationPassLimit {
			break
		}
		explored++
		questions, err := s.catalog.FindPublic(ctx, category, string(DifficultyEasy), explorationFetch)
		if err != nil {
			return nil, fmt.Errorf("exploration pass for %q: %w", category, err)
		}
		acc.add(questions, ReasonExploration)
	}

	if len(acc.entries) < maxRecommendations {
		// Anything already accumulated can collide with the backfill window,
		// so over-fetch by that amount to still reach six when possible.
		limit := int64(maxRecommendations + len(acc.entries))
		questions, err := s.catalog.FindPublic(ctx, "", string(profile.PreferredDifficulty), limit)
		if err != nil {
			return nil, fmt.Errorf("backfill pass: %w", err)
		}
		acc.add(questions, ReasonGeneral)
	}

	return acc.entries, nil
}

// accumulator collects recommendations in pass order, dropping duplicates and
// capping the list.
type accumulator struct {
	profile Profile
	seen    map[string]bool
	entries []models.Recommendation
}

func newAccumulator(profile Profile) *accumulator {
	return &accumulator{
		profile: profile,
		seen:    make(map[string]bool),
		entries: make([]models.Recommendation, 0, maxRecommendations),
	}
}

func (a *accumulator) add(questions []models.Question, reason Reason) {
	for i := range questions {
		q := &questions[i]
		if len(a.entries) >= maxRecommendations {
			return
		}
		if a.seen[q.ID] {
			continue
		}
		a.seen[q.ID] = true
		a.entries = append(a.entries, newRecommendation(q, a.profile, reason))
	}
}

func newRecommendation(q *models.Question, profile Profile, reason Reason) models.Recommendation {
	score := Score(q, profile, reason)
	return models.Recommendation{
		QuestionID:           q.ID,
		QuestionText:         q.QuestionText,
		Difficulty:           q.Difficulty(),
		Category:             q.Category,
		RecommendationScore:  score,
		RecommendationReason: ReasonText(reason, q.Category),
		Confidence:           Confidence(score),
	}
}
