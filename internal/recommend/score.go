package recommend

import (
	"fmt"

	"listening-service/internal/models"
)

const baseScore = 50

var reasonBonus = map[Reason]int{
	ReasonWeaknessImprovement: 30,
	ReasonSkillAdvancement:    25,
	ReasonExploration:         20,
	ReasonGeneral:             10,
}

var categoryText = map[string]string{
	"conversation": "会話",
	"news":         "ニュース",
	"story":        "物語",
	"academic":     "学術",
}

// Score computes the recommendation score for a question under the given
// profile and reason, clamped to [0, 100].
func Score(q *models.Question, profile Profile, reason Reason) int {
	score := baseScore + reasonBonus[reason]

	difficulty := Difficulty(q.Difficulty())
	if difficulty == profile.PreferredDifficulty {
		score += 15
	} else if difficulty == NextDifficulty(profile.PreferredDifficulty) {
		score += 10
	}

	if profile.IsWeakness(q.Category) {
		score += 20
	} else if profile.IsStrength(q.Category) {
		score += 15
	} else if !profile.HasExplored(q.Category) {
		score += 10
	}

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// Confidence maps a score to the 0.5-0.9 confidence band, monotonically.
func Confidence(score int) float64 {
	c := 0.5 + (float64(score)/100)*0.4
	if c > 0.9 {
		return 0.9
	}
	return c
}

// CategoryText returns the Japanese display name for a category, falling back
// to the raw category value.
func CategoryText(category string) string {
	if text, ok := categoryText[category]; ok {
		return text
	}
	return category
}

// ReasonText builds the localized recommendation reason.
func ReasonText(reason Reason, category string) string {
	switch reason {
	case ReasonWeaknessImprovement:
		return fmt.Sprintf("%s分野の強化", CategoryText(category))
	case ReasonSkillAdvancement:
		return fmt.Sprintf("%s分野のレベルアップ", CategoryText(category))
	case ReasonExploration:
		return fmt.Sprintf("%s分野の新規挑戦", CategoryText(category))
	default:
		return "学習進捗に最適"
	}
}
