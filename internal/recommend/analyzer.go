package recommend

import "listening-service/internal/models"

const (
	strengthAccuracy = 0.7
	weaknessAccuracy = 0.5
	minCategoryTotal = 3
	recentWindow     = 10
	hardAccuracy     = 0.8
	mediumAccuracy   = 0.6
	beginnerMaxTotal = 10
	intermedMaxTotal = 30
	easyMaxTotal     = 5
	mediumMaxTotal   = 15
)

type categoryStat struct {
	total   int
	correct int
}

// Analyze derives a learning profile from a user's attempt history. The
// attempts must be in chronological order; the recent-accuracy rule reads the
// last entries of the slice as given. Analyze is total: any input, including
// nil, yields a valid profile, and an empty history yields DefaultProfile.
func Analyze(attempts []models.LearningLog) Profile {
	if len(attempts) == 0 {
		return DefaultProfile()
	}

	// Per-category accumulation, preserving first-seen order. Attempts
	// without a category still count toward the global total.
	stats := make(map[string]*categoryStat)
	categoryOrder := make([]string, 0)

	for _, a := range attempts {
		if a.Category == "" {
			continue
		}
		st, ok := stats[a.Category]
		if !ok {
			st = &categoryStat{}
			stats[a.Category] = st
			categoryOrder = append(categoryOrder, a.Category)
		}
		st.total++
		st.correct += normalizeScore(a.Score)
	}

	strengths := make([]string, 0)
	weaknesses := make([]string, 0)
	for _, category := range categoryOrder {
		st := stats[category]
		if st.total < minCategoryTotal {
			continue
		}
		accuracy := float64(st.correct) / float64(st.total)
		if accuracy >= strengthAccuracy {
			strengths = append(strengths, category)
		} else if accuracy < weaknessAccuracy {
			weaknesses = append(weaknesses, category)
		}
	}

	total := len(attempts)

	return Profile{
		Level:               levelForTotal(total),
		Strengths:           strengths,
		Weaknesses:          weaknesses,
		PreferredCategories: categoryOrder,
		PreferredDifficulty: preferredDifficulty(attempts),
		TotalAttempts:       total,
	}
}

// normalizeScore folds any positive score to the 0/1 correctness signal, so
// rows written under the legacy 0-100 convention still count as one correct.
func normalizeScore(score int) int {
	if score > 0 {
		return 1
	}
	return 0
}

func levelForTotal(total int) Level {
	switch {
	case total < beginnerMaxTotal:
		return LevelBeginner
	case total < intermedMaxTotal:
		return LevelIntermediate
	default:
		return LevelAdvanced
	}
}

func preferredDifficulty(attempts []models.LearningLog) Difficulty {
	total := len(attempts)
	if total < easyMaxTotal {
		return DifficultyEasy
	}
	if total < mediumMaxTotal {
		return DifficultyMedium
	}

	recent := attempts
	if len(recent) > recentWindow {
		recent = recent[len(recent)-recentWindow:]
	}
	correct := 0
	for _, a := range recent {
		correct += normalizeScore(a.Score)
	}
	accuracy := float64(correct) / float64(len(recent))

	switch {
	case accuracy >= hardAccuracy:
		return DifficultyHard
	case accuracy >= mediumAccuracy:
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}
