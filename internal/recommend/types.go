package recommend

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Reason tags why a question was recommended.
type Reason string

const (
	ReasonWeaknessImprovement Reason = "weakness_improvement"
	ReasonSkillAdvancement    Reason = "skill_advancement"
	ReasonExploration         Reason = "exploration"
	ReasonGeneral             Reason = "general"
)

// AllCategories is the fixed category universe used by the exploration pass,
// in its fixed iteration order.
var AllCategories = []string{"conversation", "news", "story", "academic"}

// Profile is the learning profile derived from a user's attempt history.
// Strengths, Weaknesses and PreferredCategories are ordered by first
// appearance in the attempt history: the selection passes iterate them, so
// their order is part of the contract.
type Profile struct {
	Level               Level      `json:"level"`
	Strengths           []string   `json:"strengths"`
	Weaknesses          []string   `json:"weaknesses"`
	PreferredCategories []string   `json:"preferred_categories"`
	PreferredDifficulty Difficulty `json:"preferred_difficulty"`
	TotalAttempts       int        `json:"total_questions"`
}

// DefaultProfile is the profile for a user with no usable history.
func DefaultProfile() Profile {
	return Profile{
		Level:               LevelBeginner,
		Strengths:           []string{},
		Weaknesses:          []string{},
		PreferredCategories: []string{},
		PreferredDifficulty: DifficultyEasy,
	}
}

// NextDifficulty advances easy -> medium -> hard; hard stays hard.
// An unrecognized value falls back to medium.
func NextDifficulty(d Difficulty) Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// IsStrength reports whether category is one of the profile's strengths.
func (p Profile) IsStrength(category string) bool {
	return contains(p.Strengths, category)
}

// IsWeakness reports whether category is one of the profile's weaknesses.
func (p Profile) IsWeakness(category string) bool {
	return contains(p.Weaknesses, category)
}

// HasExplored reports whether the user has ever attempted the category.
func (p Profile) HasExplored(category string) bool {
	return contains(p.PreferredCategories, category)
}
