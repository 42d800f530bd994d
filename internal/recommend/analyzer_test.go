package recommend

import (
	"testing"

	"listening-service/internal/models"
)

func logs(category string, scores ...int) []models.LearningLog {
	out := make([]models.LearningLog, 0, len(scores))
	for _, s := range scores {
		out = append(out, models.LearningLog{Category: category, Score: s})
	}
	return out
}

func TestAnalyzeEmptyHistory(t *testing.T) {
	for _, attempts := range [][]models.LearningLog{nil, {}} {
		profile := Analyze(attempts)

		if profile.Level != LevelBeginner {
			t.Errorf("Expected beginner level, got %s", profile.Level)
		}
		if profile.PreferredDifficulty != DifficultyEasy {
			t.Errorf("Expected easy difficulty, got %s", profile.PreferredDifficulty)
		}
		if len(profile.Strengths) != 0 || len(profile.Weaknesses) != 0 || len(profile.PreferredCategories) != 0 {
			t.Errorf("Expected empty category sets, got %+v", profile)
		}
	}
}

func TestAnalyzeCategoryThresholds(t *testing.T) {
	testCases := []struct {
		name         string
		scores       []int
		wantStrength bool
		wantWeakness bool
	}{
		{"3 of 3 correct is a strength", []int{1, 1, 1}, true, false},
		{"2 of 3 correct is neither", []int{1, 1, 0}, false, false},
		{"1 of 4 correct is a weakness", []int{1, 0, 0, 0}, false, true},
		{"2 attempts never qualify", []int{0, 0}, false, false},
		{"exactly half correct is neither", []int{1, 0, 1, 0}, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			profile := Analyze(logs("news", tc.scores...))

			if got := profile.IsStrength("news"); got != tc.wantStrength {
				t.Errorf("IsStrength = %v, want %v", got, tc.wantStrength)
			}
			if got := profile.IsWeakness("news"); got != tc.wantWeakness {
				t.Errorf("IsWeakness = %v, want %v", got, tc.wantWeakness)
			}
		})
	}
}

func TestAnalyzeStrengthsAndWeaknessesDisjoint(t *testing.T) {
	attempts := append(logs("news", 1, 1, 1, 1), logs("story", 0, 0, 0, 1)...)
	attempts = append(attempts, logs("academic", 1, 0, 1)...)

	profile := Analyze(attempts)

	for _, s := range profile.Strengths {
		if profile.IsWeakness(s) {
			t.Errorf("Category %q is both a strength and a weakness", s)
		}
	}
	if !profile.IsStrength("news") {
		t.Error("Expected news to be a strength")
	}
	if !profile.IsWeakness("story") {
		t.Error("Expected story to be a weakness")
	}
	if profile.IsStrength("academic") || profile.IsWeakness("academic") {
		t.Error("Expected academic in neither set")
	}
}

func TestAnalyzeCategoryOrderFollowsInput(t *testing.T) {
	attempts := append(logs("story", 0, 0, 0), logs("news", 0, 0, 0)...)

	profile := Analyze(attempts)

	want := []string{"story", "news"}
	if len(profile.Weaknesses) != 2 {
		t.Fatalf("Expected 2 weaknesses, got %v", profile.Weaknesses)
	}
	for i, category := range want {
		if profile.Weaknesses[i] != category {
			t.Errorf("Weakness[%d] = %q, want %q", i, profile.Weaknesses[i], category)
		}
	}
}

func TestAnalyzeNilCategoryExcludedFromStats(t *testing.T) {
	attempts := logs("", 0, 0, 0, 0, 0, 0)

	profile := Analyze(attempts)

	if len(profile.PreferredCategories) != 0 {
		t.Errorf("Uncategorized attempts should not appear in categories, got %v", profile.PreferredCategories)
	}
	if len(profile.Weaknesses) != 0 {
		t.Errorf("Uncategorized attempts should not form weaknesses, got %v", profile.Weaknesses)
	}
	// They still count toward totals.
	if profile.TotalAttempts != 6 {
		t.Errorf("TotalAttempts = %d, want 6", profile.TotalAttempts)
	}
	if profile.PreferredDifficulty != DifficultyMedium {
		t.Errorf("6 attempts should prefer medium, got %s", profile.PreferredDifficulty)
	}
}

func TestAnalyzePreferredDifficulty(t *testing.T) {
	testCases := []struct {
		name   string
		scores []int
		want   Difficulty
	}{
		{"no attempts", nil, DifficultyEasy},
		{"4 attempts stay easy", []int{1, 1, 1, 1}, DifficultyEasy},
		{"7 attempts move to medium", []int{1, 1, 1, 1, 1, 1, 1}, DifficultyMedium},
		{
			"20 attempts with strong recent accuracy go hard",
			append(make([]int, 10), 1, 1, 1, 1, 1, 1, 1, 1, 1, 0), // last 10: 9 correct
			DifficultyHard,
		},
		{
			"20 attempts with middling recent accuracy stay medium",
			append(make([]int, 10), 1, 1, 1, 1, 1, 1, 0, 0, 0, 0), // last 10: 6 correct
			DifficultyMedium,
		},
		{
			"20 attempts with weak recent accuracy fall back to easy",
			append([]int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, make([]int, 10)...), // last 10: 0 correct
			DifficultyEasy,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			profile := Analyze(logs("news", tc.scores...))
			if profile.PreferredDifficulty != tc.want {
				t.Errorf("PreferredDifficulty = %s, want %s", profile.PreferredDifficulty, tc.want)
			}
		})
	}
}

func TestAnalyzeLevel(t *testing.T) {
	testCases := []struct {
		attempts int
		want     Level
	}{
		{1, LevelBeginner},
		{9, LevelBeginner},
		{10, LevelIntermediate},
		{29, LevelIntermediate},
		{30, LevelAdvanced},
		{100, LevelAdvanced},
	}

	for _, tc := range testCases {
		profile := Analyze(logs("news", make([]int, tc.attempts)...))
		if profile.Level != tc.want {
			t.Errorf("%d attempts: Level = %s, want %s", tc.attempts, profile.Level, tc.want)
		}
	}
}

func TestAnalyzeNormalizesLegacyScores(t *testing.T) {
	// Rows written under the old 0-100 convention count as single corrects.
	attempts := []models.LearningLog{
		{Category: "news", Score: 100},
		{Category: "news", Score: 80},
		{Category: "news", Score: 100},
	}

	profile := Analyze(attempts)

	if !profile.IsStrength("news") {
		t.Errorf("Legacy positive scores should normalize to correct; got %+v", profile)
	}
}

func TestNextDifficulty(t *testing.T) {
	testCases := []struct {
		in   Difficulty
		want Difficulty
	}{
		{DifficultyEasy, DifficultyMedium},
		{DifficultyMedium, DifficultyHard},
		{DifficultyHard, DifficultyHard},
		{Difficulty("unknown"), DifficultyMedium},
	}

	for _, tc := range testCases {
		if got := NextDifficulty(tc.in); got != tc.want {
			t.Errorf("NextDifficulty(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
