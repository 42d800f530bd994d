package models

import (
	"testing"
)

func TestQuestionDifficulty(t *testing.T) {
	testCases := []struct {
		level    int
		expected string
	}{
		{0, "easy"}, // unset defaults to level 1
		{1, "easy"},
		{2, "easy"},
		{3, "medium"},
		{4, "hard"},
		{5, "hard"},
	}

	for _, tc := range testCases {
		question := &Question{DifficultyLevel: tc.level}
		if got := question.Difficulty(); got != tc.expected {
			t.Errorf("level %d: expected %q, got %q", tc.level, tc.expected, got)
		}
	}
}

func TestDifficultyLevelRange(t *testing.T) {
	testCases := []struct {
		difficulty string
		low        int
		high       int
		ok         bool
	}{
		{"easy", 1, 2, true},
		{"medium", 3, 3, true},
		{"hard", 4, 5, true},
		{"", 0, 0, false},
		{"expert", 0, 0, false},
	}

	for _, tc := range testCases {
		low, high, ok := DifficultyLevelRange(tc.difficulty)
		if low != tc.low || high != tc.high || ok != tc.ok {
			t.Errorf("DifficultyLevelRange(%q) = (%d, %d, %v), expected (%d, %d, %v)",
				tc.difficulty, low, high, ok, tc.low, tc.high, tc.ok)
		}
	}
}
