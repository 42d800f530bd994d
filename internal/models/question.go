package models

import "time"

type Option struct {
	ID   string `bson:"id" json:"id"`
	Text string `bson:"text" json:"text"`
}

// Question is a listening question generated from an uploaded audio clip.
// DifficultyLevel is stored on a 1-5 scale; the API exposes the derived
// easy/medium/hard bucket.
type Question struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	AudioURL        string    `bson:"audio_url" json:"audio_url"`
	QuestionText    string    `bson:"question_text" json:"question_text"`
	CorrectAnswer   string    `bson:"correct_answer" json:"correct_answer"`
	Options         []Option  `bson:"options" json:"options"`
	Category        string    `bson:"category,omitempty" json:"category"`
	DifficultyLevel int       `bson:"difficulty_level" json:"difficulty_level"`
	IsPublic        bool      `bson:"is_public" json:"is_public"`
	UploadedBy      string    `bson:"uploaded_by" json:"uploaded_by"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Difficulty maps the stored 1-5 level onto easy/medium/hard.
// Levels 1-2 are easy, 3 is medium, 4-5 are hard; an unset level counts as 1.
func (q *Question) Difficulty() string {
	level := q.DifficultyLevel
	if level == 0 {
		level = 1
	}
	switch {
	case level <= 2:
		return DifficultyEasy
	case level <= 3:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

// DifficultyLevelRange returns the inclusive 1-5 bounds a difficulty bucket
// covers, for repository filters. ok is false for an unknown bucket.
func DifficultyLevelRange(difficulty string) (low, high int, ok bool) {
	switch difficulty {
	case DifficultyEasy:
		return 1, 2, true
	case DifficultyMedium:
		return 3, 3, true
	case DifficultyHard:
		return 4, 5, true
	default:
		return 0, 0, false
	}
}
