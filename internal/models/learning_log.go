package models

import "time"

// LearningLog is one historical answer attempt. Category and Difficulty are
// denormalized from the question at grading time so profile analysis never
// needs a join. Score is the 0/1 correctness signal.
type LearningLog struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	UserID           string    `bson:"user_id" json:"user_id"`
	ContentID        string    `bson:"content_id" json:"content_id"`
	QuestionID       string    `bson:"question_id" json:"question_id"`
	Category         string    `bson:"category,omitempty" json:"category"`
	Difficulty       string    `bson:"difficulty,omitempty" json:"difficulty"`
	UserAnswer       string    `bson:"user_answer,omitempty" json:"user_answer"`
	Score            int       `bson:"score" json:"score"`
	TimeSpent        float64   `bson:"time_spent" json:"time_spent"`
	CompletionStatus bool      `bson:"completion_status" json:"completion_status"`
	ReviewCount      int       `bson:"review_count" json:"review_count"`
	IsReview         bool      `bson:"is_review" json:"is_review"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}

// AnswerResult is returned to the client after grading a submitted answer.
type AnswerResult struct {
	IsCorrect     bool   `json:"is_correct"`
	Score         int    `json:"score"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}
