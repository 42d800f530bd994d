package models

// UserStats summarizes a user's learning activity.
type UserStats struct {
	TotalQuestions int     `json:"total_questions"`
	CorrectRate    float64 `json:"correct_rate"`
	AvgScore       float64 `json:"avg_score"`
	LearningStreak int     `json:"learning_streak"`
}

// HistoryEntry is one row of the learning history view.
type HistoryEntry struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	UserAnswer string `json:"user_answer"`
	Score      int    `json:"score"`
	CreatedAt  string `json:"created_at"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

// AnswerHistoryEntry is one row of the review answer-history view: a
// completed attempt joined with the question it answered.
type AnswerHistoryEntry struct {
	ID            string `json:"id"`
	QuestionText  string `json:"question_text"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	AnswerDate    string `json:"answer_date"`
	Score         int    `json:"score"`
}

// WrongQuestion groups a user's incorrect attempts on one question.
type WrongQuestion struct {
	QuestionID   string `json:"id"`
	QuestionText string `json:"question_text"`
	AudioURL     string `json:"audio_url"`
	WrongCount   int    `json:"wrong_count"`
	WrongDate    string `json:"wrong_date"`
	LastScore    int    `json:"last_score"`
}
