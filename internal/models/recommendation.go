package models

// Recommendation is a single recommended question with the score and
// localized reason that explain why it was selected.
type Recommendation struct {
	QuestionID           string  `json:"id"`
	QuestionText         string  `json:"question_text"`
	Difficulty           string  `json:"difficulty"`
	Category             string  `json:"category"`
	PlayCount            int     `json:"play_count"`
	AvgScore             float64 `json:"avg_score"`
	RecommendationScore  int     `json:"recommendation_score"`
	RecommendationReason string  `json:"recommendation_reason"`
	Confidence           float64 `json:"confidence"`
}

// PlayStats is the per-question aggregate over learning logs.
type PlayStats struct {
	QuestionID string  `bson:"_id" json:"question_id"`
	PlayCount  int     `bson:"play_count" json:"play_count"`
	AvgScore   float64 `bson:"avg_score" json:"avg_score"`
}
