package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"listening-service/internal/models"
)

type fakeReviewLogStore struct {
	created []models.LearningLog
	recent  []models.LearningLog
}

func (f *fakeReviewLogStore) Create(ctx context.Context, log *models.LearningLog) error {
	log.ID = fmt.Sprintf("log-%d", len(f.created)+1)
	f.created = append(f.created, *log)
	return nil
}

func (f *fakeReviewLogStore) FindRecentByUser(ctx context.Context, userID string, limit int64) ([]models.LearningLog, error) {
	return f.recent, nil
}

type fakeQuestionFinder struct {
	questions map[string]models.Question
}

func (f *fakeQuestionFinder) FindByID(ctx context.Context, id string) (*models.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &q, nil
}

func TestStartReviewCreatesIncompleteLog(t *testing.T) {
	store := &fakeReviewLogStore{}
	finder := &fakeQuestionFinder{questions: map[string]models.Question{
		"q1": {ID: "q1", Category: "news", DifficultyLevel: 3},
	}}
	svc := NewReviewService(store, finder)

	reviewID, err := svc.StartReview(context.Background(), "user-1", "q1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if reviewID != "log-1" {
		t.Errorf("Expected review ID log-1, got %q", reviewID)
	}
	if len(store.created) != 1 {
		t.Fatalf("Expected 1 log, got %d", len(store.created))
	}

	entry := store.created[0]
	if entry.CompletionStatus {
		t.Error("A started review must be incomplete")
	}
	if !entry.IsReview {
		t.Error("Expected is_review set on the session entry")
	}
	if entry.TimeSpent != 0 {
		t.Errorf("Expected zero time spent at start, got %v", entry.TimeSpent)
	}
	if entry.Category != "news" || entry.Difficulty != "medium" {
		t.Errorf("Expected question fields copied onto the log, got %s/%s", entry.Category, entry.Difficulty)
	}
}

func TestStartReviewUnknownQuestion(t *testing.T) {
	svc := NewReviewService(&fakeReviewLogStore{}, &fakeQuestionFinder{})

	if _, err := svc.StartReview(context.Background(), "user-1", "missing"); err == nil {
		t.Fatal("Expected an error for an unknown question")
	}
}

func TestSaveReviewResult(t *testing.T) {
	testCases := []struct {
		name      string
		isCorrect bool
		wantScore int
	}{
		{"correct answer scores 1", true, 1},
		{"wrong answer scores 0", false, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeReviewLogStore{}
			finder := &fakeQuestionFinder{questions: map[string]models.Question{
				"q1": {ID: "q1", Category: "story", DifficultyLevel: 1},
			}}
			svc := NewReviewService(store, finder)

			reviewID, err := svc.SaveReviewResult(context.Background(), "user-1", "q1", "an answer", tc.isCorrect, 42.5)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if reviewID == "" {
				t.Error("Expected a review ID")
			}

			entry := store.created[0]
			if entry.Score != tc.wantScore {
				t.Errorf("Score = %d, want %d", entry.Score, tc.wantScore)
			}
			if !entry.IsReview || entry.ReviewCount != 1 {
				t.Errorf("Expected a review entry with review_count 1, got %+v", entry)
			}
			if !entry.CompletionStatus {
				t.Error("A saved result must be complete")
			}
			if entry.TimeSpent != 42.5 {
				t.Errorf("TimeSpent = %v, want 42.5", entry.TimeSpent)
			}
		})
	}
}

func TestGetAnswerHistory(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	store := &fakeReviewLogStore{recent: []models.LearningLog{
		{ID: "l3", QuestionID: "q1", UserAnswer: "apple", Score: 1, CompletionStatus: true, CreatedAt: now},
		// l2 has no recorded answer, l1 is a pending review; both are skipped.
		{ID: "l2", QuestionID: "q1", UserAnswer: "", Score: 0, CompletionStatus: true},
		{ID: "l1", QuestionID: "q1", UserAnswer: "pear", Score: 0, CompletionStatus: false},
		{ID: "l0", QuestionID: "q1", UserAnswer: "orange", Score: 0, CompletionStatus: true, CreatedAt: now.AddDate(0, 0, -1)},
	}}
	finder := &fakeQuestionFinder{questions: map[string]models.Question{
		"q1": {ID: "q1", QuestionText: "Question 1", CorrectAnswer: "apple"},
	}}
	svc := NewReviewService(store, finder)

	history, err := svc.GetAnswerHistory(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(history))
	}

	if history[0].ID != "l3" || !history[0].IsCorrect {
		t.Errorf("Expected newest correct entry first, got %+v", history[0])
	}
	if history[1].ID != "l0" || history[1].IsCorrect {
		t.Errorf("Expected older wrong entry second, got %+v", history[1])
	}
	if history[0].CorrectAnswer != "apple" || history[0].QuestionText != "Question 1" {
		t.Errorf("Expected question fields joined in, got %+v", history[0])
	}
}

func TestGetWrongQuestionsGroupsByQuestion(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	store := &fakeReviewLogStore{recent: []models.LearningLog{
		{QuestionID: "q1", Score: 0, CompletionStatus: true, CreatedAt: now},
		{QuestionID: "q2", Score: 0, CompletionStatus: true},
		{QuestionID: "q1", Score: 0, CompletionStatus: true},
		{QuestionID: "q1", Score: 1, CompletionStatus: true}, // correct, ignored
		{QuestionID: "gone", Score: 0, CompletionStatus: true},
	}}
	finder := &fakeQuestionFinder{questions: map[string]models.Question{
		"q1": {ID: "q1", QuestionText: "Question 1"},
		"q2": {ID: "q2", QuestionText: "Question 2"},
	}}
	svc := NewReviewService(store, finder)

	wrong, err := svc.GetWrongQuestions(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(wrong) != 2 {
		t.Fatalf("Expected 2 wrong questions, got %d", len(wrong))
	}
	if wrong[0].QuestionID != "q1" || wrong[0].WrongCount != 2 {
		t.Errorf("Expected q1 missed twice first, got %+v", wrong[0])
	}
	if wrong[1].QuestionID != "q2" || wrong[1].WrongCount != 1 {
		t.Errorf("Expected q2 missed once second, got %+v", wrong[1])
	}
}
