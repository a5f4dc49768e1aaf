package session

import (
	"errors"
	"testing"
	"time"

	"github.com/finlingo/finlingo/internal/catalog"
)

func fourQuestionLesson() *catalog.Lesson {
	return &catalog.Lesson{
		ID:    "l1",
		Title: "Greetings",
		Questions: []catalog.Question{
			{Prompt: "hola means", Options: []string{"hello", "bye"}, CorrectIndex: 0},
			{Prompt: "adios means", Options: []string{"hello", "bye"}, CorrectIndex: 1},
			{Prompt: "gracias means", Options: []string{"thanks", "please"}, CorrectIndex: 0},
			{Prompt: "por favor means", Options: []string{"thanks", "please"}, CorrectIndex: 1},
		},
	}
}

func TestLifecycle(t *testing.T) {
	s := New(fourQuestionLesson(), "c1")
	if s.Status() != StatusNotStarted {
		t.Fatalf("status = %s, want not_started", s.Status())
	}
	if s.ID == "" {
		t.Fatal("missing session ID")
	}

	s.Start()
	if s.Status() != StatusInProgress {
		t.Fatalf("status = %s, want in_progress", s.Status())
	}
	if s.CurrentQuestionIndex() != 0 {
		t.Errorf("cursor = %d, want 0", s.CurrentQuestionIndex())
	}

	for i := 0; i < 4; i++ {
		if err := s.Next(); err != nil {
			t.Fatalf("next: %v", err)
		}
	}
	if s.Status() != StatusCompleted {
		t.Fatalf("status = %s, want completed", s.Status())
	}
}

func TestScoringSparseAnswers(t *testing.T) {
	s := New(fourQuestionLesson(), "c1")
	s.Start()

	// Answer correct, wrong, skip, correct: 2/4 = 50.
	if err := s.SelectAnswer(0); err != nil {
		t.Fatal(err)
	}
	s.Next()
	if err := s.SelectAnswer(0); err != nil { // wrong, correct is 1
		t.Fatal(err)
	}
	s.Next()
	s.Next() // skip third question
	if err := s.SelectAnswer(1); err != nil {
		t.Fatal(err)
	}
	s.Next()

	if s.Status() != StatusCompleted {
		t.Fatalf("status = %s, want completed", s.Status())
	}
	if s.Score() != 50.0 {
		t.Errorf("score = %v, want 50.0", s.Score())
	}
	if got := s.SelectedAnswer(2); got != -1 {
		t.Errorf("skipped answer = %d, want -1", got)
	}
}

func TestPerfectScore(t *testing.T) {
	s := New(fourQuestionLesson(), "c1")
	s.Start()

	for _, answer := range []int{0, 1, 0, 1} {
		if err := s.SelectAnswer(answer); err != nil {
			t.Fatal(err)
		}
		s.Next()
	}
	if s.Score() != 100.0 {
		t.Errorf("score = %v, want 100.0", s.Score())
	}
}

func TestSelectAnswerValidation(t *testing.T) {
	s := New(fourQuestionLesson(), "c1")

	var ve *ValidationError
	if err := s.SelectAnswer(0); !errors.As(err, &ve) {
		t.Errorf("select before start: err = %v, want ValidationError", err)
	}

	s.Start()
	if err := s.SelectAnswer(5); !errors.As(err, &ve) {
		t.Errorf("out-of-range index: err = %v, want ValidationError", err)
	}
	if err := s.SelectAnswer(-1); !errors.As(err, &ve) {
		t.Errorf("negative index: err = %v, want ValidationError", err)
	}

	// Re-selecting overwrites without advancing.
	if err := s.SelectAnswer(0); err != nil {
		t.Fatal(err)
	}
	if err := s.SelectAnswer(1); err != nil {
		t.Fatal(err)
	}
	if s.CurrentQuestionIndex() != 0 {
		t.Errorf("cursor = %d after two selects, want 0", s.CurrentQuestionIndex())
	}
	if got := s.SelectedAnswer(0); got != 1 {
		t.Errorf("answer = %d, want 1 (overwritten)", got)
	}
}

func TestNextAfterCompletionFails(t *testing.T) {
	s := New(fourQuestionLesson(), "c1")
	s.Start()
	for i := 0; i < 4; i++ {
		s.Next()
	}

	var ve *ValidationError
	if err := s.Next(); !errors.As(err, &ve) {
		t.Errorf("next after completion: err = %v, want ValidationError", err)
	}
}

func TestPreviousFloorsAtZero(t *testing.T) {
	s := New(fourQuestionLesson(), "c1")
	s.Start()

	s.Previous()
	if s.CurrentQuestionIndex() != 0 {
		t.Errorf("cursor = %d, want 0", s.CurrentQuestionIndex())
	}

	s.Next()
	s.Next()
	s.Previous()
	if s.CurrentQuestionIndex() != 1 {
		t.Errorf("cursor = %d, want 1", s.CurrentQuestionIndex())
	}

	// Previous is inert once completed.
	s.Next()
	s.Next()
	s.Next()
	if s.Status() != StatusCompleted {
		t.Fatalf("status = %s, want completed", s.Status())
	}
	s.Previous()
	if s.Status() != StatusCompleted {
		t.Error("previous must not reopen a completed session")
	}
}

func TestRetryDiscardsAnswers(t *testing.T) {
	s := New(fourQuestionLesson(), "c1")
	s.Start()
	s.SelectAnswer(0)
	for i := 0; i < 4; i++ {
		s.Next()
	}
	if s.Score() == 0 {
		t.Fatal("setup: expected nonzero score")
	}

	id := s.ID
	s.Retry()

	if s.Status() != StatusInProgress {
		t.Errorf("status = %s after retry, want in_progress", s.Status())
	}
	if s.CurrentQuestionIndex() != 0 || s.Score() != 0 {
		t.Errorf("cursor = %d, score = %v after retry, want 0, 0", s.CurrentQuestionIndex(), s.Score())
	}
	if s.SelectedAnswer(0) != -1 {
		t.Error("answers must be discarded on retry")
	}
	if s.ID != id {
		t.Error("retry must keep the same session ID")
	}
}

func TestZeroQuestionLessonCompletesWithZeroScore(t *testing.T) {
	s := New(&catalog.Lesson{ID: "empty"}, "c1")
	s.Start()

	if err := s.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if s.Status() != StatusCompleted {
		t.Fatalf("status = %s, want completed", s.Status())
	}
	if s.Score() != 0 {
		t.Errorf("score = %v, want 0", s.Score())
	}
}

func TestResult(t *testing.T) {
	s := New(fourQuestionLesson(), "course-9")

	if _, err := s.Result(); err == nil {
		t.Fatal("result before completion must fail")
	}

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	current := base
	s.now = func() time.Time { return current }

	s.Start()
	s.SelectAnswer(0)
	s.Next()
	s.SelectAnswer(1)
	current = base.Add(7 * time.Minute)
	s.Next()
	s.Next()
	s.Next()

	res, err := s.Result()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if res.LessonID != "l1" || res.CourseID != "course-9" {
		t.Errorf("ids = %s/%s, want l1/course-9", res.LessonID, res.CourseID)
	}
	if res.Score != 50.0 || res.QuestionsCorrect != 2 || res.QuestionsTotal != 4 {
		t.Errorf("score = %v (%d/%d), want 50.0 (2/4)", res.Score, res.QuestionsCorrect, res.QuestionsTotal)
	}
	if res.TimeSpentMinutes != 7 {
		t.Errorf("time spent = %d, want 7", res.TimeSpentMinutes)
	}
	if res.SessionID != s.ID {
		t.Error("result must carry the session ID")
	}
}
