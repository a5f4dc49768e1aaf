package coach

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/finlingo/finlingo/internal/llm"
)

func validNoteJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Lock In Your Grammar Gains",
		"body": "Your vocabulary scores are strong but grammar lags behind. Spend the next three sessions on the grammar course, ten minutes each. Re-do the lesson you scored lowest on before starting anything new.",
		"focus_area": "grammar",
		"encouragement": "A 12-day streak with 40 lessons done means the habit is already there."
	}`)
}

func testInput() NoteInput {
	return NoteInput{
		Level:            "beginner",
		Experience:       150,
		CurrentStreak:    12,
		LessonsCompleted: 40,
		CoursesCompleted: 2,
		TargetLanguages:  []string{"es"},
		RecentResults:    []string{"Grammar Basics lesson 3: 55%"},
		WeakCategories:   []string{"grammar"},
	}
}

func consumeWithin(t *testing.T, svc *Service, d time.Duration) (*StudyNote, bool) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if note, ok := svc.ConsumeNote(); ok {
			return note, true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, false
}

func TestService_GeneratesNote(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validNoteJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestNote(t.Context(), testInput())

	note, ok := consumeWithin(t, svc, 5*time.Second)
	if !ok {
		t.Fatal("note never became ready")
	}
	if note.FocusArea != "grammar" {
		t.Errorf("focus area = %q, want grammar", note.FocusArea)
	}
	if note.Title == "" || note.Body == "" || note.Encouragement == "" {
		t.Errorf("incomplete note: %+v", note)
	}

	// The prompt should carry the learner context.
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"12 days", "40", "grammar"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestService_ConsumeBeforeReady(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	if note, ok := svc.ConsumeNote(); ok || note != nil {
		t.Error("consume with nothing requested must return not-ready")
	}
}

func TestService_GenerationErrorSurfaced(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestNote(t.Context(), testInput())

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if svc.LastErr() != nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(svc.LastErr(), &unavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", svc.LastErr())
	}
	if note, ok := svc.ConsumeNote(); ok || note != nil {
		t.Error("failed generation must not yield a note")
	}
}

func TestService_ErrorSurvivesConsumeFirstPolling(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestNote(t.Context(), testInput())

	// A poller that calls ConsumeNote before LastErr (the CLI's loop
	// shape) must still observe the failure instead of spinning forever.
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if note, ok := svc.ConsumeNote(); ok {
			t.Fatalf("failed generation yielded a note: %+v", note)
		}
		if svc.LastErr() != nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(svc.LastErr(), &unavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", svc.LastErr())
	}
}

func TestService_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"title": 42}`),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestNote(t.Context(), testInput())

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if svc.LastErr() != nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if svc.LastErr() == nil {
		t.Fatal("expected parse error")
	}
}
