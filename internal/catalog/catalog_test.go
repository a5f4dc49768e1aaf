package catalog

import (
	"strings"
	"testing"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Version() == "" {
		t.Error("expected non-empty catalog version")
	}
	if len(c.Courses()) == 0 {
		t.Fatal("expected at least one course")
	}

	for _, course := range c.Courses() {
		if course.Difficulty.Rank() == 0 {
			t.Errorf("course %q has unknown difficulty %q", course.ID, course.Difficulty)
		}
		if len(course.Lessons) == 0 {
			t.Errorf("course %q has no lessons", course.ID)
		}
	}
}

func TestCourseLookup(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	first := c.Courses()[0]
	got, err := c.Course(first.ID)
	if err != nil {
		t.Fatalf("course %q: %v", first.ID, err)
	}
	if got.Title != first.Title {
		t.Errorf("title = %q, want %q", got.Title, first.Title)
	}

	if _, err := c.Course("no-such-course"); err == nil {
		t.Error("expected error for unknown course")
	}
}

func TestParseRejectsMissingFields(t *testing.T) {
	raw := []byte(`{"version": "1.0.0", "courses": [{"id": "x", "title": "X"}]}`)
	_, err := Parse(raw)
	if err == nil {
		t.Fatal("expected schema validation error")
	}
	if !strings.Contains(err.Error(), "schema validation") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseRejectsBadCorrectIndex(t *testing.T) {
	raw := []byte(`{
		"version": "1.0.0",
		"courses": [{
			"id": "x", "title": "X", "language": "es",
			"category": "vocabulary", "difficulty": "beginner",
			"estimated_minutes": 10,
			"lessons": [{
				"id": "x-1", "title": "L",
				"questions": [{"prompt": "?", "options": ["a", "b"], "correct_index": 5}]
			}]
		}]
	}`)
	_, err := Parse(raw)
	if err == nil || !strings.Contains(err.Error(), "correct_index") {
		t.Errorf("expected correct_index error, got %v", err)
	}
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	raw := []byte(`{
		"version": "1.0.0",
		"courses": [
			{"id": "x", "title": "X", "language": "es", "category": "grammar",
			 "difficulty": "beginner", "estimated_minutes": 10,
			 "lessons": [{"id": "x-1", "title": "L", "questions": []}]},
			{"id": "x", "title": "X2", "language": "es", "category": "grammar",
			 "difficulty": "beginner", "estimated_minutes": 10,
			 "lessons": [{"id": "x-2", "title": "L", "questions": []}]}
		]
	}`)
	_, err := Parse(raw)
	if err == nil || !strings.Contains(err.Error(), "duplicate course id") {
		t.Errorf("expected duplicate id error, got %v", err)
	}
}

func TestUnlockState(t *testing.T) {
	open := &Course{ID: "open"}
	locked := &Course{ID: "premium", Locked: true}

	u := NewUnlockState(nil)
	if !u.IsUnlocked(open) {
		t.Error("unlocked-by-default course should be offerable")
	}
	if u.IsUnlocked(locked) {
		t.Error("locked course should not be offerable before unlock")
	}

	if changed := u.Unlock("premium"); !changed {
		t.Error("first unlock should report a change")
	}
	if changed := u.Unlock("premium"); changed {
		t.Error("second unlock should be a no-op")
	}
	if !u.IsUnlocked(locked) {
		t.Error("locked course should be offerable after unlock")
	}
}

func TestUnlockStateSeed(t *testing.T) {
	locked := &Course{ID: "premium", Locked: true}
	u := NewUnlockState([]string{"premium"})
	if !u.IsUnlocked(locked) {
		t.Error("seeded unlock should be offerable")
	}
}
