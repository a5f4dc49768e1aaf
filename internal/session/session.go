package session

import "fmt"

// ValidationError reports a state-machine precondition violation, such
// as answering outside the lesson flow or selecting an option index out
// of range. These are programmer errors in the calling layer, not
// learner mistakes.
type ValidationError struct {
	Op     string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("session %s: %s", e.Op, e.Reason)
}

// Start begins the attempt: cursor to 0, answers cleared, InProgress.
// Starting an already-running or completed session restarts it.
func (s *Session) Start() {
	s.cursor = 0
	s.answers = nil
	s.score = 0
	s.status = StatusInProgress
	s.startedAt = s.now()
	s.completedAt = s.startedAt
}

// SelectAnswer records the chosen option index at the current cursor
// position without advancing. Skipped earlier positions are filled with
// the -1 sentinel so the answer sequence stays position-aligned.
func (s *Session) SelectAnswer(index int) error {
	if s.status != StatusInProgress {
		return &ValidationError{Op: "select", Reason: "no active lesson"}
	}
	q := s.CurrentQuestion()
	if q == nil {
		return &ValidationError{Op: "select", Reason: "no current question"}
	}
	if index < 0 || index >= len(q.Options) {
		return &ValidationError{
			Op:     "select",
			Reason: fmt.Sprintf("answer index %d out of range [0,%d)", index, len(q.Options)),
		}
	}

	for len(s.answers) <= s.cursor {
		s.answers = append(s.answers, unanswered)
	}
	s.answers[s.cursor] = index
	return nil
}

// Next advances the cursor, or completes and scores the session when
// the cursor is on the last question. A lesson with no questions
// completes immediately with score 0.
func (s *Session) Next() error {
	if s.status != StatusInProgress {
		return &ValidationError{Op: "next", Reason: "no active lesson"}
	}
	if s.cursor >= len(s.lesson.Questions)-1 {
		s.complete()
		return nil
	}
	s.cursor++
	return nil
}

// Previous moves the cursor back one question, flooring at 0. It has no
// effect outside InProgress.
func (s *Session) Previous() {
	if s.status != StatusInProgress {
		return
	}
	if s.cursor > 0 {
		s.cursor--
	}
}

// Retry discards all answers and the score and restarts the same
// lesson.
func (s *Session) Retry() {
	s.status = StatusNotStarted
	s.Start()
}

// complete scores the attempt over exactly questionCount positions.
// Unanswered positions hold -1 and never match a correct index.
func (s *Session) complete() {
	total := len(s.lesson.Questions)
	if total > 0 {
		correct := 0
		for i, q := range s.lesson.Questions {
			if s.SelectedAnswer(i) == q.CorrectIndex {
				correct++
			}
		}
		s.score = 100 * float64(correct) / float64(total)
	}
	s.completedAt = s.now()
	s.status = StatusCompleted
}

// Result returns the terminal outcome for reporting to the progress
// store. It is only available once the session has completed.
func (s *Session) Result() (Result, error) {
	if s.status != StatusCompleted {
		return Result{}, &ValidationError{Op: "result", Reason: "session not completed"}
	}

	correct := 0
	for i, q := range s.lesson.Questions {
		if s.SelectedAnswer(i) == q.CorrectIndex {
			correct++
		}
	}

	minutes := int(s.completedAt.Sub(s.startedAt).Minutes())
	if minutes < 0 {
		minutes = 0
	}

	return Result{
		SessionID:        s.ID,
		LessonID:         s.lesson.ID,
		CourseID:         s.courseID,
		Score:            s.score,
		TimeSpentMinutes: minutes,
		QuestionsTotal:   len(s.lesson.Questions),
		QuestionsCorrect: correct,
	}, nil
}
