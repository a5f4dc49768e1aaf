package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/finlingo/finlingo/internal/llm"
)

// Service generates personalized study notes asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *StudyNote
	err     error
	ready   bool
}

// NewService creates a coaching service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestNote starts async note generation. Only one note is in-flight
// at a time; new requests replace pending ones.
func (s *Service) RequestNote(ctx context.Context, input NoteInput) {
	go func() {
		note, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = note
		s.err = err
		s.ready = true
	}()
}

// ConsumeNote returns the pending note if one is ready.
// Returns (nil, false) if no note is ready yet. After consumption the
// pending slot is cleared; a failed generation keeps its error visible
// through LastErr regardless of consume order.
func (s *Service) ConsumeNote() (*StudyNote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	note := s.pending
	s.pending = nil
	s.ready = false
	if note != nil {
		s.err = nil
	}
	return note, note != nil
}

// LastErr returns the error from the most recent completed generation.
func (s *Service) LastErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

type noteOutput struct {
	Title         string `json:"title"`
	Body          string `json:"body"`
	FocusArea     string `json:"focus_area"`
	Encouragement string `json:"encouragement"`
}

func (s *Service) generate(ctx context.Context, input NoteInput) (*StudyNote, error) {
	ctx = llm.WithPurpose(ctx, "coach-note")

	req := llm.Request{
		System: noteSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildNoteUserMessage(input)},
		},
		Schema:      NoteSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("note generation: %w", err)
	}

	var out noteOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse note response: %w", err)
	}

	return &StudyNote{
		Title:         out.Title,
		Body:          out.Body,
		FocusArea:     out.FocusArea,
		Encouragement: out.Encouragement,
	}, nil
}
