package store

import (
	"context"
	"fmt"

	"github.com/finlingo/finlingo/ent"
	"github.com/finlingo/finlingo/ent/lessoncompletionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLessonCompletion(ctx context.Context, data LessonCompletionData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LessonCompletionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetCourseID(data.CourseID).
		SetCategory(data.Category).
		SetDifficulty(data.Difficulty).
		SetScore(data.Score).
		SetTimeSpentMinutes(data.TimeSpentMinutes).
		SetQuestionsTotal(data.QuestionsTotal).
		SetQuestionsCorrect(data.QuestionsCorrect).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save lesson completion event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLessonCompletions(ctx context.Context, opts QueryOpts) ([]LessonCompletionRecord, error) {
	query := r.client.LessonCompletionEvent.Query().
		Order(ent.Desc(lessoncompletionevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(lessoncompletionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(lessoncompletionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(lessoncompletionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(lessoncompletionevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lesson completions: %w", err)
	}

	records := make([]LessonCompletionRecord, len(events))
	for i, e := range events {
		records[i] = LessonCompletionRecord{
			LessonCompletionData: LessonCompletionData{
				SessionID:        e.SessionID,
				LessonID:         e.LessonID,
				CourseID:         e.CourseID,
				Category:         e.Category,
				Difficulty:       e.Difficulty,
				Score:            e.Score,
				TimeSpentMinutes: e.TimeSpentMinutes,
				QuestionsTotal:   e.QuestionsTotal,
				QuestionsCorrect: e.QuestionsCorrect,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}
