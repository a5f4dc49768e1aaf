package store

import (
	"context"
	"fmt"

	"github.com/finlingo/finlingo/ent"
	"github.com/finlingo/finlingo/ent/courseevent"
)

func (r *eventRepo) AppendCourseEvent(ctx context.Context, data CourseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CourseEvent.Create().
		SetSequence(seqNum).
		SetCourseID(data.CourseID).
		SetAction(data.Action).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save course event: %w", err)
	}
	return nil
}

func (r *eventRepo) CourseIDsByAction(ctx context.Context, action string) ([]string, error) {
	events, err := r.client.CourseEvent.Query().
		Where(courseevent.Action(action)).
		Order(ent.Asc(courseevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query course events: %w", err)
	}

	seen := make(map[string]bool)
	var ids []string
	for _, e := range events {
		if !seen[e.CourseID] {
			seen[e.CourseID] = true
			ids = append(ids, e.CourseID)
		}
	}
	return ids, nil
}
