package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAchievement(ctx context.Context, data AchievementEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AchievementEvent.Create().
		SetSequence(seqNum).
		SetTitle(data.Title).
		SetDescription(data.Description).
		SetCategory(data.Category).
		SetIcon(data.Icon).
		SetMilestone(data.Milestone).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save achievement event: %w", err)
	}
	return nil
}
