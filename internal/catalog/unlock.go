package catalog

import "sync"

// UnlockState is the mutable unlock overlay keyed by course ID. Catalog
// entries stay immutable; unlocking is a real state transition recorded
// here and mirrored to the event log by the caller.
type UnlockState struct {
	mu       sync.RWMutex
	unlocked map[string]bool
}

// NewUnlockState creates an overlay seeded with already-unlocked course IDs.
func NewUnlockState(ids []string) *UnlockState {
	unlocked := make(map[string]bool, len(ids))
	for _, id := range ids {
		unlocked[id] = true
	}
	return &UnlockState{unlocked: unlocked}
}

// Unlock marks a course as unlocked. Returns false if it already was.
func (u *UnlockState) Unlock(courseID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.unlocked[courseID] {
		return false
	}
	u.unlocked[courseID] = true
	return true
}

// IsUnlocked reports whether the course is offerable: either not locked in
// the catalog, or explicitly unlocked in the overlay.
func (u *UnlockState) IsUnlocked(course *Course) bool {
	if !course.Locked {
		return true
	}
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.unlocked[course.ID]
}
