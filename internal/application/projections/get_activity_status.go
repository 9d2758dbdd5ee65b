package projections

import (
	"context"
	"time"

	"clubadmin/internal/domain/activity"
)

// StatusActivityStore defines the store interface needed by this projection.
type StatusActivityStore interface {
	GetByID(ctx context.Context, id string) (activity.Activity, error)
}

// GetActivityStatusDeps holds dependencies for the projection.
type GetActivityStatusDeps struct {
	ActivityStore StatusActivityStore
}

// ActivityStatusResult carries the temporal classification consumed by
// the check-in gate and rendering.
type ActivityStatusResult struct {
	ActivityID  string
	Phase       activity.Phase
	CheckInOpen bool
}

// QueryGetActivityStatus classifies an activity against the injected
// current time. now is a parameter so the result is deterministic under
// test and the classification is safe to recompute on every change.
// PRE: activityID is non-empty
// POST: Returns the tri-state phase; malformed activities read as after
func QueryGetActivityStatus(ctx context.Context, now time.Time, deps GetActivityStatusDeps, activityID string) (ActivityStatusResult, error) {
	a, err := deps.ActivityStore.GetByID(ctx, activityID)
	if err != nil {
		return ActivityStatusResult{}, err
	}
	phase := activity.Classify(now, a)
	return ActivityStatusResult{
		ActivityID:  a.ID,
		Phase:       phase,
		CheckInOpen: phase == activity.PhaseDuring,
	}, nil
}
