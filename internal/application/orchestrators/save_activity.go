package orchestrators

import (
	"context"
	"time"

	"clubadmin/internal/domain/activity"

	"github.com/google/uuid"
)

// ActivityStore defines the interface for activity persistence.
type ActivityStore interface {
	Save(ctx context.Context, a activity.Activity) error
}

// SaveActivityInput carries the authored activity.
type SaveActivityInput struct {
	Activity  activity.Activity
	CreatedBy string // account ID of the author
}

// SaveActivityDeps holds dependencies for SaveActivity.
type SaveActivityDeps struct {
	ActivityStore ActivityStore
}

// ExecuteSaveActivity validates and persists an activity, minting an ID
// for new records. Day schedules keep their raw text untouched; decoding
// is a read-time concern.
// PRE: input.Activity passes domain validation
// POST: Activity is persisted with ID, CreatedBy and CreatedAt set
func ExecuteSaveActivity(ctx context.Context, now time.Time, input SaveActivityInput, deps SaveActivityDeps) (activity.Activity, error) {
	a := input.Activity
	if err := a.Validate(); err != nil {
		return activity.Activity{}, err
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedBy == "" {
		a.CreatedBy = input.CreatedBy
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if err := deps.ActivityStore.Save(ctx, a); err != nil {
		return activity.Activity{}, err
	}
	return a, nil
}
