package activity

import (
	"context"

	domain "clubadmin/internal/domain/activity"
)

// Store persists Activity state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Activity, error)
	Save(ctx context.Context, value domain.Activity) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Activity, error)
}
