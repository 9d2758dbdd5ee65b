package removal

import (
	"context"

	domain "clubadmin/internal/domain/removal"
)

// Store persists removal history. Entries are append-only; correcting
// a removal means appending a restored copy, never editing in place.
type Store interface {
	Append(ctx context.Context, e domain.HistoryEntry) error
	ListByMember(ctx context.Context, memberID string) ([]domain.HistoryEntry, error)
	ListAll(ctx context.Context) ([]domain.HistoryEntry, error)
}
