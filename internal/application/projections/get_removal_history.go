package projections

import (
	"context"

	"clubadmin/internal/domain/removal"
)

// RemovalHistoryStore defines the store interface needed by this projection.
type RemovalHistoryStore interface {
	ListByMember(ctx context.Context, memberID string) ([]removal.HistoryEntry, error)
}

// GetRemovalHistoryDeps holds dependencies for the projection.
type GetRemovalHistoryDeps struct {
	RemovalStore RemovalHistoryStore
}

// GetRemovalHistoryResult carries the display-ready audit trail.
type GetRemovalHistoryResult struct {
	MemberID string
	Entries  []removal.HistoryEntry
}

// QueryGetRemovalHistory returns a member's removal audit trail with
// near-duplicate writes collapsed. Deduplication happens here only;
// stored rows stay append-only and untouched.
// PRE: memberID is non-empty
// POST: Returns deduplicated entries in stored order
func QueryGetRemovalHistory(ctx context.Context, deps GetRemovalHistoryDeps, memberID string) (GetRemovalHistoryResult, error) {
	entries, err := deps.RemovalStore.ListByMember(ctx, memberID)
	if err != nil {
		return GetRemovalHistoryResult{}, err
	}
	deduped := removal.Dedupe(entries)
	if deduped == nil {
		deduped = []removal.HistoryEntry{}
	}
	return GetRemovalHistoryResult{MemberID: memberID, Entries: deduped}, nil
}
