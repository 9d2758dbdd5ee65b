package removal

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyMemberID = errors.New("member ID cannot be empty")
	ErrEmptyRemovedAt = errors.New("removed-at timestamp cannot be zero")
	ErrEmptyReason   = errors.New("removal reason cannot be empty")
)

// UserRef identifies the account that performed a removal or
// restoration.
type UserRef struct {
	ID         string
	Name       string
	ExternalID string
}

// HistoryEntry is one removal event in a member's audit trail, with
// optional restoration fields once the member is brought back. Entries
// are append-only; upstream redundant writes can produce near-duplicate
// rows, which Dedupe collapses for display only.
type HistoryEntry struct {
	ID                string
	MemberID          string
	RemovedAt         time.Time
	RemovedBy         UserRef
	RemovalReason     string
	RestoredAt        time.Time // zero means not restored
	RestoredBy        UserRef
	RestorationReason string
}

// Validate checks the entry's invariants on the write path.
// PRE: HistoryEntry struct is populated
// POST: Returns nil if valid, error otherwise
func (e *HistoryEntry) Validate() error {
	if strings.TrimSpace(e.MemberID) == "" {
		return ErrEmptyMemberID
	}
	if e.RemovedAt.IsZero() {
		return ErrEmptyRemovedAt
	}
	if strings.TrimSpace(e.RemovalReason) == "" {
		return ErrEmptyReason
	}
	return nil
}

// HasRestoration reports whether both restoration fields are set.
// INVARIANT: HistoryEntry fields are not mutated
func (e *HistoryEntry) HasRestoration() bool {
	return !e.RestoredAt.IsZero() && e.RestorationReason != ""
}
