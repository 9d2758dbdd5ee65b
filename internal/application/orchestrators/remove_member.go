package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"clubadmin/internal/adapters/email"
	"clubadmin/internal/domain/removal"

	"github.com/google/uuid"
)

// Domain errors
var (
	ErrNothingToRestore = errors.New("member has no removal entry to restore")
)

// RemovalStore defines the interface for removal-history persistence.
// The history is append-only; there is deliberately no update or delete.
type RemovalStore interface {
	Append(ctx context.Context, e removal.HistoryEntry) error
	ListByMember(ctx context.Context, memberID string) ([]removal.HistoryEntry, error)
}

// RemoveMemberInput carries input for the removal orchestrator.
type RemoveMemberInput struct {
	MemberID    string
	MemberEmail string // optional: notified when set
	RemovedBy   removal.UserRef
	Reason      string
}

// RemoveMemberDeps holds dependencies for RemoveMember.
type RemoveMemberDeps struct {
	RemovalStore RemovalStore
	EmailSender  email.Sender // optional: nil skips notification
	EmailFrom    string
}

// ExecuteRemoveMember appends a removal entry to the member's audit
// trail and notifies the member by email when an address is known.
// Notification failures are logged, never fatal: the history write is
// the source of truth.
// PRE: MemberID and Reason are non-empty
// POST: One new history entry exists; earlier entries are untouched
func ExecuteRemoveMember(ctx context.Context, now time.Time, input RemoveMemberInput, deps RemoveMemberDeps) (removal.HistoryEntry, error) {
	entry := removal.HistoryEntry{
		ID:            uuid.New().String(),
		MemberID:      input.MemberID,
		RemovedAt:     now,
		RemovedBy:     input.RemovedBy,
		RemovalReason: input.Reason,
	}
	if err := entry.Validate(); err != nil {
		return removal.HistoryEntry{}, err
	}
	if err := deps.RemovalStore.Append(ctx, entry); err != nil {
		return removal.HistoryEntry{}, fmt.Errorf("append removal entry: %w", err)
	}

	if deps.EmailSender != nil && input.MemberEmail != "" {
		_, err := deps.EmailSender.Send(ctx, email.SendRequest{
			To:      []string{input.MemberEmail},
			From:    deps.EmailFrom,
			Subject: "Thông báo xóa tên khỏi danh sách sinh hoạt",
			HTML: fmt.Sprintf("<p>Bạn đã được đưa ra khỏi danh sách sinh hoạt.</p><p>Lý do: %s</p>",
				input.Reason),
		})
		if err != nil {
			slog.Warn("removal_notification_failed", "member_id", input.MemberID, "error", err)
		}
	}
	return entry, nil
}

// RestoreMemberInput carries input for the restoration orchestrator.
type RestoreMemberInput struct {
	MemberID    string
	MemberEmail string // optional: notified when set
	RestoredBy  removal.UserRef
	Reason      string
}

// ExecuteRestoreMember appends a restored copy of the member's latest
// removal entry. The original entry stays as written; the display-side
// deduplicator collapses the pair into the restored one.
// PRE: member has at least one removal entry
// POST: One new history entry with both restoration fields set
func ExecuteRestoreMember(ctx context.Context, now time.Time, input RestoreMemberInput, deps RemoveMemberDeps) (removal.HistoryEntry, error) {
	entries, err := deps.RemovalStore.ListByMember(ctx, input.MemberID)
	if err != nil {
		return removal.HistoryEntry{}, err
	}
	var latest *removal.HistoryEntry
	for i := range entries {
		if latest == nil || entries[i].RemovedAt.After(latest.RemovedAt) {
			latest = &entries[i]
		}
	}
	if latest == nil {
		return removal.HistoryEntry{}, ErrNothingToRestore
	}

	entry := *latest
	entry.ID = uuid.New().String()
	entry.RestoredAt = now
	entry.RestoredBy = input.RestoredBy
	entry.RestorationReason = input.Reason
	if err := deps.RemovalStore.Append(ctx, entry); err != nil {
		return removal.HistoryEntry{}, fmt.Errorf("append restoration entry: %w", err)
	}

	if deps.EmailSender != nil && input.MemberEmail != "" {
		_, err := deps.EmailSender.Send(ctx, email.SendRequest{
			To:      []string{input.MemberEmail},
			From:    deps.EmailFrom,
			Subject: "Thông báo khôi phục danh sách sinh hoạt",
			HTML: fmt.Sprintf("<p>Bạn đã được khôi phục vào danh sách sinh hoạt.</p><p>Ghi chú: %s</p>",
				input.Reason),
		})
		if err != nil {
			slog.Warn("restoration_notification_failed", "member_id", input.MemberID, "error", err)
		}
	}
	return entry, nil
}
