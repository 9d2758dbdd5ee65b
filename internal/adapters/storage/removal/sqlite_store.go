package removal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"clubadmin/internal/adapters/storage"
	domain "clubadmin/internal/domain/removal"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new RemovalStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const removalColumns = "id, member_id, removed_at, removed_by_id, removed_by_name, removed_by_external_id, removal_reason, restored_at, restored_by_id, restored_by_name, restored_by_external_id, restoration_reason"

// Append inserts a history entry. There is no update path.
// PRE: entry has been validated
// POST: Entry is persisted; existing entries are untouched
func (s *SQLiteStore) Append(ctx context.Context, e domain.HistoryEntry) error {
	var restoredAt any
	if !e.RestoredAt.IsZero() {
		restoredAt = e.RestoredAt.Format(time.RFC3339Nano)
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO removal_history ("+removalColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		e.ID,
		e.MemberID,
		e.RemovedAt.Format(time.RFC3339Nano),
		e.RemovedBy.ID,
		e.RemovedBy.Name,
		e.RemovedBy.ExternalID,
		e.RemovalReason,
		restoredAt,
		e.RestoredBy.ID,
		e.RestoredBy.Name,
		e.RestoredBy.ExternalID,
		e.RestorationReason,
	)
	return err
}

// ListByMember returns a member's history entries, oldest first.
// PRE: memberID is non-empty
// POST: Returns matching entries in removed_at order
func (s *SQLiteStore) ListByMember(ctx context.Context, memberID string) ([]domain.HistoryEntry, error) {
	query := "SELECT " + removalColumns + " FROM removal_history WHERE member_id = ? ORDER BY removed_at, id"
	rows, err := s.db.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows)
}

// ListAll returns every history entry, oldest first.
// PRE: none
// POST: Returns all entries in removed_at order
func (s *SQLiteStore) ListAll(ctx context.Context) ([]domain.HistoryEntry, error) {
	query := "SELECT " + removalColumns + " FROM removal_history ORDER BY removed_at, id"
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows)
}

func collectEntries(rows *sql.Rows) ([]domain.HistoryEntry, error) {
	var results []domain.HistoryEntry
	for rows.Next() {
		var e domain.HistoryEntry
		var removedAt string
		var restoredAt sql.NullString
		if err := rows.Scan(
			&e.ID,
			&e.MemberID,
			&removedAt,
			&e.RemovedBy.ID,
			&e.RemovedBy.Name,
			&e.RemovedBy.ExternalID,
			&e.RemovalReason,
			&restoredAt,
			&e.RestoredBy.ID,
			&e.RestoredBy.Name,
			&e.RestoredBy.ExternalID,
			&e.RestorationReason,
		); err != nil {
			return nil, err
		}
		e.RemovedAt, _ = parseTime(removedAt)
		if restoredAt.Valid && restoredAt.String != "" {
			e.RestoredAt, _ = parseTime(restoredAt.String)
		}
		results = append(results, e)
	}
	return results, rows.Err()
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		t, err := time.Parse(f, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time: %s", s)
}
