package activity

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"clubadmin/internal/adapters/storage"
	domain "clubadmin/internal/domain/activity"
	"clubadmin/internal/domain/location"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new ActivityStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const activityColumns = "id, title, kind, date, start_date, end_date, loc_address, loc_lat, loc_lng, loc_radius, created_by, created_at"

// GetByID retrieves an Activity with its time slots and day schedules.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Activity, error) {
	query := "SELECT " + activityColumns + " FROM activity WHERE id = ?"
	row := s.db.QueryRowContext(ctx, query, id)

	entity, err := scanActivity(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Activity{}, fmt.Errorf("activity not found: %w", err)
	}
	if err != nil {
		return domain.Activity{}, err
	}

	slots, err := s.loadSlots(ctx, "WHERE activity_id = ?", id)
	if err != nil {
		return domain.Activity{}, err
	}
	entity.TimeSlots = slots[id]

	days, err := s.loadDays(ctx, "WHERE activity_id = ?", id)
	if err != nil {
		return domain.Activity{}, err
	}
	entity.Schedule = days[id]

	return entity, nil
}

// List retrieves all activities with their time slots and day schedules,
// newest first.
// PRE: none
// POST: Returns all entities
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Activity, error) {
	query := "SELECT " + activityColumns + " FROM activity ORDER BY created_at DESC"
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Activity
	for rows.Next() {
		entity, err := scanActivity(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	slots, err := s.loadSlots(ctx, "")
	if err != nil {
		return nil, err
	}
	days, err := s.loadDays(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].TimeSlots = slots[results[i].ID]
		results[i].Schedule = days[results[i].ID]
	}
	return results, nil
}

// Save persists an Activity and its child rows in one transaction. Time
// slots and day schedules are replaced wholesale; the parent row is
// upserted.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Activity) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	locAddr, locLat, locLng, locRadius := locationArgs(entity.Location)
	query := `INSERT INTO activity (` + activityColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title=excluded.title,
			kind=excluded.kind,
			date=excluded.date,
			start_date=excluded.start_date,
			end_date=excluded.end_date,
			loc_address=excluded.loc_address,
			loc_lat=excluded.loc_lat,
			loc_lng=excluded.loc_lng,
			loc_radius=excluded.loc_radius`

	_, err = tx.ExecContext(ctx, query,
		entity.ID,
		entity.Title,
		entity.Kind,
		entity.Date,
		entity.StartDate,
		entity.EndDate,
		locAddr, locLat, locLng, locRadius,
		entity.CreatedBy,
		entity.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM activity_time_slot WHERE activity_id = ?", entity.ID); err != nil {
		return err
	}
	for i, slot := range entity.TimeSlots {
		slotAddr, slotLat, slotLng, slotRadius := locationArgs(slot.Location)
		_, err := tx.ExecContext(ctx,
			`INSERT INTO activity_time_slot
				(activity_id, slot_key, start_time, end_time, is_active, activities, detailed_location, loc_address, loc_lat, loc_lng, loc_radius, position)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			entity.ID,
			slot.SlotKey,
			slot.StartTime,
			slot.EndTime,
			slot.IsActive,
			slot.Activities,
			slot.DetailedLocation,
			slotAddr, slotLat, slotLng, slotRadius,
			i,
		)
		if err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM activity_day WHERE activity_id = ?", entity.ID); err != nil {
		return err
	}
	for _, day := range entity.Schedule {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO activity_day (activity_id, day, date, raw_text) VALUES (?, ?, ?, ?)",
			entity.ID, day.Day, day.Date, day.RawText,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Delete removes an Activity and its child rows.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Child rows first: cascade depends on foreign_keys being enabled,
	// which is per-connection in SQLite.
	if _, err := tx.ExecContext(ctx, "DELETE FROM activity_time_slot WHERE activity_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM activity_day WHERE activity_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM activity WHERE id = ?", id); err != nil {
		return err
	}
	return tx.Commit()
}

// loadSlots returns time slots grouped by activity ID, in authored order.
func (s *SQLiteStore) loadSlots(ctx context.Context, where string, args ...any) (map[string][]domain.TimeSlotDefinition, error) {
	query := "SELECT activity_id, slot_key, start_time, end_time, is_active, activities, detailed_location, loc_address, loc_lat, loc_lng, loc_radius FROM activity_time_slot " + where + " ORDER BY activity_id, position"
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string][]domain.TimeSlotDefinition)
	for rows.Next() {
		var activityID string
		var slot domain.TimeSlotDefinition
		var addr sql.NullString
		var lat, lng sql.NullFloat64
		var radius sql.NullInt64
		if err := rows.Scan(
			&activityID,
			&slot.SlotKey,
			&slot.StartTime,
			&slot.EndTime,
			&slot.IsActive,
			&slot.Activities,
			&slot.DetailedLocation,
			&addr, &lat, &lng, &radius,
		); err != nil {
			return nil, err
		}
		slot.Location = scanLocation(addr, lat, lng, radius, location.ScopePerTimeSlot)
		result[activityID] = append(result[activityID], slot)
	}
	return result, rows.Err()
}

// loadDays returns day schedules grouped by activity ID, in day order.
func (s *SQLiteStore) loadDays(ctx context.Context, where string, args ...any) (map[string][]domain.DaySchedule, error) {
	query := "SELECT activity_id, day, date, raw_text FROM activity_day " + where + " ORDER BY activity_id, day"
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string][]domain.DaySchedule)
	for rows.Next() {
		var activityID string
		var day domain.DaySchedule
		if err := rows.Scan(&activityID, &day.Day, &day.Date, &day.RawText); err != nil {
			return nil, err
		}
		result[activityID] = append(result[activityID], day)
	}
	return result, rows.Err()
}

// scanActivity extracts an Activity row (without child rows) from a
// row scanner function.
func scanActivity(scan func(dest ...interface{}) error) (domain.Activity, error) {
	var entity domain.Activity
	var createdAt string
	var addr sql.NullString
	var lat, lng sql.NullFloat64
	var radius sql.NullInt64
	err := scan(
		&entity.ID,
		&entity.Title,
		&entity.Kind,
		&entity.Date,
		&entity.StartDate,
		&entity.EndDate,
		&addr, &lat, &lng, &radius,
		&entity.CreatedBy,
		&createdAt,
	)
	if err != nil {
		return domain.Activity{}, err
	}
	entity.Location = scanLocation(addr, lat, lng, radius, location.ScopeGlobal)
	entity.CreatedAt, _ = parseTime(createdAt)
	return entity, nil
}

// locationArgs flattens an optional assignment into the four nullable
// location columns.
func locationArgs(a *location.Assignment) (addr, lat, lng, radius any) {
	if a == nil {
		return nil, nil, nil, nil
	}
	return a.Address, a.Lat, a.Lng, a.Radius
}

// scanLocation rebuilds an assignment from the nullable column group.
// A NULL address means no assignment was stored.
func scanLocation(addr sql.NullString, lat, lng sql.NullFloat64, radius sql.NullInt64, scope string) *location.Assignment {
	if !addr.Valid {
		return nil
	}
	return &location.Assignment{
		Address: addr.String,
		Lat:     lat.Float64,
		Lng:     lng.Float64,
		Radius:  int(radius.Int64),
		Scope:   scope,
	}
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
