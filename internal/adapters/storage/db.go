package storage

import (
	"database/sql"
	"fmt"
)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec(baselineSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// baselineSchema creates all tables. Dates and wall-clock times are
// stored as text in the same layouts the domain uses (YYYY-MM-DD,
// HH:MM); full timestamps are RFC 3339. Location columns are nullable
// as a group: a row either has an assignment or all four are NULL.
const baselineSchema = `
	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS activity (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		kind TEXT NOT NULL,
		date TEXT NOT NULL DEFAULT '',
		start_date TEXT NOT NULL DEFAULT '',
		end_date TEXT NOT NULL DEFAULT '',
		loc_address TEXT,
		loc_lat REAL,
		loc_lng REAL,
		loc_radius INTEGER,
		created_by TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS activity_time_slot (
		activity_id TEXT NOT NULL,
		slot_key TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 0,
		activities TEXT NOT NULL DEFAULT '',
		detailed_location TEXT NOT NULL DEFAULT '',
		loc_address TEXT,
		loc_lat REAL,
		loc_lng REAL,
		loc_radius INTEGER,
		position INTEGER NOT NULL,
		PRIMARY KEY (activity_id, slot_key),
		FOREIGN KEY (activity_id) REFERENCES activity(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS activity_day (
		activity_id TEXT NOT NULL,
		day INTEGER NOT NULL,
		date TEXT NOT NULL DEFAULT '',
		raw_text TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (activity_id, day),
		FOREIGN KEY (activity_id) REFERENCES activity(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS removal_history (
		id TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		removed_at TEXT NOT NULL,
		removed_by_id TEXT NOT NULL DEFAULT '',
		removed_by_name TEXT NOT NULL DEFAULT '',
		removed_by_external_id TEXT NOT NULL DEFAULT '',
		removal_reason TEXT NOT NULL,
		restored_at TEXT,
		restored_by_id TEXT NOT NULL DEFAULT '',
		restored_by_name TEXT NOT NULL DEFAULT '',
		restored_by_external_id TEXT NOT NULL DEFAULT '',
		restoration_reason TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_removal_history_member
		ON removal_history(member_id, removed_at);
	`
