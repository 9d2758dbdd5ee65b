package storage

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// migration is one schema upgrade step. Migrations must be idempotent
// (IF NOT EXISTS / ADD COLUMN guarded by version) because a fresh and
// an upgraded database must end up identical.
type migration struct {
	version int
	name    string
	apply   func(*sql.DB) error
}

// migrations is the ordered chain. Append only; never edit a shipped
// entry — the drift test compares fresh and migrated schemas.
var migrations = []migration{
	{version: 1, name: "baseline", apply: InitDB},
}

// LatestSchemaVersion returns the highest migration version.
func LatestSchemaVersion() int {
	return migrations[len(migrations)-1].version
}

// SchemaVersion returns the current schema version, 0 for a database
// that has never been migrated.
// PRE: db is a valid database connection
// POST: Returns version >= 0
func SchemaVersion(db *sql.DB) (int, error) {
	var exists int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to check schema_version table: %w", err)
	}
	if exists == 0 {
		return 0, nil
	}
	var version int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// MigrateDB applies all pending migrations. A file-based database is
// copied aside first so a failed migration can be rolled back by hand.
// PRE: db is a valid connection, dsn is the path it was opened with
// POST: Schema is at LatestSchemaVersion; applied versions recorded
func MigrateDB(db *sql.DB, dsn string) error {
	current, err := SchemaVersion(db)
	if err != nil {
		return err
	}
	if current >= LatestSchemaVersion() {
		return nil
	}

	if err := backupDBFile(dsn); err != nil {
		return fmt.Errorf("pre-migration backup failed: %w", err)
	}

	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY, applied_at TEXT NOT NULL)"); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		slog.Info("applying_migration", "version", m.version, "name", m.name)
		if err := m.apply(db); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
		}
		if _, err := db.Exec("INSERT INTO schema_version (version, applied_at) VALUES (?, ?)",
			m.version, time.Now().UTC().Format(time.RFC3339)); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}
	}
	return nil
}

// backupDBFile copies the database file before migrating. In-memory
// databases have nothing to back up.
func backupDBFile(dsn string) error {
	if dsn == "" || dsn == ":memory:" {
		return nil
	}
	src, err := os.Open(dsn)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer src.Close()

	backupPath := fmt.Sprintf("%s.backup-%s", dsn, time.Now().UTC().Format("20060102T150405"))
	dst, err := os.Create(backupPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	slog.Info("database_backed_up", "path", backupPath)
	return nil
}
