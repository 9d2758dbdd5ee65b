package account

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"clubadmin/internal/adapters/storage"
	domain "clubadmin/internal/domain/account"
)

// openTestDB creates a migrated in-memory SQLite database for testing.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	db.SetMaxOpenConns(1)
	if err := storage.MigrateDB(db, ":memory:"); err != nil {
		t.Fatalf("MigrateDB failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestSQLiteStore_SaveAndGet verifies accounts round-trip by ID and email.
func TestSQLiteStore_SaveAndGet(t *testing.T) {
	store := NewSQLiteStore(openTestDB(t))
	ctx := context.Background()

	want := domain.Account{
		ID:           "acc-1",
		Email:        "bithu@chidoan.vn",
		PasswordHash: "$2a$12$fakehash",
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.GetByID(ctx, "acc-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Email != want.Email || got.Role != want.Role || got.PasswordHash != want.PasswordHash {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, want.CreatedAt)
	}

	byEmail, err := store.GetByEmail(ctx, "bithu@chidoan.vn")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if byEmail.ID != "acc-1" {
		t.Errorf("GetByEmail ID = %q, want acc-1", byEmail.ID)
	}
}

// TestSQLiteStore_Save_Upsert verifies re-saving updates in place.
func TestSQLiteStore_Save_Upsert(t *testing.T) {
	store := NewSQLiteStore(openTestDB(t))
	ctx := context.Background()

	a := domain.Account{ID: "acc-1", Email: "a@test.vn", Role: domain.RoleMember, CreatedAt: time.Now()}
	if err := store.Save(ctx, a); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	a.Role = domain.RoleAdmin
	if err := store.Save(ctx, a); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := store.GetByID(ctx, "acc-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Role != domain.RoleAdmin {
		t.Errorf("Role = %q, want admin after upsert", got.Role)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

// TestSQLiteStore_Delete verifies removal and the not-found error path.
func TestSQLiteStore_Delete(t *testing.T) {
	store := NewSQLiteStore(openTestDB(t))
	ctx := context.Background()

	a := domain.Account{ID: "acc-1", Email: "a@test.vn", Role: domain.RoleMember, CreatedAt: time.Now()}
	if err := store.Save(ctx, a); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Delete(ctx, "acc-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.GetByID(ctx, "acc-1"); err == nil {
		t.Error("expected error after delete, got nil")
	}
}

// TestSQLiteStore_Count_Empty verifies the seed-admin precondition check.
func TestSQLiteStore_Count_Empty(t *testing.T) {
	store := NewSQLiteStore(openTestDB(t))

	n, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Count = %d, want 0", n)
	}
}
