package orchestrators

import (
	"context"
	"database/sql"
	"testing"

	"clubadmin/internal/domain/account"
)

// mockAccountStore implements AccountStore for testing.
type mockAccountStore struct {
	accounts map[string]account.Account
}

// Save implements AccountStore for testing.
// PRE: account is validated
// POST: account is recorded by ID
func (m *mockAccountStore) Save(_ context.Context, a account.Account) error {
	m.accounts[a.ID] = a
	return nil
}

// GetByEmail implements AccountStore for testing.
// PRE: email is non-empty
// POST: Returns the stored account or sql.ErrNoRows
func (m *mockAccountStore) GetByEmail(_ context.Context, email string) (account.Account, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return account.Account{}, sql.ErrNoRows
}

// Count implements AccountStore for testing.
// PRE: none
// POST: Returns the number of stored accounts
func (m *mockAccountStore) Count(_ context.Context) (int, error) {
	return len(m.accounts), nil
}

// TestExecuteSeedAdmin tests first-run admin creation and idempotence.
func TestExecuteSeedAdmin(t *testing.T) {
	store := &mockAccountStore{accounts: map[string]account.Account{}}
	deps := SeedAdminDeps{AccountStore: store}

	if err := ExecuteSeedAdmin(context.Background(), deps, "bithu@chidoan.vn", "mat khau rat dai"); err != nil {
		t.Fatalf("expected seed, got: %v", err)
	}
	admin, err := store.GetByEmail(context.Background(), "bithu@chidoan.vn")
	if err != nil {
		t.Fatalf("expected seeded admin, got: %v", err)
	}
	if admin.Role != account.RoleAdmin {
		t.Fatalf("expected admin role, got %q", admin.Role)
	}
	if err := admin.CheckPassword("mat khau rat dai"); err != nil {
		t.Fatalf("expected password to verify, got: %v", err)
	}

	// Second run with accounts present is a no-op.
	if err := ExecuteSeedAdmin(context.Background(), deps, "other@chidoan.vn", "mat khau rat dai"); err != nil {
		t.Fatalf("expected idempotent seed, got: %v", err)
	}
	if len(store.accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(store.accounts))
	}
}

// TestExecuteSeedAdmin_ShortPassword tests password policy enforcement.
func TestExecuteSeedAdmin_ShortPassword(t *testing.T) {
	store := &mockAccountStore{accounts: map[string]account.Account{}}
	err := ExecuteSeedAdmin(context.Background(), SeedAdminDeps{AccountStore: store}, "bithu@chidoan.vn", "short")
	if err != account.ErrPasswordTooShort {
		t.Fatalf("expected %v, got: %v", account.ErrPasswordTooShort, err)
	}
}
