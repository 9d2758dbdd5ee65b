package orchestrators

import (
	"context"
	"time"

	"clubadmin/internal/domain/account"

	"github.com/google/uuid"
)

// AccountStore defines the interface for account persistence.
type AccountStore interface {
	Save(ctx context.Context, a account.Account) error
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	Count(ctx context.Context) (int, error)
}

// SeedAdminDeps holds dependencies for SeedAdmin.
type SeedAdminDeps struct {
	AccountStore AccountStore
}

// ExecuteSeedAdmin creates the default admin account when the account
// table is empty. Idempotent across restarts.
// PRE: email and password satisfy account validation rules
// POST: At least one admin account exists
func ExecuteSeedAdmin(ctx context.Context, deps SeedAdminDeps, email, password string) error {
	n, err := deps.AccountStore.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	admin := account.Account{
		ID:        uuid.New().String(),
		Email:     email,
		Role:      account.RoleAdmin,
		CreatedAt: time.Now(),
	}
	if err := admin.SetPassword(password); err != nil {
		return err
	}
	if err := admin.Validate(); err != nil {
		return err
	}
	return deps.AccountStore.Save(ctx, admin)
}
