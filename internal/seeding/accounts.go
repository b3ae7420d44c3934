package seeding

import (
	"context"
	"fmt"
	"time"

	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/repositories"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

const (
	DefaultAdminPassword  = "admin1234"
	DefaultTenantUsername = "tenant"
	DefaultTenantEmail    = "tenant@example.com"
	DefaultTenantPassword = "tenant123"
)

// SeedDefaultAdmin inserts the "admin" account unless it already exists.
func SeedDefaultAdmin(ctx context.Context, adminRepo repositories.AdminRepository) error {
	existing, err := adminRepo.GetByUsername(ctx, utils.DefaultAdmin)
	if err != nil {
		return fmt.Errorf("error checking for existing admin: %w", err)
	}
	if existing != nil {
		utils.Logger.Infof("Default admin already exists (ID=%d); skipping seed.", existing.ID)
		return nil
	}

	hash, err := utils.HashPassword(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}
	admin := &models.Admin{Username: utils.DefaultAdmin, PasswordHash: hash}
	if err := adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to insert default admin: %w", err)
	}
	utils.Logger.Infof("Successfully seeded default admin (ID=%d, username=%s).", admin.ID, admin.Username)
	return nil
}

// SeedDefaultTenantAccount inserts the demo tenant login unless its
// username is taken.
func SeedDefaultTenantAccount(ctx context.Context, repo repositories.TenantAccountRepository) error {
	existing, err := repo.GetByUsername(ctx, DefaultTenantUsername)
	if err != nil {
		return fmt.Errorf("error checking for existing tenant account: %w", err)
	}
	if existing != nil {
		utils.Logger.Infof("Default tenant account already exists (ID=%d); skipping seed.", existing.ID)
		return nil
	}

	hash, err := utils.HashPassword(DefaultTenantPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default tenant password: %w", err)
	}
	acct := &models.TenantAccount{Username: DefaultTenantUsername, Email: DefaultTenantEmail, PasswordHash: hash}
	if err := repo.Create(ctx, acct); err != nil {
		return fmt.Errorf("failed to insert default tenant account: %w", err)
	}
	utils.Logger.Infof("Successfully seeded default tenant account (ID=%d, username=%s).", acct.ID, acct.Username)
	return nil
}

// SeedAll runs every seeder. Demo data and the two accounts are checked
// independently.
func SeedAll(ctx context.Context, store repositories.Store, now func() time.Time) error {
	if err := SeedDemoData(ctx, store, now()); err != nil {
		return err
	}
	repos := store.Repos()
	if err := SeedDefaultAdmin(ctx, repos.Admins); err != nil {
		return err
	}
	return SeedDefaultTenantAccount(ctx, repos.TenantAccounts)
}
