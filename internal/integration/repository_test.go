//go:build integration

package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LLEndaya/LeaseUp/internal/dtos"
	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/notify"
	"github.com/LLEndaya/LeaseUp/internal/repositories"
	"github.com/LLEndaya/LeaseUp/internal/seeding"
	"github.com/LLEndaya/LeaseUp/internal/services"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

func mustUnit(t *testing.T, ctx context.Context, repos *repositories.Repos, number string) *models.Unit {
	t.Helper()
	p := &models.Property{Name: "Greenfield Heights", Address: "123 Main St"}
	require.NoError(t, repos.Properties.Create(ctx, p))
	u := &models.Unit{Number: number, Status: models.UnitVacant, PropertyID: p.ID}
	require.NoError(t, repos.Units.Create(ctx, u))
	return u
}

func TestAccountUniqueness(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repos := store.Repos()

	require.NoError(t, repos.Admins.Create(ctx, &models.Admin{Username: "admin", PasswordHash: "x"}))
	err := repos.Admins.Create(ctx, &models.Admin{Username: "admin", PasswordHash: "y"})
	assert.ErrorIs(t, err, utils.ErrUsernameTaken)

	require.NoError(t, repos.TenantAccounts.Create(ctx, &models.TenantAccount{Username: "u1", Email: "u1@example.com", PasswordHash: "x"}))
	err = repos.TenantAccounts.Create(ctx, &models.TenantAccount{Username: "u1", Email: "other@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, utils.ErrUsernameTaken)
	err = repos.TenantAccounts.Create(ctx, &models.TenantAccount{Username: "u2", Email: "u1@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, utils.ErrEmailTaken)

	// An admin and a tenant account may share a username and an id.
	acct, err := repos.TenantAccounts.GetByUsername(ctx, "u1")
	require.NoError(t, err)
	admin, err := repos.Admins.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, acct.ID)
}

func TestMissingRowsReportNoRows(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repos := store.Repos()

	got, err := repos.Leases.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, got)

	err = repos.Units.UpdateStatus(ctx, 42, models.UnitOccupied)
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
	err = repos.Tenants.Delete(ctx, 42)
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
}

func TestReferentialIntegrity(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repos := store.Repos()
	unit := mustUnit(t, ctx, repos, "Room 1")
	tenant := &models.Tenant{Name: "Juan Dela Cruz", Email: utils.Ptr("juan@example.com")}
	require.NoError(t, repos.Tenants.Create(ctx, tenant))
	lease := &models.Lease{UnitID: unit.ID, TenantID: tenant.ID, MonthlyRent: 5000}
	require.NoError(t, repos.Leases.Create(ctx, lease))

	err := repos.Units.Delete(ctx, unit.ID)
	assert.True(t, repositories.IsForeignKeyViolation(err))
	err = repos.Properties.Delete(ctx, unit.PropertyID)
	assert.True(t, repositories.IsForeignKeyViolation(err))

	err = repos.Leases.Create(ctx, &models.Lease{UnitID: 999, TenantID: tenant.ID})
	assert.True(t, repositories.IsForeignKeyViolation(err))

	require.NoError(t, repos.Payments.Create(ctx, &models.Payment{LeaseID: lease.ID, Amount: 3000}))
	require.NoError(t, repos.Payments.Create(ctx, &models.Payment{LeaseID: lease.ID, Amount: 2000}))
	totals, err := repos.Payments.TotalsByLease(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int64]float64{lease.ID: 5000}, totals)

	require.NoError(t, repos.Leases.Delete(ctx, lease.ID))
	payments, err := repos.Payments.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestEmergencySearchIsCaseSensitive(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repos := store.Repos()
	for _, c := range []*models.EmergencyContact{
		{UnitIdentifier: "Room 1", Name: "Juan Dela Cruz", Phone: "09171234567"},
		{UnitIdentifier: "Lobby", Name: "Security Desk", Phone: "09170000000"},
	} {
		require.NoError(t, repos.EmergencyContacts.Create(ctx, c))
	}

	got, err := repos.EmergencyContacts.Search(ctx, "Room 1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Juan Dela Cruz", got[0].Name)

	got, err = repos.EmergencyContacts.Search(ctx, "room 1")
	require.NoError(t, err)
	assert.Empty(t, got)

	// LIKE metacharacters are matched literally.
	got, err = repos.EmergencyContacts.Search(ctx, "%")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestApproveBookingAgainstPostgres(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repos := store.Repos()
	unit := mustUnit(t, ctx, repos, "Room 5")
	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)
	acct := &models.TenantAccount{Username: "u1", Email: "u1@example.com", PasswordHash: hash}
	require.NoError(t, repos.TenantAccounts.Create(ctx, acct))

	booking := services.NewBookingService(store, notify.Noop())
	req, err := booking.Submit(ctx, models.TenantPrincipal(acct), dtos.BookUnitRequest{
		UnitID: dtos.FormValue("1"), StartDate: "2026-11-01", EndDate: "2027-10-31",
	})
	require.NoError(t, err)

	res, err := booking.Approve(ctx, req.ID)
	require.NoError(t, err)
	assert.True(t, res.TenantCreated)
	assert.Equal(t, "u1", res.Tenant.Name)

	u, err := repos.Units.GetByID(ctx, unit.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UnitOccupied, u.Status)
	leases, err := repos.Leases.ListByUnitID(ctx, unit.ID)
	require.NoError(t, err)
	require.Len(t, leases, 1)
	assert.Equal(t, "2026-11-01", leases[0].StartDate.Format(utils.DateLayout))
	stored, err := repos.BookingRequests.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingApproved, stored.Status)

	_, err = booking.Approve(ctx, req.ID)
	require.Error(t, err)
	assert.Equal(t, 409, utils.AsAppError(err).StatusCode)
}

func TestWithTxRollsBack(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.WithTx(ctx, func(tx *repositories.Repos) error {
		if err := tx.Properties.Create(ctx, &models.Property{Name: "Riverside Towers"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	props, err := store.Repos().Properties.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, props)
}

func TestSeedAllAgainstPostgres(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	now := func() time.Time { return time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC) }

	require.NoError(t, seeding.SeedAll(ctx, store, now))
	require.NoError(t, seeding.SeedAll(ctx, store, now))

	props, err := store.Repos().Properties.List(ctx)
	require.NoError(t, err)
	assert.Len(t, props, 4)
	contacts, err := store.Repos().EmergencyContacts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, contacts, 5)
	admin, err := store.Repos().Admins.GetByUsername(ctx, utils.DefaultAdmin)
	require.NoError(t, err)
	assert.NotNil(t, admin)
}
