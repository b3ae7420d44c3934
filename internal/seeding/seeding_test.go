package seeding_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/seeding"
	"github.com/LLEndaya/LeaseUp/internal/testhelpers"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

var seedDay = func() time.Time { return time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC) }

func TestSeedAllPopulatesDemoData(t *testing.T) {
	testhelpers.FastHashing(t)
	store := testhelpers.NewMemStore()
	ctx := context.Background()

	require.NoError(t, seeding.SeedAll(ctx, store, seedDay))
	repos := store.Repos()

	props, err := repos.Properties.List(ctx)
	require.NoError(t, err)
	assert.Len(t, props, 4)

	units, err := repos.Units.List(ctx)
	require.NoError(t, err)
	require.Len(t, units, 4)
	occupied := 0
	for _, u := range units {
		if u.Status == models.UnitOccupied {
			occupied++
		}
	}
	assert.Equal(t, 2, occupied)

	leases, err := repos.Leases.List(ctx)
	require.NoError(t, err)
	require.Len(t, leases, 2)
	for _, l := range leases {
		assert.Equal(t, "2026-10-14", l.StartDate.Format(utils.DateLayout))
		assert.Equal(t, "2027-10-14", l.EndDate.Format(utils.DateLayout))
	}

	contacts, err := repos.EmergencyContacts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, contacts, 5)

	tickets, err := repos.Maintenance.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tickets, 1)

	admin, err := repos.Admins.GetByUsername(ctx, utils.DefaultAdmin)
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.True(t, utils.CheckPasswordHash(seeding.DefaultAdminPassword, admin.PasswordHash))

	tenant, err := repos.TenantAccounts.GetByUsername(ctx, seeding.DefaultTenantUsername)
	require.NoError(t, err)
	require.NotNil(t, tenant)
	assert.Equal(t, seeding.DefaultTenantEmail, tenant.Email)
}

func TestSeedAllIsIdempotent(t *testing.T) {
	testhelpers.FastHashing(t)
	store := testhelpers.NewMemStore()
	ctx := context.Background()

	require.NoError(t, seeding.SeedAll(ctx, store, seedDay))
	require.NoError(t, seeding.SeedAll(ctx, store, seedDay))

	props, err := store.Repos().Properties.List(ctx)
	require.NoError(t, err)
	assert.Len(t, props, 4)
	tenants, err := store.Repos().Tenants.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tenants, 2)
}

func TestSeedAccountsIndependentOfDemoData(t *testing.T) {
	testhelpers.FastHashing(t)
	store := testhelpers.NewMemStore()
	store.MustProperty(t, "Existing Property")
	ctx := context.Background()

	require.NoError(t, seeding.SeedAll(ctx, store, seedDay))

	props, err := store.Repos().Properties.List(ctx)
	require.NoError(t, err)
	assert.Len(t, props, 1)
	admin, err := store.Repos().Admins.GetByUsername(ctx, utils.DefaultAdmin)
	require.NoError(t, err)
	assert.NotNil(t, admin)
}

func TestSeedDemoDataRollsBackOnFailure(t *testing.T) {
	store := testhelpers.NewMemStore()
	store.FailOn("Maintenance.Create", errors.New("disk full"))
	ctx := context.Background()

	err := seeding.SeedDemoData(ctx, store, seedDay())
	require.Error(t, err)

	props, err := store.Repos().Properties.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, props)
	contacts, err := store.Repos().EmergencyContacts.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}
