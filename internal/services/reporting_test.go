package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/services"
	"github.com/LLEndaya/LeaseUp/internal/testhelpers"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

var reportDay = testhelpers.Date(2026, time.October, 14)

func TestMonthsElapsed(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		want  int
	}{
		{"same month", testhelpers.Date(2026, time.October, 1), 0},
		{"day of month ignored", testhelpers.Date(2026, time.September, 30), 1},
		{"across a year", testhelpers.Date(2025, time.November, 20), 11},
		{"future start floors at zero", testhelpers.Date(2027, time.January, 1), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, services.MonthsElapsed(tc.start, reportDay))
		})
	}
}

func TestLeaseBalanceThreeMonthsIn(t *testing.T) {
	start := reportDay.AddDate(0, -3, 0)
	lease := &models.Lease{ID: 1, StartDate: &start, MonthlyRent: 5000}
	noStart := &models.Lease{ID: 2, MonthlyRent: 9000}

	got := services.LeaseBalances([]*models.Lease{lease, noStart}, map[int64]float64{1: 8000}, reportDay)
	require.Len(t, got, 1)
	assert.Equal(t, 15000.0, got[0].Expected)
	assert.Equal(t, 8000.0, got[0].Paid)
	assert.Equal(t, 7000.0, got[0].Balance)
}

func TestLeaseBalanceKeepsAccruingPastEndDate(t *testing.T) {
	start := testhelpers.Date(2025, time.October, 1)
	end := testhelpers.Date(2026, time.January, 1)
	lease := &models.Lease{ID: 1, StartDate: &start, EndDate: &end, MonthlyRent: 100}

	got := services.LeaseBalances([]*models.Lease{lease}, nil, reportDay)
	require.Len(t, got, 1)
	assert.Equal(t, 1200.0, got[0].Balance)
}

func TestLatestLeasesPicksHighestID(t *testing.T) {
	leases := []*models.Lease{
		{ID: 3, UnitID: 1, MonthlyRent: 300},
		{ID: 1, UnitID: 1, MonthlyRent: 100},
		{ID: 2, UnitID: 2, MonthlyRent: 200},
	}
	latest := services.LatestLeases(leases)
	assert.EqualValues(t, 3, latest[1].ID)
	assert.EqualValues(t, 2, latest[2].ID)
	assert.NotContains(t, latest, int64(9))
}

func TestUpcomingExpirationsIncludesPastDue(t *testing.T) {
	lease := func(id int64, days int) *models.Lease {
		return &models.Lease{ID: id, EndDate: utils.Ptr(reportDay.AddDate(0, 0, days))}
	}
	leases := []*models.Lease{lease(1, 30), lease(2, 31), lease(3, -5), lease(4, 0), {ID: 5}}

	got := services.UpcomingExpirations(leases, reportDay.Add(15*time.Hour))
	byID := make(map[int64]int)
	for _, u := range got {
		byID[u.Lease.ID] = u.DaysLeft
	}
	assert.Equal(t, map[int64]int{1: 30, 3: -5, 4: 0}, byID)
}

func TestAvailableUnits(t *testing.T) {
	units := []*models.Unit{
		{ID: 1, Number: "Room 1", Status: models.UnitVacant, PropertyID: 1},
		{ID: 2, Number: "Room 2", Status: models.UnitOccupied, PropertyID: 1},
		{ID: 3, Number: "Room 3", Status: models.UnitVacant, PropertyID: 9},
	}
	latest := map[int64]*models.Lease{1: {ID: 4, UnitID: 1, MonthlyRent: 4500}}
	props := map[int64]*models.Property{1: {ID: 1, Name: "Greenfield Heights"}}

	got := services.AvailableUnits(units, latest, props)
	require.Len(t, got, 2)
	assert.Equal(t, "Greenfield Heights", got[0].PropertyName)
	assert.Equal(t, 4500.0, got[0].MonthlyRent)
	assert.Equal(t, "Unknown", got[1].PropertyName)
	assert.Zero(t, got[1].MonthlyRent)
}

func TestDashboardForAdmin(t *testing.T) {
	store := testhelpers.NewMemStore()
	prop := store.MustProperty(t, "Greenfield Heights")
	leased := store.MustUnit(t, prop.ID, "Room 1", models.UnitOccupied)
	empty := store.MustUnit(t, prop.ID, "Room 2", models.UnitVacant)
	juan := store.MustTenant(t, "Juan Dela Cruz", "juan@example.com")
	lease := store.MustLease(t, leased.ID, juan.ID, reportDay.AddDate(0, -3, 0), 5000)
	store.MustPayment(t, lease.ID, 5000)
	store.MustPayment(t, lease.ID, 3000)

	svc := services.NewDashboardService(store).WithClock(func() time.Time { return reportDay })
	admin := &models.Principal{Role: models.RoleAdmin, ID: 1, Username: "admin"}

	resp, err := svc.Build(context.Background(), admin)
	require.NoError(t, err)
	assert.True(t, resp.IsAdmin)
	require.Len(t, resp.Balances, 1)
	assert.Equal(t, 7000.0, resp.Balances[0].Balance)
	assert.Equal(t, 7000.0, resp.UnitBalances[leased.ID])
	require.NotNil(t, resp.UnitTenants[leased.ID])
	assert.Equal(t, "Juan Dela Cruz", *resp.UnitTenants[leased.ID])
	assert.Equal(t, 5000.0, resp.UnitLatestRent[leased.ID])
	assert.Zero(t, resp.UnitLatestRent[empty.ID])
	assert.NotContains(t, resp.UnitTenants, empty.ID)
	require.Len(t, resp.AvailableUnits, 1)
	assert.Equal(t, empty.ID, resp.AvailableUnits[0].Unit.ID)
	assert.Empty(t, resp.Upcoming)
}

func TestDashboardForTenantShowsOwnRequests(t *testing.T) {
	testhelpers.FastHashing(t)
	store := testhelpers.NewMemStore()
	prop := store.MustProperty(t, "Sunrise Residences")
	unit := store.MustUnit(t, prop.ID, "Room 1", models.UnitVacant)
	me := store.MustTenantAccount(t, "u1", "u1@example.com", "secret1")
	other := store.MustTenantAccount(t, "u2", "u2@example.com", "secret2")
	mine := store.MustBooking(t, unit.ID, me.ID, models.BookingPending)
	store.MustBooking(t, unit.ID, other.ID, models.BookingPending)

	svc := services.NewDashboardService(store).WithClock(func() time.Time { return reportDay })
	resp, err := svc.Build(context.Background(), models.TenantPrincipal(me))
	require.NoError(t, err)
	assert.False(t, resp.IsAdmin)
	require.Len(t, resp.MyRequests, 1)
	assert.Equal(t, mine.ID, resp.MyRequests[0].ID)
	assert.Nil(t, resp.Balances)
	assert.Nil(t, resp.Units)
	require.Len(t, resp.AvailableUnits, 1)
}
