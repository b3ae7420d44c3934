package testhelpers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

// FastHashing drops bcrypt to its minimum cost for the duration of t.
func FastHashing(t testing.TB) {
	t.Helper()
	prev := utils.PasswordHashCost
	utils.PasswordHashCost = bcrypt.MinCost
	t.Cleanup(func() { utils.PasswordHashCost = prev })
}

// Date builds a UTC calendar date.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *MemStore) MustAdmin(t testing.TB, username, password string) *models.Admin {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	a := &models.Admin{Username: username, PasswordHash: hash}
	require.NoError(t, s.Repos().Admins.Create(context.Background(), a))
	return a
}

func (s *MemStore) MustTenantAccount(t testing.TB, username, email, password string) *models.TenantAccount {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	acct := &models.TenantAccount{Username: username, Email: email, PasswordHash: hash}
	require.NoError(t, s.Repos().TenantAccounts.Create(context.Background(), acct))
	return acct
}

func (s *MemStore) MustProperty(t testing.TB, name string) *models.Property {
	t.Helper()
	p := &models.Property{Name: name, Address: name + " address"}
	require.NoError(t, s.Repos().Properties.Create(context.Background(), p))
	return p
}

func (s *MemStore) MustUnit(t testing.TB, propertyID int64, number string, status models.UnitStatus) *models.Unit {
	t.Helper()
	u := &models.Unit{Number: number, Status: status, PropertyID: propertyID}
	require.NoError(t, s.Repos().Units.Create(context.Background(), u))
	return u
}

func (s *MemStore) MustTenant(t testing.TB, name, email string) *models.Tenant {
	t.Helper()
	tn := &models.Tenant{Name: name}
	if email != "" {
		tn.Email = utils.Ptr(email)
	}
	require.NoError(t, s.Repos().Tenants.Create(context.Background(), tn))
	return tn
}

func (s *MemStore) MustLease(t testing.TB, unitID, tenantID int64, start time.Time, rent float64) *models.Lease {
	t.Helper()
	l := &models.Lease{
		UnitID:      unitID,
		TenantID:    tenantID,
		StartDate:   utils.Ptr(start),
		EndDate:     utils.Ptr(start.AddDate(1, 0, 0)),
		MonthlyRent: rent,
	}
	require.NoError(t, s.Repos().Leases.Create(context.Background(), l))
	return l
}

func (s *MemStore) MustPayment(t testing.TB, leaseID int64, amount float64) *models.Payment {
	t.Helper()
	p := &models.Payment{LeaseID: leaseID, Amount: amount}
	require.NoError(t, s.Repos().Payments.Create(context.Background(), p))
	return p
}

func (s *MemStore) MustBooking(t testing.TB, unitID, accountID int64, status models.BookingStatus) *models.BookingRequest {
	t.Helper()
	b := &models.BookingRequest{
		UnitID:          unitID,
		TenantAccountID: accountID,
		StartDate:       Date(2025, time.January, 1),
		EndDate:         Date(2025, time.December, 31),
		Status:          status,
	}
	require.NoError(t, s.Repos().BookingRequests.Create(context.Background(), b))
	return b
}

func (s *MemStore) MustContact(t testing.TB, unitIdentifier, name, phone string) *models.EmergencyContact {
	t.Helper()
	c := &models.EmergencyContact{UnitIdentifier: unitIdentifier, Name: name, Phone: phone}
	require.NoError(t, s.Repos().EmergencyContacts.Create(context.Background(), c))
	return c
}

// CountBookings returns how many booking requests of status exist; an
// empty status counts all.
func (s *MemStore) CountBookings(status models.BookingStatus) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.state.bookingRequests.rows {
		if status == "" || b.Status == status {
			n++
		}
	}
	return n
}
