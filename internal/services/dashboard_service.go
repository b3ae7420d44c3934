package services

import (
	"context"
	"time"

	"github.com/LLEndaya/LeaseUp/internal/dtos"
	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/repositories"
)

type DashboardService struct {
	store repositories.Store
	now   func() time.Time
}

func NewDashboardService(store repositories.Store) *DashboardService {
	return &DashboardService{store: store, now: time.Now}
}

// WithClock overrides the reporting date; tests pin it.
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

func (s *DashboardService) Build(ctx context.Context, p *models.Principal) (*dtos.DashboardResponse, error) {
	repos := s.store.Repos()
	today := dateOnly(s.now().UTC())

	units, err := repos.Units.List(ctx)
	if err != nil {
		return nil, internalErr(err)
	}
	leases, err := repos.Leases.List(ctx)
	if err != nil {
		return nil, internalErr(err)
	}
	props, err := repos.Properties.List(ctx)
	if err != nil {
		return nil, internalErr(err)
	}
	propsByID := make(map[int64]*models.Property, len(props))
	for _, pr := range props {
		propsByID[pr.ID] = pr
	}

	latest := LatestLeases(leases)
	resp := &dtos.DashboardResponse{
		IsAdmin: p.IsAdmin(),
		Principal: dtos.PrincipalResponse{
			Role:     p.Role.String(),
			ID:       p.ID,
			Username: p.Username,
			Email:    p.Email,
		},
		AvailableUnits: AvailableUnits(units, latest, propsByID),
	}

	switch p.Role {
	case models.RoleTenant:
		mine, err := repos.BookingRequests.ListByTenantAccountID(ctx, p.ID)
		if err != nil {
			return nil, internalErr(err)
		}
		resp.MyRequests = mine
		return resp, nil
	case models.RoleAdmin:
	default:
		return resp, nil
	}

	tenants, err := repos.Tenants.List(ctx)
	if err != nil {
		return nil, internalErr(err)
	}
	paid, err := repos.Payments.TotalsByLease(ctx)
	if err != nil {
		return nil, internalErr(err)
	}
	tenantNames := make(map[int64]string, len(tenants))
	for _, t := range tenants {
		tenantNames[t.ID] = t.Name
	}

	resp.Units = units
	resp.Tenants = tenants
	resp.Upcoming = UpcomingExpirations(leases, today)
	resp.Balances = LeaseBalances(leases, paid, today)

	balanceByLease := make(map[int64]float64, len(resp.Balances))
	for _, b := range resp.Balances {
		balanceByLease[b.Lease.ID] = b.Balance
	}
	resp.UnitBalances = make(map[int64]float64)
	resp.UnitTenants = make(map[int64]*string)
	resp.UnitLatestRent = make(map[int64]float64, len(units))
	for _, u := range units {
		resp.UnitLatestRent[u.ID] = 0
	}
	for unitID, l := range latest {
		if bal, ok := balanceByLease[l.ID]; ok {
			resp.UnitBalances[unitID] = bal
		}
		if name, ok := tenantNames[l.TenantID]; ok {
			resp.UnitTenants[unitID] = &name
		} else {
			resp.UnitTenants[unitID] = nil
		}
		resp.UnitLatestRent[unitID] = l.MonthlyRent
	}
	return resp, nil
}
