package dtos

import "github.com/LLEndaya/LeaseUp/internal/models"

type LeaseBalance struct {
	Lease    models.Lease `json:"lease"`
	Expected float64      `json:"expected"`
	Paid     float64      `json:"paid"`
	Balance  float64      `json:"balance"`
}

type AvailableUnit struct {
	Unit         models.Unit `json:"unit"`
	MonthlyRent  float64     `json:"monthly_rent"`
	PropertyName string      `json:"property_name"`
}

type UpcomingExpiration struct {
	Lease    models.Lease `json:"lease"`
	DaysLeft int          `json:"days_left"`
}

// DashboardResponse carries both role views; admin-only fields are left
// empty for tenants.
type DashboardResponse struct {
	IsAdmin   bool              `json:"is_admin"`
	Principal PrincipalResponse `json:"principal"`
	Flash     string            `json:"flash,omitempty"`

	Units          []*models.Unit       `json:"units,omitempty"`
	Tenants        []*models.Tenant     `json:"tenants,omitempty"`
	Upcoming       []UpcomingExpiration `json:"upcoming,omitempty"`
	Balances       []LeaseBalance       `json:"balances,omitempty"`
	UnitBalances   map[int64]float64    `json:"unit_balances,omitempty"`
	UnitTenants    map[int64]*string    `json:"unit_tenants,omitempty"`
	UnitLatestRent map[int64]float64    `json:"unit_latest_rent,omitempty"`

	AvailableUnits []AvailableUnit          `json:"available_units"`
	MyRequests     []*models.BookingRequest `json:"my_requests,omitempty"`
}
