package models

import "time"

// Tenant is the lease-party record. It is created directly by an admin
// or on booking approval, matched by email.
type Tenant struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

type Lease struct {
	ID          int64      `json:"id"`
	UnitID      int64      `json:"unit_id"`
	TenantID    int64      `json:"tenant_id"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	MonthlyRent float64    `json:"monthly_rent"`
}

type Payment struct {
	ID      int64     `json:"id"`
	LeaseID int64     `json:"lease_id"`
	Amount  float64   `json:"amount"`
	PaidAt  time.Time `json:"paid_at"`
}
