package models

import "time"

type MaintenanceStatus string

const (
	MaintenanceOpen       MaintenanceStatus = "open"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceOpen, MaintenanceInProgress, MaintenanceCompleted:
		return true
	}
	return false
}

// MaintenanceRequest references its unit by a bare id with no foreign key.
type MaintenanceRequest struct {
	ID          int64             `json:"id"`
	UnitID      *int64            `json:"unit_id,omitempty"`
	Description string            `json:"description"`
	Status      MaintenanceStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingApproved BookingStatus = "approved"
	BookingRejected BookingStatus = "rejected"
)

// BookingRequest is a tenant account's request to lease a vacant unit.
type BookingRequest struct {
	ID              int64         `json:"id"`
	UnitID          int64         `json:"unit_id"`
	TenantAccountID int64         `json:"tenant_account_id"`
	StartDate       time.Time     `json:"start_date"`
	EndDate         time.Time     `json:"end_date"`
	Notes           string        `json:"notes"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
}

// EmergencyContact is keyed by a free-text unit identifier such as "Room 1".
type EmergencyContact struct {
	ID             int64  `json:"id"`
	UnitIdentifier string `json:"unit_identifier"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
}
