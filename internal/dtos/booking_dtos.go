package dtos

import "github.com/LLEndaya/LeaseUp/internal/models"

type BookUnitRequest struct {
	UnitID    FormValue `json:"unit_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Notes     string    `json:"notes"`
}

type BookingRequestView struct {
	models.BookingRequest
	UnitNumber string `json:"unit_number,omitempty"`
	Username   string `json:"username,omitempty"`
	Email      string `json:"email,omitempty"`
}

type BookingRequestsResponse struct {
	Requests []BookingRequestView `json:"requests"`
}

type PurgeResponse struct {
	OK       bool   `json:"ok"`
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
	Deleted  int64  `json:"deleted"`
}
