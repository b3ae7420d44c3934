package dtos

type PropertyRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Address string `json:"address" validate:"max=500"`
}

type UnitRequest struct {
	Number     string    `json:"number" validate:"required,max=100"`
	Status     string    `json:"status" validate:"omitempty,oneof=vacant occupied"`
	PropertyID FormValue `json:"property_id"`
}

type TenantRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Phone string `json:"phone" validate:"max=50"`
	Email string `json:"email" validate:"omitempty,email"`
}

type LeaseRequest struct {
	UnitID      FormValue `json:"unit_id"`
	TenantID    FormValue `json:"tenant_id"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	MonthlyRent FormValue `json:"monthly_rent"`
}

type PaymentRequest struct {
	LeaseID FormValue `json:"lease_id"`
	Amount  FormValue `json:"amount"`
}

type MaintenanceRequest struct {
	UnitID      FormValue `json:"unit_id"`
	Description string    `json:"description" validate:"max=5000"`
	Status      string    `json:"status" validate:"omitempty,oneof=open in_progress completed"`
}

type EmergencyContactRequest struct {
	UnitIdentifier string `json:"unit_identifier" validate:"max=100"`
	Name           string `json:"name" validate:"max=120"`
	Phone          string `json:"phone" validate:"max=50"`
}

type EmergencySearchResponse struct {
	Query   string `json:"q"`
	Results any    `json:"results"`
}

type ListResponse struct {
	Items any `json:"items"`
}

// ItemResponse answers a JSON create or edit with the stored row.
type ItemResponse struct {
	OK       bool   `json:"ok"`
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
	Item     any    `json:"item"`
}
