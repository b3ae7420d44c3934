package routes

const (
	// Health
	Health = "/health"

	Home      = "/"
	Dashboard = "/dashboard"

	// ───────────────────────────────
	// Auth
	// ───────────────────────────────
	TenantSignup   = "/tenant-signup"
	TenantLogin    = "/tenant-login"
	TenantLogout   = "/tenant-logout"
	AdminLogin     = "/login"
	AdminLogout    = "/logout"
	AdminAutologin = "/admin-autologin"
	ChangePassword = "/change-password"

	// ───────────────────────────────
	// Booking workflow
	// ───────────────────────────────
	BookUnit              = "/book-unit"
	BookingRequests       = "/booking-requests"
	BookingRequestApprove = "/booking-request/{id:[0-9]+}/approve"
	BookingRequestReject  = "/booking-request/{id:[0-9]+}/reject"
	BookingPurgeRejected  = "/booking-requests/purge-rejected"

	// Emergency lookup (public)
	EmergencySearch = "/emergency"

	// ───────────────────────────────
	// CRUD groups (relative to each group's base)
	// ───────────────────────────────
	Properties        = "/properties"
	Units             = "/units"
	Tenants           = "/tenants"
	Leases            = "/leases"
	Payments          = "/payments"
	Maintenance       = "/maintenance"
	EmergencyContacts = "/emergency-contacts"

	ItemNew    = "/new"
	Item       = "/{id:[0-9]+}"
	ItemEdit   = "/{id:[0-9]+}/edit"
	ItemDelete = "/{id:[0-9]+}/delete"
)
