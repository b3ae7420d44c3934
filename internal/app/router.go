package app

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/LLEndaya/LeaseUp/internal/config"
	"github.com/LLEndaya/LeaseUp/internal/controllers"
	"github.com/LLEndaya/LeaseUp/internal/middleware"
	"github.com/LLEndaya/LeaseUp/internal/models"
	"github.com/LLEndaya/LeaseUp/internal/repositories"
	"github.com/LLEndaya/LeaseUp/internal/routes"
)

const adminOnly = "Admin access only."

// NewRouter registers every endpoint. Session restore runs for all
// routes; role gates are applied per subrouter.
func NewRouter(cfg *config.Config, store repositories.Store, svc *Services) *mux.Router {
	healthController := controllers.NewHealthController(store)
	authController := controllers.NewAuthController(svc.Auth, svc.JWT, cfg.SecureCookies)
	dashboardController := controllers.NewDashboardController(svc.Dashboard)
	bookingController := controllers.NewBookingController(svc.Booking)
	propertyController := controllers.NewPropertyController(svc.Properties)
	tenantController := controllers.NewTenantController(svc.Tenants)
	leaseController := controllers.NewLeaseController(svc.Leases)
	maintenanceController := controllers.NewMaintenanceController(svc.Maintenance)
	emergencyController := controllers.NewEmergencyController(svc.Emergency)

	router := mux.NewRouter()
	router.Use(middleware.SessionMiddleware(cfg.SessionSecret, svc.Auth, cfg.SecureCookies))
	router.Use(middleware.AccessLog)

	requireLogin := mux.MiddlewareFunc(middleware.RequireLogin)
	requireAdmin := mux.MiddlewareFunc(middleware.RequireAdmin(adminOnly))
	requireTenant := mux.MiddlewareFunc(middleware.RequireRoleJSON(models.RoleTenant, "Only tenants can book units"))

	// Public
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods("GET")
	router.HandleFunc(routes.EmergencySearch, emergencyController.Search).Methods("GET")
	router.HandleFunc(routes.TenantSignup, authController.TenantSignup).Methods("POST")
	router.HandleFunc(routes.TenantLogin, authController.TenantLogin).Methods("POST")
	router.HandleFunc(routes.AdminLogin, authController.AdminLogin).Methods("POST")
	router.HandleFunc(routes.AdminAutologin, authController.AdminAutologin).Methods("POST")
	router.HandleFunc(routes.AdminLogout, authController.Logout).Methods("GET", "POST")
	router.HandleFunc(routes.TenantLogout, authController.Logout).Methods("GET", "POST")

	// Any logged-in principal
	loggedIn := router.NewRoute().Subrouter()
	loggedIn.Use(requireLogin)
	loggedIn.HandleFunc(routes.Dashboard, dashboardController.Dashboard).Methods("GET")
	loggedIn.HandleFunc(routes.ChangePassword, authController.ChangePassword).Methods("POST")

	// Tenant only; always answers JSON
	tenantOnly := router.NewRoute().Subrouter()
	tenantOnly.Use(requireTenant)
	tenantOnly.HandleFunc(routes.BookUnit, bookingController.BookUnit).Methods("POST")

	// Admin only
	admin := router.NewRoute().Subrouter()
	admin.Use(requireAdmin)
	admin.HandleFunc(routes.BookingRequests, bookingController.List).Methods("GET")
	admin.HandleFunc(routes.BookingRequestApprove, bookingController.Approve).Methods("POST")
	admin.HandleFunc(routes.BookingRequestReject, bookingController.Reject).Methods("POST")
	admin.HandleFunc(routes.BookingPurgeRejected, bookingController.PurgeRejected).Methods("POST")

	// ───────────────────────────────
	// CRUD groups
	// ───────────────────────────────
	properties := router.PathPrefix(routes.Properties).Subrouter()
	properties.Handle("", gate(requireLogin, propertyController.ListProperties)).Methods("GET")
	properties.Handle(routes.Item, gate(requireLogin, propertyController.GetProperty)).Methods("GET")
	properties.Handle(routes.ItemNew, gate(requireAdmin, propertyController.CreateProperty)).Methods("POST")
	properties.Handle(routes.ItemEdit, gate(requireAdmin, propertyController.UpdateProperty)).Methods("POST")
	properties.Handle(routes.ItemDelete, gate(requireAdmin, propertyController.DeleteProperty)).Methods("POST")

	units := router.PathPrefix(routes.Units).Subrouter()
	units.Handle("", gate(requireLogin, propertyController.ListUnits)).Methods("GET")
	units.Handle(routes.Item, gate(requireLogin, propertyController.GetUnit)).Methods("GET")
	units.Handle(routes.ItemNew, gate(requireAdmin, propertyController.CreateUnit)).Methods("POST")
	units.Handle(routes.ItemEdit, gate(requireAdmin, propertyController.UpdateUnit)).Methods("POST")
	units.Handle(routes.ItemDelete, gate(requireAdmin, propertyController.DeleteUnit)).Methods("POST")

	tenants := router.PathPrefix(routes.Tenants).Subrouter()
	tenants.Use(requireAdmin)
	tenants.HandleFunc("", tenantController.List).Methods("GET")
	tenants.HandleFunc(routes.Item, tenantController.Get).Methods("GET")
	tenants.HandleFunc(routes.ItemNew, tenantController.Create).Methods("POST")
	tenants.HandleFunc(routes.ItemEdit, tenantController.Update).Methods("POST")
	tenants.HandleFunc(routes.ItemDelete, tenantController.Delete).Methods("POST")

	leases := router.PathPrefix(routes.Leases).Subrouter()
	leases.Use(requireAdmin)
	leases.HandleFunc("", leaseController.List).Methods("GET")
	leases.HandleFunc(routes.Item, leaseController.Get).Methods("GET")
	leases.HandleFunc(routes.ItemNew, leaseController.Create).Methods("POST")
	leases.HandleFunc(routes.ItemEdit, leaseController.Update).Methods("POST")
	leases.HandleFunc(routes.ItemDelete, leaseController.Delete).Methods("POST")

	payments := router.PathPrefix(routes.Payments).Subrouter()
	payments.Use(requireAdmin)
	payments.HandleFunc("", leaseController.ListPayments).Methods("GET")
	payments.HandleFunc(routes.ItemNew, leaseController.LogPayment).Methods("POST")

	maintenance := router.PathPrefix(routes.Maintenance).Subrouter()
	maintenance.Handle("", gate(requireAdmin, maintenanceController.List)).Methods("GET")
	maintenance.Handle(routes.Item, gate(requireLogin, maintenanceController.Get)).Methods("GET")
	maintenance.Handle(routes.ItemNew, gate(requireLogin, maintenanceController.Create)).Methods("POST")
	maintenance.Handle(routes.ItemEdit, gate(requireLogin, maintenanceController.Update)).Methods("POST")
	maintenance.Handle(routes.ItemDelete, gate(requireAdmin, maintenanceController.Delete)).Methods("POST")

	contacts := router.PathPrefix(routes.EmergencyContacts).Subrouter()
	contacts.HandleFunc("", emergencyController.List).Methods("GET")
	contacts.HandleFunc(routes.Item, emergencyController.Get).Methods("GET")
	contacts.Handle(routes.ItemNew, gate(requireLogin, emergencyController.Create)).Methods("POST")
	contacts.Handle(routes.ItemEdit, gate(requireLogin, emergencyController.Update)).Methods("POST")
	contacts.Handle(routes.ItemDelete, gate(requireLogin, emergencyController.Delete)).Methods("POST")

	return router
}

func gate(mw mux.MiddlewareFunc, h http.HandlerFunc) http.Handler {
	return mw(h)
}
