package controllers

import (
	"net/http"

	"github.com/LLEndaya/LeaseUp/internal/dtos"
	"github.com/LLEndaya/LeaseUp/internal/routes"
	"github.com/LLEndaya/LeaseUp/internal/services"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

// LeaseController serves /leases and /payments.
type LeaseController struct {
	leaseService *services.LeaseService
}

func NewLeaseController(leases *services.LeaseService) *LeaseController {
	return &LeaseController{leaseService: leases}
}

func (c *LeaseController) List(w http.ResponseWriter, r *http.Request) {
	leases, err := c.leaseService.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	respondList(w, leases)
}

func (c *LeaseController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	l, err := c.leaseService.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, l)
}

func (c *LeaseController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.LeaseRequest
	if !decodeAndValidate(w, r, &req, routes.Leases) {
		return
	}
	l, err := c.leaseService.Create(r.Context(), req)
	if err != nil {
		fail(w, r, err, routes.Leases)
		return
	}
	respondItem(w, r, http.StatusCreated, "Lease created.", routes.Leases, l)
}

func (c *LeaseController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	var req dtos.LeaseRequest
	if !decodeAndValidate(w, r, &req, routes.Leases) {
		return
	}
	l, err := c.leaseService.Update(r.Context(), id, req)
	if err != nil {
		fail(w, r, err, routes.Leases)
		return
	}
	respondItem(w, r, http.StatusOK, "Lease updated.", routes.Leases, l)
}

func (c *LeaseController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if err := c.leaseService.Delete(r.Context(), id); err != nil {
		fail(w, r, err, routes.Leases)
		return
	}
	respondAction(w, r, http.StatusOK, "Lease deleted.", routes.Leases)
}

// GET /payments
func (c *LeaseController) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := c.leaseService.ListPayments(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	respondList(w, payments)
}

// POST /payments/new
func (c *LeaseController) LogPayment(w http.ResponseWriter, r *http.Request) {
	var req dtos.PaymentRequest
	if !decodeAndValidate(w, r, &req, routes.Payments) {
		return
	}
	p, err := c.leaseService.LogPayment(r.Context(), req)
	if err != nil {
		fail(w, r, err, routes.Payments)
		return
	}
	respondItem(w, r, http.StatusCreated, "Payment logged.", routes.Payments, p)
}
