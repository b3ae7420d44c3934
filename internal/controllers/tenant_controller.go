package controllers

import (
	"net/http"

	"github.com/LLEndaya/LeaseUp/internal/dtos"
	"github.com/LLEndaya/LeaseUp/internal/routes"
	"github.com/LLEndaya/LeaseUp/internal/services"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

type TenantController struct {
	tenantService *services.TenantService
}

func NewTenantController(tenants *services.TenantService) *TenantController {
	return &TenantController{tenantService: tenants}
}

func (c *TenantController) List(w http.ResponseWriter, r *http.Request) {
	tenants, err := c.tenantService.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	respondList(w, tenants)
}

func (c *TenantController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	t, err := c.tenantService.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, t)
}

func (c *TenantController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.TenantRequest
	if !decodeAndValidate(w, r, &req, routes.Tenants) {
		return
	}
	t, err := c.tenantService.Create(r.Context(), req)
	if err != nil {
		fail(w, r, err, routes.Tenants)
		return
	}
	respondItem(w, r, http.StatusCreated, "Tenant created.", routes.Tenants, t)
}

func (c *TenantController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	var req dtos.TenantRequest
	if !decodeAndValidate(w, r, &req, routes.Tenants) {
		return
	}
	t, err := c.tenantService.Update(r.Context(), id, req)
	if err != nil {
		fail(w, r, err, routes.Tenants)
		return
	}
	respondItem(w, r, http.StatusOK, "Tenant updated.", routes.Tenants, t)
}

func (c *TenantController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if err := c.tenantService.Delete(r.Context(), id); err != nil {
		fail(w, r, err, routes.Tenants)
		return
	}
	respondAction(w, r, http.StatusOK, "Tenant deleted successfully.", routes.Tenants)
}
