package controllers

import (
	"net/http"

	"github.com/LLEndaya/LeaseUp/internal/dtos"
	"github.com/LLEndaya/LeaseUp/internal/routes"
	"github.com/LLEndaya/LeaseUp/internal/services"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

type MaintenanceController struct {
	maintenanceService *services.MaintenanceService
}

func NewMaintenanceController(m *services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{maintenanceService: m}
}

func (c *MaintenanceController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.maintenanceService.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	respondList(w, items)
}

func (c *MaintenanceController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	m, err := c.maintenanceService.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, m)
}

func (c *MaintenanceController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.MaintenanceRequest
	if !decodeAndValidate(w, r, &req, routes.Dashboard) {
		return
	}
	m, err := c.maintenanceService.Create(r.Context(), req)
	if err != nil {
		fail(w, r, err, routes.Dashboard)
		return
	}
	respondItem(w, r, http.StatusCreated, "Maintenance request created.", routes.Dashboard, m)
}

func (c *MaintenanceController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	var req dtos.MaintenanceRequest
	if !decodeAndValidate(w, r, &req, routes.Dashboard) {
		return
	}
	m, err := c.maintenanceService.Update(r.Context(), id, req)
	if err != nil {
		fail(w, r, err, routes.Dashboard)
		return
	}
	respondItem(w, r, http.StatusOK, "Maintenance request updated.", routes.Dashboard, m)
}

func (c *MaintenanceController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if err := c.maintenanceService.Delete(r.Context(), id); err != nil {
		fail(w, r, err, routes.Maintenance)
		return
	}
	respondAction(w, r, http.StatusOK, "Maintenance request deleted successfully.", routes.Maintenance)
}
