package controllers

import (
	"net/http"

	"github.com/LLEndaya/LeaseUp/internal/dtos"
	"github.com/LLEndaya/LeaseUp/internal/routes"
	"github.com/LLEndaya/LeaseUp/internal/services"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

// PropertyController serves both /properties and /units.
type PropertyController struct {
	propertyService *services.PropertyService
}

func NewPropertyController(props *services.PropertyService) *PropertyController {
	return &PropertyController{propertyService: props}
}

/* ------------------------------------------------------------------
   Properties
   ------------------------------------------------------------------ */

func (c *PropertyController) ListProperties(w http.ResponseWriter, r *http.Request) {
	props, err := c.propertyService.ListProperties(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	respondList(w, props)
}

func (c *PropertyController) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	p, err := c.propertyService.GetProperty(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

func (c *PropertyController) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req dtos.PropertyRequest
	if !decodeAndValidate(w, r, &req, routes.Properties) {
		return
	}
	p, err := c.propertyService.CreateProperty(r.Context(), req)
	if err != nil {
		fail(w, r, err, routes.Properties)
		return
	}
	respondItem(w, r, http.StatusCreated, "Property created.", routes.Properties, p)
}

func (c *PropertyController) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	var req dtos.PropertyRequest
	if !decodeAndValidate(w, r, &req, routes.Properties) {
		return
	}
	p, err := c.propertyService.UpdateProperty(r.Context(), id, req)
	if err != nil {
		fail(w, r, err, routes.Properties)
		return
	}
	respondItem(w, r, http.StatusOK, "Property updated.", routes.Properties, p)
}

func (c *PropertyController) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if err := c.propertyService.DeleteProperty(r.Context(), id); err != nil {
		fail(w, r, err, routes.Properties)
		return
	}
	respondAction(w, r, http.StatusOK, "Property deleted.", routes.Properties)
}

/* ------------------------------------------------------------------
   Units
   ------------------------------------------------------------------ */

func (c *PropertyController) ListUnits(w http.ResponseWriter, r *http.Request) {
	units, err := c.propertyService.ListUnits(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	respondList(w, units)
}

func (c *PropertyController) GetUnit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	u, err := c.propertyService.GetUnit(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, u)
}

func (c *PropertyController) CreateUnit(w http.ResponseWriter, r *http.Request) {
	var req dtos.UnitRequest
	if !decodeAndValidate(w, r, &req, routes.Units) {
		return
	}
	u, err := c.propertyService.CreateUnit(r.Context(), req)
	if err != nil {
		fail(w, r, err, routes.Units)
		return
	}
	respondItem(w, r, http.StatusCreated, "Unit created.", routes.Units, u)
}

func (c *PropertyController) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	var req dtos.UnitRequest
	if !decodeAndValidate(w, r, &req, routes.Units) {
		return
	}
	u, err := c.propertyService.UpdateUnit(r.Context(), id, req)
	if err != nil {
		fail(w, r, err, routes.Units)
		return
	}
	respondItem(w, r, http.StatusOK, "Unit updated.", routes.Units, u)
}

func (c *PropertyController) DeleteUnit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if err := c.propertyService.DeleteUnit(r.Context(), id); err != nil {
		fail(w, r, err, routes.Units)
		return
	}
	respondAction(w, r, http.StatusOK, "Unit deleted.", routes.Units)
}
