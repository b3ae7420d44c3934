package controllers

import (
	"net/http"

	"github.com/LLEndaya/LeaseUp/internal/dtos"
	"github.com/LLEndaya/LeaseUp/internal/routes"
	"github.com/LLEndaya/LeaseUp/internal/services"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

type EmergencyController struct {
	contactService *services.EmergencyContactService
}

func NewEmergencyController(contacts *services.EmergencyContactService) *EmergencyController {
	return &EmergencyController{contactService: contacts}
}

// GET /emergency?q=
func (c *EmergencyController) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	results, err := c.contactService.Search(r.Context(), q)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.EmergencySearchResponse{Query: q, Results: results})
}

func (c *EmergencyController) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := c.contactService.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	respondList(w, contacts)
}

func (c *EmergencyController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	ec, err := c.contactService.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ec)
}

func (c *EmergencyController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.EmergencyContactRequest
	if !decodeAndValidate(w, r, &req, routes.EmergencyContacts) {
		return
	}
	ec, err := c.contactService.Create(r.Context(), req)
	if err != nil {
		fail(w, r, err, routes.EmergencyContacts)
		return
	}
	respondItem(w, r, http.StatusCreated, "Emergency contact added.", routes.EmergencyContacts, ec)
}

func (c *EmergencyController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	var req dtos.EmergencyContactRequest
	if !decodeAndValidate(w, r, &req, routes.EmergencyContacts) {
		return
	}
	ec, err := c.contactService.Update(r.Context(), id, req)
	if err != nil {
		fail(w, r, err, routes.EmergencyContacts)
		return
	}
	respondItem(w, r, http.StatusOK, "Emergency contact updated.", routes.EmergencyContacts, ec)
}

func (c *EmergencyController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if err := c.contactService.Delete(r.Context(), id); err != nil {
		fail(w, r, err, routes.EmergencyContacts)
		return
	}
	respondAction(w, r, http.StatusOK, "Emergency contact deleted.", routes.EmergencyContacts)
}
