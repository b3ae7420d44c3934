package controllers

import (
	"fmt"
	"net/http"

	"github.com/LLEndaya/LeaseUp/internal/dtos"
	"github.com/LLEndaya/LeaseUp/internal/routes"
	"github.com/LLEndaya/LeaseUp/internal/services"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

type BookingController struct {
	bookingService *services.BookingService
}

func NewBookingController(booking *services.BookingService) *BookingController {
	return &BookingController{bookingService: booking}
}

// POST /book-unit always answers JSON with a redirect target, whatever the
// caller's Accept header.
func (c *BookingController) BookUnit(w http.ResponseWriter, r *http.Request) {
	var req dtos.BookUnitRequest
	if err := decodeRequest(w, r, &req); err != nil {
		utils.RespondErrorWithRedirect(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request", routes.Dashboard, err)
		return
	}
	if _, err := c.bookingService.Submit(r.Context(), principal(r), req); err != nil {
		appErr := utils.AsAppError(err)
		utils.RespondErrorWithRedirect(w, appErr.StatusCode, appErr.Code, appErr.Message, routes.Dashboard, appErr.Err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.ActionResponse{
		OK:       true,
		Message:  "Booking request created successfully",
		Redirect: routes.Dashboard,
	})
}

// GET /booking-requests
func (c *BookingController) List(w http.ResponseWriter, r *http.Request) {
	views, err := c.bookingService.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.BookingRequestsResponse{Requests: views})
}

// POST /booking-request/{id}/approve
func (c *BookingController) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		failFlash(w, r, utils.NewNotFound("Booking request not found."), routes.BookingRequests)
		return
	}
	res, err := c.bookingService.Approve(r.Context(), id)
	if err != nil {
		failFlash(w, r, err, routes.BookingRequests)
		return
	}
	msg := fmt.Sprintf("Booking request approved! Lease created for Unit %s.", res.Unit.Number)
	respondAction(w, r, http.StatusOK, msg, routes.BookingRequests)
}

// POST /booking-request/{id}/reject
func (c *BookingController) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		failFlash(w, r, utils.NewNotFound("Booking request not found."), routes.BookingRequests)
		return
	}
	if _, err := c.bookingService.Reject(r.Context(), id); err != nil {
		failFlash(w, r, err, routes.BookingRequests)
		return
	}
	respondAction(w, r, http.StatusOK, "Booking request rejected.", routes.BookingRequests)
}

// POST /booking-requests/purge-rejected
func (c *BookingController) PurgeRejected(w http.ResponseWriter, r *http.Request) {
	deleted, err := c.bookingService.PurgeRejected(r.Context())
	if err != nil {
		appErr := utils.AsAppError(err)
		if utils.WantsJSON(r) {
			utils.HandleAppError(w, appErr)
			return
		}
		utils.Logger.WithError(appErr.Err).Error(appErr.Message)
		utils.RedirectWithFlash(w, r, routes.BookingRequests, appErr.Message)
		return
	}

	msg := fmt.Sprintf("Purged %d rejected booking request(s).", deleted)
	if utils.WantsJSON(r) {
		utils.RespondWithJSON(w, http.StatusOK, dtos.PurgeResponse{
			OK:       true,
			Message:  msg,
			Redirect: routes.BookingRequests,
			Deleted:  deleted,
		})
		return
	}
	utils.RedirectWithFlash(w, r, routes.BookingRequests, msg)
}
