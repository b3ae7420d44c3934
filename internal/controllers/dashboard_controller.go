package controllers

import (
	"net/http"

	"github.com/LLEndaya/LeaseUp/internal/services"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

type DashboardController struct {
	dashboardService *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboard}
}

// GET /dashboard
func (c *DashboardController) Dashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := c.dashboardService.Build(r.Context(), principal(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	resp.Flash = utils.PopFlash(w, r)
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
