package controllers

import (
	"net/http"

	"github.com/LLEndaya/LeaseUp/internal/dtos"
	"github.com/LLEndaya/LeaseUp/internal/repositories"
	"github.com/LLEndaya/LeaseUp/internal/utils"
)

type HealthController struct {
	store repositories.Store
}

func NewHealthController(store repositories.Store) *HealthController {
	return &HealthController{store: store}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.store.Ping(r.Context()); err != nil {
		utils.RespondErrorWithCode(
			w,
			http.StatusServiceUnavailable,
			utils.ErrCodeInternal,
			"Database unreachable",
			nil,
			err,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "OK"})
}
