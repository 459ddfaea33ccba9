package handlers

import (
	"net/http"

	"FundPilot/internal/api/models"
	"FundPilot/internal/model"
	"FundPilot/internal/navsource"
	"FundPilot/internal/simulator"
	"FundPilot/internal/store"

	"github.com/gin-gonic/gin"
)

// SimulationsHandler manages the saved-simulation registry and replays.
type SimulationsHandler struct {
	Stores *store.Stores
	Source navsource.Source
}

func NewSimulationsHandler(stores *store.Stores, source navsource.Source) *SimulationsHandler {
	return &SimulationsHandler{Stores: stores, Source: source}
}

// List handles GET /api/v1/simulations
func (h *SimulationsHandler) List(c *gin.Context) {
	params, err := h.Stores.Simulations.Load()
	if err != nil {
		writeError(c, err)
		return
	}
	if params == nil {
		params = []model.SimulationParams{}
	}
	c.JSON(http.StatusOK, params)
}

// Save handles POST /api/v1/simulations. A record without an id gets a
// fresh one; a record with an id is updated in place.
func (h *SimulationsHandler) Save(c *gin.Context) {
	var p model.SimulationParams
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	saved, err := h.Stores.SaveSimulation(p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// Delete handles DELETE /api/v1/simulations/:id
func (h *SimulationsHandler) Delete(c *gin.Context) {
	if err := h.Stores.Simulations.RemoveByKey(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Run handles POST /api/v1/simulations/:id/run. It replays the saved
// record against the scheme's current NAV history.
func (h *SimulationsHandler) Run(c *gin.Context) {
	id := c.Param("id")
	p, ok, err := h.Stores.Simulations.Find(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		notFound(c, "SIMULATION_NOT_FOUND", "no saved simulation with id "+id)
		return
	}

	series, err := h.Source.History(p.SchemeCode)
	if err != nil {
		writeError(c, err)
		return
	}
	sim, err := simulator.New(series)
	if err != nil {
		writeError(c, err)
		return
	}
	history, metrics, err := sim.RunFromParams(p)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SimulationResponse{
		SchemeCode: p.SchemeCode,
		Frequency:  p.Frequency,
		History:    history,
		Metrics:    metrics,
	})
}
