package handlers

import (
	"log"
	"net/http"

	"FundPilot/internal/api/models"
	"FundPilot/internal/model"
	"FundPilot/internal/navsource"
	"FundPilot/internal/recorder"
	"FundPilot/internal/simulator"

	"github.com/gin-gonic/gin"
)

// SimulateHandler runs ad-hoc weekly and monthly simulations.
type SimulateHandler struct {
	Source   navsource.Source
	Recorder recorder.Recorder
}

func NewSimulateHandler(source navsource.Source, rec recorder.Recorder) *SimulateHandler {
	return &SimulateHandler{Source: source, Recorder: rec}
}

// SimulateWeekly handles POST /api/v1/simulate/weekly
func (h *SimulateHandler) SimulateWeekly(c *gin.Context) {
	var req models.SimulateWeeklyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	sim, err := h.newSimulator(c, req.SchemeCode)
	if err != nil {
		return
	}
	p := req.ToParams()
	history, metrics, err := sim.SimulateWeekly(p)
	if err != nil {
		writeError(c, err)
		return
	}

	h.record(req.SchemeCode, model.FrequencyWeekly, p.Lumpsum, p.SIPAmount, p.CarryForward, p.Weeks, history, metrics)
	c.JSON(http.StatusOK, models.SimulationResponse{
		SchemeCode: req.SchemeCode,
		Frequency:  model.FrequencyWeekly,
		History:    history,
		Metrics:    metrics,
	})
}

// SimulateMonthly handles POST /api/v1/simulate/monthly
func (h *SimulateHandler) SimulateMonthly(c *gin.Context) {
	var req models.SimulateMonthlyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	sim, err := h.newSimulator(c, req.SchemeCode)
	if err != nil {
		return
	}
	p := req.ToParams()
	history, metrics, err := sim.SimulateMonthly(p)
	if err != nil {
		writeError(c, err)
		return
	}

	h.record(req.SchemeCode, model.FrequencyMonthly, p.Lumpsum, p.SIPAmount, p.CarryForward, p.Months, history, metrics)
	c.JSON(http.StatusOK, models.SimulationResponse{
		SchemeCode: req.SchemeCode,
		Frequency:  model.FrequencyMonthly,
		History:    history,
		Metrics:    metrics,
	})
}

// newSimulator fetches the scheme history and builds a simulator over it.
// On failure the error response is already written.
func (h *SimulateHandler) newSimulator(c *gin.Context, schemeCode string) (*simulator.Simulator, error) {
	series, err := h.Source.History(schemeCode)
	if err != nil {
		writeError(c, err)
		return nil, err
	}
	sim, err := simulator.New(series)
	if err != nil {
		writeError(c, err)
		return nil, err
	}
	return sim, nil
}

func (h *SimulateHandler) record(schemeCode string, freq model.Frequency, lumpsum, sip float64, carry bool, periods int, history []model.InvestmentEvent, metrics model.FinalMetrics) {
	err := h.Recorder.RecordSimulation(&recorder.SimulationRun{
		SchemeCode:   schemeCode,
		Frequency:    freq,
		Lumpsum:      lumpsum,
		SIPAmount:    sip,
		CarryForward: carry,
		Periods:      periods,
		Events:       len(history),
		Metrics:      metrics,
	})
	if err != nil {
		log.Printf("[ERROR] record simulation run: %v", err)
	}
}
