package models

import (
	"time"

	"FundPilot/internal/model"
)

// SimulationResponse is the result of one simulation run.
type SimulationResponse struct {
	SchemeCode string                  `json:"scheme_code"`
	Frequency  model.Frequency         `json:"frequency"`
	History    []model.InvestmentEvent `json:"history"`
	Metrics    model.FinalMetrics      `json:"metrics"`
}

// SchemeMetricsResponse bundles window metrics with the dip factor for
// one scheme at its latest NAV date.
type SchemeMetricsResponse struct {
	SchemeCode string                   `json:"scheme_code"`
	AsOf       time.Time                `json:"as_of"`
	Windows    []model.NavWindowMetrics `json:"windows"`
	DipFactor  float64                  `json:"dip_factor"`
}

// SchemeValuation is the valued ledger of one scheme in the portfolio.
type SchemeValuation struct {
	SchemeCode string             `json:"scheme_code"`
	SchemeName string             `json:"scheme_name"`
	Metrics    model.FinalMetrics `json:"metrics"`
}

// PortfolioResponse is the per-scheme valuation of the investment ledger.
type PortfolioResponse struct {
	Schemes []SchemeValuation `json:"schemes"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
