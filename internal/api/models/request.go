package models

import (
	"time"

	"FundPilot/internal/dipfactor"
	"FundPilot/internal/simulator"
)

// SimulateWeeklyRequest configures one weekly simulation run. Pointer
// fields distinguish "absent" from an explicit zero; absent fields fall
// back to the stock defaults.
type SimulateWeeklyRequest struct {
	SchemeCode string `json:"scheme_code" binding:"required"`

	RecentVsHistorical *float64 `json:"recent_vs_historical"`
	PeakVsAverage      *float64 `json:"peak_vs_average"`
	MinDropPct         *float64 `json:"min_drop_pct"`
	MaxDropPct         *float64 `json:"max_drop_pct"`

	Lumpsum      *float64 `json:"lumpsum"`
	CarryForward *bool    `json:"carry_forward"`
	SIPAmount    *float64 `json:"sip_amount"`

	Weeks   *int `json:"weeks"`
	Weekday *int `json:"weekday"`
}

// ToParams merges the request over the default weekly parameters.
func (r SimulateWeeklyRequest) ToParams() simulator.WeeklyParams {
	p := simulator.DefaultWeeklyParams()
	overlayStrategy(&p.Weights, &p.Thresholds, r.RecentVsHistorical, r.PeakVsAverage, r.MinDropPct, r.MaxDropPct)
	if r.Lumpsum != nil {
		p.Lumpsum = *r.Lumpsum
	}
	if r.CarryForward != nil {
		p.CarryForward = *r.CarryForward
	}
	if r.SIPAmount != nil {
		p.SIPAmount = *r.SIPAmount
	}
	if r.Weeks != nil {
		p.Weeks = *r.Weeks
	}
	if r.Weekday != nil {
		p.Weekday = time.Weekday(*r.Weekday)
	}
	return p
}

// SimulateMonthlyRequest configures one monthly simulation run.
type SimulateMonthlyRequest struct {
	SchemeCode string `json:"scheme_code" binding:"required"`

	RecentVsHistorical *float64 `json:"recent_vs_historical"`
	PeakVsAverage      *float64 `json:"peak_vs_average"`
	MinDropPct         *float64 `json:"min_drop_pct"`
	MaxDropPct         *float64 `json:"max_drop_pct"`

	Lumpsum      *float64 `json:"lumpsum"`
	CarryForward *bool    `json:"carry_forward"`
	SIPAmount    *float64 `json:"sip_amount"`

	Months     *int `json:"months"`
	DayOfMonth *int `json:"day_of_month"`
}

// ToParams merges the request over the default monthly parameters.
func (r SimulateMonthlyRequest) ToParams() simulator.MonthlyParams {
	p := simulator.DefaultMonthlyParams()
	overlayStrategy(&p.Weights, &p.Thresholds, r.RecentVsHistorical, r.PeakVsAverage, r.MinDropPct, r.MaxDropPct)
	if r.Lumpsum != nil {
		p.Lumpsum = *r.Lumpsum
	}
	if r.CarryForward != nil {
		p.CarryForward = *r.CarryForward
	}
	if r.SIPAmount != nil {
		p.SIPAmount = *r.SIPAmount
	}
	if r.Months != nil {
		p.Months = *r.Months
	}
	if r.DayOfMonth != nil {
		p.DayOfMonth = *r.DayOfMonth
	}
	return p
}

func overlayStrategy(w *dipfactor.Weights, t *dipfactor.ThresholdRange, rvh, pva, minDrop, maxDrop *float64) {
	if rvh != nil {
		w.RecentVsHistorical = *rvh
	}
	if pva != nil {
		w.PeakVsAverage = *pva
	}
	if minDrop != nil {
		t.MinDropPct = *minDrop
	}
	if maxDrop != nil {
		t.MaxDropPct = *maxDrop
	}
}

// WatchlistRequest adds a scheme to the favourites or blacklist.
type WatchlistRequest struct {
	SchemeCode string `json:"scheme_code" binding:"required"`
	SchemeName string `json:"scheme_name"`
}

// AddInvestmentRequest records one purchase in the personal ledger.
type AddInvestmentRequest struct {
	SchemeCode     string  `json:"scheme_code" binding:"required"`
	SchemeName     string  `json:"scheme_name"`
	NavDate        string  `json:"nav_date" binding:"required"` // YYYY-MM-DD
	Nav            float64 `json:"nav" binding:"required"`
	AmountInvested float64 `json:"amount_invested" binding:"required"`
}
