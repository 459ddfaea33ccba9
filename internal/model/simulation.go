package model

import "time"

// Frequency selects the investment cadence of a simulation.
type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// InvestmentEvent is one executed buy in a simulation run.
type InvestmentEvent struct {
	Date            time.Time `json:"date"`
	Weekday         string    `json:"weekday"`
	Nav             float64   `json:"nav"`
	DipFactor       float64   `json:"dip_factor"`
	DipBuy          float64   `json:"dip_buy"`
	SIP             float64   `json:"sip"`
	TotalInvestment float64   `json:"total_investment"`
	Units           float64   `json:"units"`
}

// Cashflow is one signed money movement. Negative amounts leave the
// investor (purchases), positive amounts return (final valuation).
type Cashflow struct {
	Date   time.Time
	Amount float64
}

// FinalMetrics summarises a completed simulation run or a valued
// investment ledger. ROI and XIRR are percentages.
type FinalMetrics struct {
	TotalInvested float64 `json:"total_invested"`
	FinalValue    float64 `json:"final_value"`
	Profit        float64 `json:"profit"`
	ROI           float64 `json:"roi"`
	XIRR          float64 `json:"xirr"`
	TotalUnits    float64 `json:"total_units"`
	LatestNav     float64 `json:"latest_nav"`
	AverageNav    float64 `json:"average_nav"`
}

// SimulationParams is the flat, replayable record of one saved simulation.
// The Frequency field discriminates which parameter subset applies:
// Weeks/Weekday for weekly runs, Months/DayOfMonth for monthly runs.
// Weekday follows time.Weekday numbering (0 = Sunday).
type SimulationParams struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SchemeCode string    `json:"scheme_code"`
	Frequency  Frequency `json:"frequency"`

	RecentVsHistorical float64 `json:"recent_vs_historical"`
	PeakVsAverage      float64 `json:"peak_vs_average"`
	MinDropPct         float64 `json:"min_drop_pct"`
	MaxDropPct         float64 `json:"max_drop_pct"`

	Lumpsum      float64 `json:"lumpsum"`
	CarryForward bool    `json:"carry_forward"`
	SIPAmount    float64 `json:"sip_amount"`

	Weeks   int `json:"weeks,omitempty"`
	Weekday int `json:"weekday,omitempty"`

	Months     int `json:"months,omitempty"`
	DayOfMonth int `json:"day_of_month,omitempty"`
}
