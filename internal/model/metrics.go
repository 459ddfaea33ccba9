package model

import "time"

// NavWindowMetrics compares the latest NAV against the high, average and
// low NAV inside a trailing lookback window. Percentage fields are signed;
// negative means today sits below the reference value. The struct carries
// numbers only; glyph formatting belongs to the presentation layer.
type NavWindowMetrics struct {
	AsOfDate     time.Time `json:"as_of_date"`
	StartDate    time.Time `json:"start_date"`
	LookbackDays int       `json:"lookback_days"`
	TodayNav     float64   `json:"today_nav"`
	HighNav      float64   `json:"high_nav"`
	AvgNav       float64   `json:"avg_nav"`
	LowNav       float64   `json:"low_nav"`
	PctVsHigh    float64   `json:"pct_vs_high"`
	PctVsAvg     float64   `json:"pct_vs_avg"`
	PctVsLow     float64   `json:"pct_vs_low"`
}
