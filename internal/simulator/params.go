package simulator

import (
	"fmt"
	"time"

	"FundPilot/internal/dipfactor"
	"FundPilot/internal/model"
)

// Horizon caps keep a single run's work bounded.
const (
	maxWeeks  = 5200
	maxMonths = 1200
)

// WeeklyParams configures one weekly simulation run.
type WeeklyParams struct {
	Weights    dipfactor.Weights
	Thresholds dipfactor.ThresholdRange

	Lumpsum      float64
	CarryForward bool
	SIPAmount    float64

	Weeks   int
	Weekday time.Weekday
}

// DefaultWeeklyParams mirrors the stock strategy configuration: a 5000
// lumpsum pool and a 1000 SIP every Friday over 150 weeks, no carry.
func DefaultWeeklyParams() WeeklyParams {
	return WeeklyParams{
		Weights:    dipfactor.DefaultWeights(),
		Thresholds: dipfactor.DefaultThresholdRange(),
		Lumpsum:    5000,
		SIPAmount:  1000,
		Weeks:      150,
		Weekday:    time.Friday,
	}
}

// Validate checks the schedule and amount fields. Weight and threshold
// validation happens once when the dip factor calculator is built.
func (p WeeklyParams) Validate() error {
	if p.Lumpsum < 0 {
		return fmt.Errorf("%w: lumpsum must be non-negative, got %.2f", model.ErrConfig, p.Lumpsum)
	}
	if p.SIPAmount < 0 {
		return fmt.Errorf("%w: sip amount must be non-negative, got %.2f", model.ErrConfig, p.SIPAmount)
	}
	if p.Weeks < 0 || p.Weeks > maxWeeks {
		return fmt.Errorf("%w: weeks must be in [0, %d], got %d", model.ErrConfig, maxWeeks, p.Weeks)
	}
	if p.Weekday < time.Sunday || p.Weekday > time.Saturday {
		return fmt.Errorf("%w: weekday %d outside 0-6", model.ErrConfig, p.Weekday)
	}
	return nil
}

// MonthlyParams configures one monthly simulation run. DayOfMonth is
// capped at 28 so every month has the anchor day.
type MonthlyParams struct {
	Weights    dipfactor.Weights
	Thresholds dipfactor.ThresholdRange

	Lumpsum      float64
	CarryForward bool
	SIPAmount    float64

	Months     int
	DayOfMonth int
}

// DefaultMonthlyParams mirrors the stock strategy configuration: 20000
// lumpsum pool and 20000 SIP on the 5th over 24 months, no carry.
func DefaultMonthlyParams() MonthlyParams {
	return MonthlyParams{
		Weights:    dipfactor.DefaultWeights(),
		Thresholds: dipfactor.DefaultThresholdRange(),
		Lumpsum:    20000,
		SIPAmount:  20000,
		Months:     24,
		DayOfMonth: 5,
	}
}

// Validate checks the schedule and amount fields.
func (p MonthlyParams) Validate() error {
	if p.Lumpsum < 0 {
		return fmt.Errorf("%w: lumpsum must be non-negative, got %.2f", model.ErrConfig, p.Lumpsum)
	}
	if p.SIPAmount < 0 {
		return fmt.Errorf("%w: sip amount must be non-negative, got %.2f", model.ErrConfig, p.SIPAmount)
	}
	if p.Months < 0 || p.Months > maxMonths {
		return fmt.Errorf("%w: months must be in [0, %d], got %d", model.ErrConfig, maxMonths, p.Months)
	}
	if p.DayOfMonth < 1 || p.DayOfMonth > 28 {
		return fmt.Errorf("%w: day of month %d outside 1-28", model.ErrConfig, p.DayOfMonth)
	}
	return nil
}
