package dipfactor

import (
	"fmt"

	"FundPilot/internal/model"
)

// Weights blends the dip signals. RecentVsHistorical weighs the recent
// window against the historical one; PeakVsAverage weighs drop-from-peak
// against drop-from-average inside each window. Both must lie in [0, 1].
type Weights struct {
	RecentVsHistorical float64 `json:"recent_vs_historical" yaml:"recent_vs_historical"`
	PeakVsAverage      float64 `json:"peak_vs_average" yaml:"peak_vs_average"`
}

// DefaultWeights returns the stock blend configuration.
func DefaultWeights() Weights {
	return Weights{RecentVsHistorical: 0.4, PeakVsAverage: 0.3}
}

// Validate reports whether both weights lie in [0, 1].
func (w Weights) Validate() error {
	if w.RecentVsHistorical < 0 || w.RecentVsHistorical > 1 {
		return fmt.Errorf("%w: recent_vs_historical weight %.3f outside [0,1]", model.ErrConfig, w.RecentVsHistorical)
	}
	if w.PeakVsAverage < 0 || w.PeakVsAverage > 1 {
		return fmt.Errorf("%w: peak_vs_average weight %.3f outside [0,1]", model.ErrConfig, w.PeakVsAverage)
	}
	return nil
}

// ThresholdRange is the linear normalization band mapping a raw
// percentage drop to [0, 1]. Drops shallower than MinDropPct score 0,
// drops at or beyond MaxDropPct score 1.
type ThresholdRange struct {
	MinDropPct float64 `json:"min_drop_pct" yaml:"min_drop_pct"`
	MaxDropPct float64 `json:"max_drop_pct" yaml:"max_drop_pct"`
}

// DefaultThresholdRange returns the stock 3%..8% band.
func DefaultThresholdRange() ThresholdRange {
	return ThresholdRange{MinDropPct: 3, MaxDropPct: 8}
}

// Validate reports whether the band is well-formed (0 <= min < max).
func (r ThresholdRange) Validate() error {
	if r.MinDropPct < 0 {
		return fmt.Errorf("%w: min drop threshold %.3f must be non-negative", model.ErrConfig, r.MinDropPct)
	}
	if r.MinDropPct >= r.MaxDropPct {
		return fmt.Errorf("%w: drop threshold range (%.3f, %.3f) requires min < max", model.ErrConfig, r.MinDropPct, r.MaxDropPct)
	}
	return nil
}

// DropPair carries the signed percentage deviations of today's NAV from a
// window's peak and average. Negative means today is below the reference.
type DropPair struct {
	Peak float64
	Avg  float64
}

// Calculator turns drawdown pairs into a normalized dip factor. The
// configuration is validated once at construction and immutable after.
type Calculator struct {
	weights    Weights
	thresholds ThresholdRange
}

// NewCalculator builds a Calculator, validating the configuration.
func NewCalculator(w Weights, r ThresholdRange) (*Calculator, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{weights: w, thresholds: r}, nil
}

// Default returns a Calculator with the stock weights and thresholds.
func Default() *Calculator {
	return &Calculator{weights: DefaultWeights(), thresholds: DefaultThresholdRange()}
}

// normalizeDrop maps a signed percentage deviation to [0, 1]. A positive
// d (today above the reference) always yields 0.
func (c *Calculator) normalizeDrop(d float64) float64 {
	min, max := c.thresholds.MinDropPct, c.thresholds.MaxDropPct
	if d > -min {
		return 0.0
	}
	if d <= -max {
		return 1.0
	}
	return (-d - min) / (max - min)
}

func weightedAvg(a, b, w float64) float64 {
	return w*a + (1-w)*b
}

// Factor converts the recent and historical drop pairs into a dip factor
// in [0, 1]. Pure and deterministic.
func (c *Calculator) Factor(recent, historical DropPair) float64 {
	factorRecent := weightedAvg(
		c.normalizeDrop(recent.Peak),
		c.normalizeDrop(recent.Avg),
		c.weights.PeakVsAverage,
	)
	factorHistorical := weightedAvg(
		c.normalizeDrop(historical.Peak),
		c.normalizeDrop(historical.Avg),
		c.weights.PeakVsAverage,
	)
	return weightedAvg(factorRecent, factorHistorical, c.weights.RecentVsHistorical)
}
