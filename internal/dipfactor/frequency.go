package dipfactor

import (
	"strings"

	"FundPilot/internal/model"
	"FundPilot/internal/navmetrics"
)

// Lookback windows per investment frequency, in days.
const (
	recentDaysWeekly      = 30
	historicalDaysWeekly  = 60
	recentDaysMonthly     = 60
	historicalDaysMonthly = 90
)

// ForFrequency computes the dip factor for the given cadence over the
// series. The caller must pass a series already truncated to the
// simulated current date: the dip factor must never see future NAVs.
//
// An unrecognized frequency yields 0 with no error: callers that pass
// a cadence without tuned lookback windows get a neutral factor.
func (c *Calculator) ForFrequency(series model.NavSeries, freq model.Frequency) (float64, error) {
	var recentDays, historicalDays int
	switch model.Frequency(strings.ToLower(string(freq))) {
	case model.FrequencyWeekly:
		recentDays, historicalDays = recentDaysWeekly, historicalDaysWeekly
	case model.FrequencyMonthly:
		recentDays, historicalDays = recentDaysMonthly, historicalDaysMonthly
	default:
		return 0, nil
	}

	recent, err := navmetrics.Compute(series, recentDays)
	if err != nil {
		return 0, err
	}
	historical, err := navmetrics.Compute(series, historicalDays)
	if err != nil {
		return 0, err
	}

	return c.Factor(
		DropPair{Peak: recent.PctVsHigh, Avg: recent.PctVsAvg},
		DropPair{Peak: historical.PctVsHigh, Avg: historical.PctVsAvg},
	), nil
}
