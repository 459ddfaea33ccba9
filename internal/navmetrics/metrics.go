package navmetrics

import (
	"fmt"
	"math"
	"time"

	"FundPilot/internal/model"
)

// Compute evaluates the latest NAV against the high, low and average NAV
// inside a trailing window of lookbackDays ending at the series' own max
// date. The series must be date-ascending with unique dates.
func Compute(series model.NavSeries, lookbackDays int) (model.NavWindowMetrics, error) {
	if lookbackDays <= 0 {
		return model.NavWindowMetrics{}, fmt.Errorf("%w: lookback days must be positive, got %d", model.ErrConfig, lookbackDays)
	}
	if len(series) == 0 {
		return model.NavWindowMetrics{}, fmt.Errorf("%w: empty nav series", model.ErrData)
	}

	end := series.MaxDate()
	today, ok := series.NavOn(end)
	if !ok {
		// Cannot happen for a well-formed series, but checked anyway.
		return model.NavWindowMetrics{}, fmt.Errorf("%w: no nav at latest date %s", model.ErrData, end.Format("2006-01-02"))
	}

	cutoff := end.AddDate(0, 0, -lookbackDays)
	high := math.Inf(-1)
	low := math.Inf(1)
	sum := 0.0
	count := 0
	var start time.Time
	for _, p := range series {
		if p.Date.Before(cutoff) {
			continue
		}
		if count == 0 {
			start = p.Date
		}
		if p.Nav > high {
			high = p.Nav
		}
		if p.Nav < low {
			low = p.Nav
		}
		sum += p.Nav
		count++
	}
	avg := sum / float64(count)

	pct := func(reference float64) float64 {
		return (today - reference) / reference * 100
	}

	return model.NavWindowMetrics{
		AsOfDate:     end,
		StartDate:    start,
		LookbackDays: lookbackDays,
		TodayNav:     today,
		HighNav:      high,
		AvgNav:       avg,
		LowNav:       low,
		PctVsHigh:    pct(high),
		PctVsAvg:     pct(avg),
		PctVsLow:     pct(low),
	}, nil
}
