package navmetrics

import (
	"errors"
	"math"
	"testing"
	"time"

	"FundPilot/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// consecutive days starting at start, one point per nav
func mkSeries(start time.Time, navs ...float64) model.NavSeries {
	series := make(model.NavSeries, len(navs))
	for i, nav := range navs {
		series[i] = model.NavPoint{Date: start.AddDate(0, 0, i), Nav: nav}
	}
	return series
}

func TestCompute_WindowStats(t *testing.T) {
	series := mkSeries(day(2024, 1, 1), 100, 101, 102, 103, 104, 105, 106, 107, 108, 109)
	m, err := Compute(series, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.TodayNav != 109 {
		t.Errorf("expected today 109, got %.2f", m.TodayNav)
	}
	if m.HighNav != 109 || m.LowNav != 100 {
		t.Errorf("expected high 109 low 100, got %.2f / %.2f", m.HighNav, m.LowNav)
	}
	if math.Abs(m.AvgNav-104.5) > 1e-9 {
		t.Errorf("expected avg 104.5, got %.4f", m.AvgNav)
	}
	if m.PctVsHigh != 0 {
		t.Errorf("today is the high, expected pct_vs_high 0, got %.4f", m.PctVsHigh)
	}
	if math.Abs(m.PctVsLow-9) > 1e-9 {
		t.Errorf("expected pct_vs_low 9, got %.4f", m.PctVsLow)
	}
	wantAvgPct := (109.0 - 104.5) / 104.5 * 100
	if math.Abs(m.PctVsAvg-wantAvgPct) > 1e-9 {
		t.Errorf("expected pct_vs_avg %.4f, got %.4f", wantAvgPct, m.PctVsAvg)
	}
	if !m.AsOfDate.Equal(day(2024, 1, 10)) {
		t.Errorf("expected as-of 2024-01-10, got %s", m.AsOfDate)
	}
}

func TestCompute_WindowCutoff(t *testing.T) {
	// ten consecutive days, navs 1..10; a 5-day lookback keeps the
	// cutoff date itself, so days 5..10 are in the window
	series := mkSeries(day(2024, 3, 1), 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	m, err := Compute(series, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.LowNav != 5 {
		t.Errorf("expected window low 5, got %.2f", m.LowNav)
	}
	if math.Abs(m.AvgNav-7.5) > 1e-9 {
		t.Errorf("expected window avg 7.5, got %.4f", m.AvgNav)
	}
	if !m.StartDate.Equal(day(2024, 3, 5)) {
		t.Errorf("expected window start 2024-03-05, got %s", m.StartDate)
	}
}

func TestCompute_DropBelowHigh(t *testing.T) {
	series := mkSeries(day(2024, 1, 1), 100, 110, 99)
	m, err := Compute(series, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.PctVsHigh >= 0 {
		t.Errorf("today below high should be negative, got %.4f", m.PctVsHigh)
	}
	wantHigh := (99.0 - 110.0) / 110.0 * 100
	if math.Abs(m.PctVsHigh-wantHigh) > 1e-9 {
		t.Errorf("expected pct_vs_high %.4f, got %.4f", wantHigh, m.PctVsHigh)
	}
}

func TestCompute_EmptySeries(t *testing.T) {
	_, err := Compute(nil, 30)
	if !errors.Is(err, model.ErrData) {
		t.Fatalf("expected ErrData, got %v", err)
	}
}

func TestCompute_BadLookback(t *testing.T) {
	series := mkSeries(day(2024, 1, 1), 100)
	for _, days := range []int{0, -7} {
		_, err := Compute(series, days)
		if !errors.Is(err, model.ErrConfig) {
			t.Errorf("lookback %d: expected ErrConfig, got %v", days, err)
		}
	}
}
