package portfolio

import (
	"math"
	"testing"
	"time"

	"FundPilot/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMetrics_ValuesLedger(t *testing.T) {
	ledger := []model.Investment{
		{NavDate: day(2023, 1, 5), Nav: 50, AmountInvested: 1000, UnitsBought: 20},
		{NavDate: day(2023, 7, 5), Nav: 40, AmountInvested: 1000, UnitsBought: 25},
	}
	m := Metrics(ledger, day(2024, 1, 5), 60)

	if m.TotalInvested != 2000 {
		t.Errorf("expected invested 2000, got %.2f", m.TotalInvested)
	}
	if m.TotalUnits != 45 {
		t.Errorf("expected 45 units, got %.4f", m.TotalUnits)
	}
	if m.FinalValue != 2700 {
		t.Errorf("expected value 2700, got %.2f", m.FinalValue)
	}
	if m.Profit != 700 {
		t.Errorf("expected profit 700, got %.2f", m.Profit)
	}
	if math.Abs(m.ROI-35) > 1e-9 {
		t.Errorf("expected roi 35%%, got %.4f", m.ROI)
	}
	wantAvg := 2000.0 / 45
	if math.Abs(m.AverageNav-wantAvg) > 1e-9 {
		t.Errorf("expected avg buy nav %.4f, got %.4f", wantAvg, m.AverageNav)
	}
	if m.XIRR <= 0 {
		t.Errorf("profitable ledger should have positive xirr, got %.4f", m.XIRR)
	}
}

func TestMetrics_EmptyLedger(t *testing.T) {
	m := Metrics(nil, day(2024, 1, 5), 60)
	if m.TotalInvested != 0 || m.FinalValue != 0 || m.ROI != 0 || m.XIRR != 0 || m.AverageNav != 0 {
		t.Errorf("empty ledger should value to zeros, got %+v", m)
	}
	if m.LatestNav != 60 {
		t.Errorf("latest nav should pass through, got %.4f", m.LatestNav)
	}
}
