package simulator

import (
	"fmt"
	"strings"
	"time"

	"FundPilot/internal/dipfactor"
	"FundPilot/internal/model"
)

// RunFromParams replays a saved parameter record, dispatching on its
// frequency discriminator. Zero-valued fields fall back to the stock
// defaults, so records saved before a parameter existed still replay.
func (s *Simulator) RunFromParams(p model.SimulationParams) ([]model.InvestmentEvent, model.FinalMetrics, error) {
	switch model.Frequency(strings.ToLower(string(p.Frequency))) {
	case model.FrequencyWeekly:
		return s.SimulateWeekly(weeklyFromRecord(p))
	case model.FrequencyMonthly:
		return s.SimulateMonthly(monthlyFromRecord(p))
	default:
		return nil, model.FinalMetrics{}, fmt.Errorf("%w: unknown frequency %q", model.ErrConfig, p.Frequency)
	}
}

func weeklyFromRecord(p model.SimulationParams) WeeklyParams {
	out := DefaultWeeklyParams()
	overlayShared(&out.Weights, &out.Thresholds, &out.Lumpsum, &out.SIPAmount, p)
	out.CarryForward = p.CarryForward
	if p.Weeks != 0 {
		out.Weeks = p.Weeks
	}
	if p.Weekday != 0 {
		out.Weekday = time.Weekday(p.Weekday)
	}
	return out
}

func monthlyFromRecord(p model.SimulationParams) MonthlyParams {
	out := DefaultMonthlyParams()
	overlayShared(&out.Weights, &out.Thresholds, &out.Lumpsum, &out.SIPAmount, p)
	out.CarryForward = p.CarryForward
	if p.Months != 0 {
		out.Months = p.Months
	}
	if p.DayOfMonth != 0 {
		out.DayOfMonth = p.DayOfMonth
	}
	return out
}

// overlayShared copies the non-zero shared fields of a saved record over
// the defaults, the same overlay-on-base merge used for config files.
func overlayShared(w *dipfactor.Weights, t *dipfactor.ThresholdRange, lumpsum, sip *float64, p model.SimulationParams) {
	if p.RecentVsHistorical != 0 || p.PeakVsAverage != 0 {
		*w = dipfactor.Weights{RecentVsHistorical: p.RecentVsHistorical, PeakVsAverage: p.PeakVsAverage}
	}
	if p.MinDropPct != 0 || p.MaxDropPct != 0 {
		*t = dipfactor.ThresholdRange{MinDropPct: p.MinDropPct, MaxDropPct: p.MaxDropPct}
	}
	if p.Lumpsum != 0 {
		*lumpsum = p.Lumpsum
	}
	if p.SIPAmount != 0 {
		*sip = p.SIPAmount
	}
}
