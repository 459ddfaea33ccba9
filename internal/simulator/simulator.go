package simulator

import (
	"fmt"
	"time"

	"FundPilot/internal/dipfactor"
	"FundPilot/internal/model"
	"FundPilot/internal/xirr"
)

// Simulator walks a NAV history through a dip-scaled investment schedule.
// It takes its own sorted copy of the series at construction, so later
// mutation of the caller's slice cannot affect an in-flight run. Each
// Simulate call is an independent, side-effect-free computation; separate
// runs may execute concurrently.
type Simulator struct {
	series model.NavSeries
}

// New builds a Simulator over a copy of the given NAV history.
func New(series model.NavSeries) (*Simulator, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: empty nav series", model.ErrData)
	}
	return &Simulator{series: series.Sorted()}, nil
}

// SimulateWeekly runs the weekly schedule: every calendar date between
// end−weeks and the series end whose weekday matches the anchor is an
// investment candidate. Dates without an exact NAV value are skipped:
// a missed trading day is simply not an investment day.
func (s *Simulator) SimulateWeekly(p WeeklyParams) ([]model.InvestmentEvent, model.FinalMetrics, error) {
	if err := p.Validate(); err != nil {
		return nil, model.FinalMetrics{}, err
	}
	calc, err := dipfactor.NewCalculator(p.Weights, p.Thresholds)
	if err != nil {
		return nil, model.FinalMetrics{}, err
	}

	end := s.series.MaxDate()
	start := end.AddDate(0, 0, -7*p.Weeks)

	run := newRunState(p.Lumpsum)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != p.Weekday {
			continue
		}
		nav, ok := s.series.NavOn(d)
		if !ok {
			continue
		}
		factor, err := calc.ForFrequency(s.series.UpTo(d), model.FrequencyWeekly)
		if err != nil {
			return nil, model.FinalMetrics{}, err
		}
		run.invest(d, nav, factor, p.SIPAmount)
		if p.CarryForward {
			run.remaining += p.Lumpsum - run.lastDipBuy
		}
	}

	return run.history, s.finalize(run), nil
}

// SimulateMonthly runs the monthly schedule: the anchor is a day of
// month, and when no NAV exists on that exact calendar date the run
// falls back to the most recent prior trading date. The back-filled date
// is the one recorded and used for dip-factor truncation. Note this is a
// different policy from the weekly skip.
func (s *Simulator) SimulateMonthly(p MonthlyParams) ([]model.InvestmentEvent, model.FinalMetrics, error) {
	if err := p.Validate(); err != nil {
		return nil, model.FinalMetrics{}, err
	}
	calc, err := dipfactor.NewCalculator(p.Weights, p.Thresholds)
	if err != nil {
		return nil, model.FinalMetrics{}, err
	}

	end := s.series.MaxDate()
	start := end.AddDate(0, -p.Months, 0)

	run := newRunState(p.Lumpsum)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Day() != p.DayOfMonth {
			continue
		}
		point, ok := s.series.OnOrBefore(d)
		if !ok {
			continue
		}
		factor, err := calc.ForFrequency(s.series.UpTo(point.Date), model.FrequencyMonthly)
		if err != nil {
			return nil, model.FinalMetrics{}, err
		}
		run.invest(point.Date, point.Nav, factor, p.SIPAmount)
		if p.CarryForward {
			run.remaining += p.Lumpsum - run.lastDipBuy
		}
	}

	return run.history, s.finalize(run), nil
}

// runState is the accumulation threaded through one walk.
type runState struct {
	remaining     float64
	lastDipBuy    float64
	totalUnits    float64
	totalInvested float64
	history       []model.InvestmentEvent
	cashflows     []model.Cashflow
}

func newRunState(lumpsum float64) *runState {
	return &runState{remaining: lumpsum}
}

// invest posts one scheduled buy: the dip-scaled share of the remaining
// lumpsum pool plus the fixed SIP. Nothing is recorded when the total
// comes to zero.
func (r *runState) invest(date time.Time, nav, factor, sip float64) {
	dipBuy := factor * r.remaining
	amount := dipBuy + sip
	r.lastDipBuy = dipBuy
	if amount <= 0 {
		return
	}
	units := amount / nav
	r.totalUnits += units
	r.totalInvested += amount
	r.cashflows = append(r.cashflows, model.Cashflow{Date: date, Amount: -amount})
	r.history = append(r.history, model.InvestmentEvent{
		Date:            date,
		Weekday:         date.Weekday().String(),
		Nav:             nav,
		DipFactor:       factor,
		DipBuy:          dipBuy,
		SIP:             sip,
		TotalInvestment: amount,
		Units:           units,
	})
}

// finalize values the accumulated units at the latest NAV, posts the
// terminal cashflow and derives the summary metrics.
func (s *Simulator) finalize(run *runState) model.FinalMetrics {
	last := s.series[len(s.series)-1]
	finalValue := run.totalUnits * last.Nav
	cashflows := append(run.cashflows, model.Cashflow{Date: last.Date, Amount: finalValue})

	m := model.FinalMetrics{
		TotalInvested: run.totalInvested,
		FinalValue:    finalValue,
		Profit:        finalValue - run.totalInvested,
		XIRR:          xirr.Calculate(cashflows),
		TotalUnits:    run.totalUnits,
		LatestNav:     last.Nav,
	}
	if run.totalInvested != 0 {
		m.ROI = m.Profit / run.totalInvested * 100
	}
	if run.totalUnits != 0 {
		m.AverageNav = run.totalInvested / run.totalUnits
	}
	return m
}
