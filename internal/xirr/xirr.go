package xirr

import (
	"log"
	"math"
	"sort"

	"FundPilot/internal/model"
)

const (
	maxIterations = 100
	tolerance     = 1e-9
)

// Calculate returns the annualized internal rate of return, as a
// percentage, for an irregular series of signed cashflows. Negative
// amounts are money invested, positive amounts money returned. Input
// order does not matter; repeated dates are fine.
//
// The solver is deliberately best-effort: degenerate input (empty list,
// no sign change) or non-convergence logs a warning and yields 0.0 so a
// single unsolvable run cannot abort an otherwise valid simulation.
func Calculate(cashflows []model.Cashflow) float64 {
	if len(cashflows) == 0 {
		return 0.0
	}

	flows := make([]model.Cashflow, len(cashflows))
	copy(flows, cashflows)
	sort.SliceStable(flows, func(i, j int) bool { return flows[i].Date.Before(flows[j].Date) })

	var hasNegative, hasPositive bool
	for _, f := range flows {
		if f.Amount < 0 {
			hasNegative = true
		}
		if f.Amount > 0 {
			hasPositive = true
		}
	}
	if !hasNegative || !hasPositive {
		log.Println("[WARN] xirr: cashflows have no sign change, returning 0")
		return 0.0
	}

	t0 := flows[0].Date
	years := make([]float64, len(flows))
	for i, f := range flows {
		years[i] = f.Date.Sub(t0).Hours() / 24 / 365
	}

	npv := func(rate float64) float64 {
		sum := 0.0
		for i, f := range flows {
			sum += f.Amount / math.Pow(1+rate, years[i])
		}
		return sum
	}
	dnpv := func(rate float64) float64 {
		sum := 0.0
		for i, f := range flows {
			if years[i] == 0 {
				continue
			}
			sum -= years[i] * f.Amount / math.Pow(1+rate, years[i]+1)
		}
		return sum
	}

	if rate, ok := newton(npv, dnpv, 0.1); ok {
		return rate * 100
	}
	if rate, ok := bisect(npv); ok {
		return rate * 100
	}

	log.Println("[WARN] xirr: solver did not converge, returning 0")
	return 0.0
}

func newton(npv, dnpv func(float64) float64, guess float64) (float64, bool) {
	rate := guess
	for i := 0; i < maxIterations; i++ {
		v := npv(rate)
		if math.Abs(v) < tolerance {
			return rate, true
		}
		d := dnpv(rate)
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return 0, false
		}
		next := rate - v/d
		if next <= -1 || math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, false
		}
		if math.Abs(next-rate) < tolerance {
			return next, true
		}
		rate = next
	}
	return 0, false
}

func bisect(npv func(float64) float64) (float64, bool) {
	lo, hi := -0.999999, 10.0
	flo := npv(lo)
	fhi := npv(hi)
	for fhi*flo > 0 && hi < 1e6 {
		hi *= 10
		fhi = npv(hi)
	}
	if flo*fhi > 0 {
		return 0, false
	}
	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		fmid := npv(mid)
		if math.Abs(fmid) < tolerance || (hi-lo)/2 < tolerance {
			return mid, true
		}
		if flo*fmid < 0 {
			hi = mid
		} else {
			lo, flo = mid, fmid
		}
	}
	return (lo + hi) / 2, true
}
