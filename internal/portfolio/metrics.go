package portfolio

import (
	"time"

	"FundPilot/internal/model"
	"FundPilot/internal/xirr"
)

// Metrics values a real purchase ledger against the latest NAV. The
// annualized return is computed over the actual purchase dates plus a
// terminal valuation cashflow at latestDate.
func Metrics(ledger []model.Investment, latestDate time.Time, latestNav float64) model.FinalMetrics {
	var totalInvested, totalUnits float64
	cashflows := make([]model.Cashflow, 0, len(ledger)+1)
	for _, inv := range ledger {
		totalInvested += inv.AmountInvested
		totalUnits += inv.UnitsBought
		cashflows = append(cashflows, model.Cashflow{Date: inv.NavDate, Amount: -inv.AmountInvested})
	}

	finalValue := totalUnits * latestNav
	cashflows = append(cashflows, model.Cashflow{Date: latestDate, Amount: finalValue})

	m := model.FinalMetrics{
		TotalInvested: totalInvested,
		FinalValue:    finalValue,
		Profit:        finalValue - totalInvested,
		XIRR:          xirr.Calculate(cashflows),
		TotalUnits:    totalUnits,
		LatestNav:     latestNav,
	}
	if totalInvested != 0 {
		m.ROI = m.Profit / totalInvested * 100
	}
	if totalUnits != 0 {
		m.AverageNav = totalInvested / totalUnits
	}
	return m
}
