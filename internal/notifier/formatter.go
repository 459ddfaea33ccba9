package notifier

import (
	"fmt"
	"strings"
	"time"

	"FundPilot/internal/model"
	"FundPilot/internal/recorder"
)

// FormatPct renders a signed percentage with a direction glyph. Display
// only; the numeric values stay untouched in the metrics structs.
func FormatPct(v float64) string {
	glyph := "→"
	switch {
	case v > 0:
		glyph = "↑"
	case v < 0:
		glyph = "↓"
	}
	return fmt.Sprintf("%.3f%% %s", v, glyph)
}

// FormatDipAlert formats a watch-job trigger into a Telegram message.
func FormatDipAlert(alert *recorder.DipAlert) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📉 <b>Dip alert</b> | %s\n\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("%s (%s)\n", alert.SchemeName, alert.SchemeCode))
	b.WriteString(fmt.Sprintf("NAV: %.4f\n", alert.Nav))
	b.WriteString(fmt.Sprintf("Dip factor: %.3f (threshold %.2f)\n", alert.DipFactor, alert.Threshold))
	b.WriteString("\nBuy-the-dip window is open for this scheme.")
	return b.String()
}

// FormatWindowMetrics formats NAV window metrics for display.
func FormatWindowMetrics(m *model.NavWindowMetrics) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔍 <b>NAV window</b> | last %d days\n\n", m.LookbackDays))
	b.WriteString(fmt.Sprintf("As of %s (window from %s)\n", m.AsOfDate.Format("2006-01-02"), m.StartDate.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Today: %.4f | High: %.4f | Avg: %.4f | Low: %.4f\n", m.TodayNav, m.HighNav, m.AvgNav, m.LowNav))
	b.WriteString(fmt.Sprintf("vs high: %s\n", FormatPct(m.PctVsHigh)))
	b.WriteString(fmt.Sprintf("vs avg:  %s\n", FormatPct(m.PctVsAvg)))
	b.WriteString(fmt.Sprintf("vs low:  %s\n", FormatPct(m.PctVsLow)))
	return b.String()
}

// DipRow is one line of the favourites dip report.
type DipRow struct {
	Ref       model.SchemeRef
	Nav       float64
	DipFactor float64
}

// FormatDipReport formats the per-favourite dip factors for the /dips
// command.
func FormatDipReport(rows []DipRow) string {
	if len(rows) == 0 {
		return "No favourite schemes yet."
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>Favourites dip report</b> | %s\n\n", time.Now().Format("2006-01-02")))
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("• %s (%s)\n  NAV %.4f | dip factor %.3f\n", r.Ref.SchemeName, r.Ref.SchemeCode, r.Nav, r.DipFactor))
	}
	return b.String()
}

// FormatSimulationSummary formats a completed run for notification.
func FormatSimulationSummary(schemeCode string, events int, m *model.FinalMetrics) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🧮 <b>Simulation finished</b> | scheme %s\n\n", schemeCode))
	b.WriteString(fmt.Sprintf("Investments: %d\n", events))
	b.WriteString(fmt.Sprintf("Total invested: %.2f\n", m.TotalInvested))
	b.WriteString(fmt.Sprintf("Final value: %.2f (profit %.2f)\n", m.FinalValue, m.Profit))
	b.WriteString(fmt.Sprintf("ROI: %s | XIRR: %s\n", FormatPct(m.ROI), FormatPct(m.XIRR)))
	b.WriteString(fmt.Sprintf("Units: %.4f | Latest NAV: %.4f | Avg buy NAV: %.4f\n", m.TotalUnits, m.LatestNav, m.AverageNav))
	return b.String()
}
