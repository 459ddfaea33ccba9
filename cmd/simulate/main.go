package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"FundPilot/internal/dipfactor"
	"FundPilot/internal/model"
	"FundPilot/internal/navsource"
	"FundPilot/internal/simulator"
)

func main() {
	csvPath := flag.String("csv", "", "load NAV history from a CSV file (date,nav)")
	scheme := flag.String("scheme", "", "fetch NAV history for this scheme code")
	baseURL := flag.String("base-url", "https://api.mfapi.in", "NAV API base URL")
	frequency := flag.String("frequency", "weekly", "investment cadence: weekly or monthly")

	lumpsum := flag.Float64("lumpsum", -1, "lumpsum pool (default per cadence)")
	sip := flag.Float64("sip", -1, "fixed SIP amount (default per cadence)")
	carry := flag.Bool("carry", false, "carry unused lumpsum forward")
	weeks := flag.Int("weeks", 0, "weekly horizon in weeks (default 150)")
	weekday := flag.Int("weekday", -1, "weekly anchor day, 0=Sunday (default 5, Friday)")
	months := flag.Int("months", 0, "monthly horizon in months (default 24)")
	dayOfMonth := flag.Int("day", 0, "monthly anchor day of month (default 5)")

	wRecent := flag.Float64("w-recent", 0.4, "weight of recent vs historical window")
	wPeak := flag.Float64("w-peak", 0.3, "weight of peak vs average drop")
	minDrop := flag.Float64("min-drop", 3, "drop percentage where scaling starts")
	maxDrop := flag.Float64("max-drop", 8, "drop percentage where scaling saturates")
	flag.Parse()

	series, err := loadSeries(*csvPath, *scheme, *baseURL)
	if err != nil {
		log.Fatalf("[FATAL] load nav history: %v", err)
	}
	sim, err := simulator.New(series)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	weights := dipfactor.Weights{RecentVsHistorical: *wRecent, PeakVsAverage: *wPeak}
	thresholds := dipfactor.ThresholdRange{MinDropPct: *minDrop, MaxDropPct: *maxDrop}

	var history []model.InvestmentEvent
	var metrics model.FinalMetrics
	switch *frequency {
	case "weekly":
		p := simulator.DefaultWeeklyParams()
		p.Weights, p.Thresholds, p.CarryForward = weights, thresholds, *carry
		if *lumpsum >= 0 {
			p.Lumpsum = *lumpsum
		}
		if *sip >= 0 {
			p.SIPAmount = *sip
		}
		if *weeks > 0 {
			p.Weeks = *weeks
		}
		if *weekday >= 0 {
			p.Weekday = time.Weekday(*weekday)
		}
		history, metrics, err = sim.SimulateWeekly(p)
	case "monthly":
		p := simulator.DefaultMonthlyParams()
		p.Weights, p.Thresholds, p.CarryForward = weights, thresholds, *carry
		if *lumpsum >= 0 {
			p.Lumpsum = *lumpsum
		}
		if *sip >= 0 {
			p.SIPAmount = *sip
		}
		if *months > 0 {
			p.Months = *months
		}
		if *dayOfMonth > 0 {
			p.DayOfMonth = *dayOfMonth
		}
		history, metrics, err = sim.SimulateMonthly(p)
	default:
		log.Fatalf("[FATAL] unknown frequency %q (want weekly or monthly)", *frequency)
	}
	if err != nil {
		log.Fatalf("[FATAL] simulation: %v", err)
	}

	printRun(history, metrics)
}

func loadSeries(csvPath, scheme, baseURL string) (model.NavSeries, error) {
	switch {
	case csvPath != "":
		return navsource.LoadCSV(csvPath)
	case scheme != "":
		return navsource.NewMFAPIFetcher(baseURL, os.Getenv("HTTPS_PROXY")).History(scheme)
	default:
		return nil, fmt.Errorf("either -csv or -scheme is required")
	}
}

func printRun(history []model.InvestmentEvent, metrics model.FinalMetrics) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tDAY\tNAV\tDIP FACTOR\tDIP BUY\tSIP\tTOTAL\tUNITS")
	for _, e := range history {
		fmt.Fprintf(w, "%s\t%s\t%.4f\t%.3f\t%.2f\t%.2f\t%.2f\t%.4f\n",
			e.Date.Format("2006-01-02"), e.Weekday, e.Nav, e.DipFactor, e.DipBuy, e.SIP, e.TotalInvestment, e.Units)
	}
	w.Flush()

	fmt.Println()
	fmt.Printf("Investments:    %d\n", len(history))
	fmt.Printf("Total invested: %.2f\n", metrics.TotalInvested)
	fmt.Printf("Final value:    %.2f\n", metrics.FinalValue)
	fmt.Printf("Profit:         %.2f\n", metrics.Profit)
	fmt.Printf("ROI:            %.2f%%\n", metrics.ROI)
	fmt.Printf("XIRR:           %.2f%%\n", metrics.XIRR)
	fmt.Printf("Units:          %.4f\n", metrics.TotalUnits)
	fmt.Printf("Latest NAV:     %.4f\n", metrics.LatestNav)
	fmt.Printf("Avg buy NAV:    %.4f\n", metrics.AverageNav)
}
