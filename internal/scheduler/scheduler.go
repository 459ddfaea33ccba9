package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"FundPilot/internal/dipfactor"
	"FundPilot/internal/model"
	"FundPilot/internal/navsource"
	"FundPilot/internal/notifier"
	"FundPilot/internal/recorder"
	"FundPilot/internal/store"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic dip watch over the favourites list and
// answers Telegram commands.
type Scheduler struct {
	Cron           *cron.Cron
	Source         navsource.Source
	Watchlist      *store.Watchlist
	Notifier       *notifier.Telegram
	Recorder       recorder.Recorder
	Calc           *dipfactor.Calculator
	AlertThreshold float64
	Ctx            context.Context
}

// NewScheduler creates a Scheduler. Notifier may be nil; alerts then go
// to the log only.
func NewScheduler(ctx context.Context, source navsource.Source, wl *store.Watchlist, tn *notifier.Telegram, rec recorder.Recorder, calc *dipfactor.Calculator, alertThreshold float64) *Scheduler {
	return &Scheduler{
		Cron:           cron.New(cron.WithSeconds()),
		Source:         source,
		Watchlist:      wl,
		Notifier:       tn,
		Recorder:       rec,
		Calc:           calc,
		AlertThreshold: alertThreshold,
		Ctx:            ctx,
	}
}

// Register adds the dip watch job on the given cron expression.
func (s *Scheduler) Register(watchCron string) error {
	if _, err := s.Cron.AddFunc(watchCron, s.watchTask); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunWatchNow executes the watch task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunWatchNow() {
	s.watchTask()
}

func (s *Scheduler) watchTask() {
	log.Println("[INFO] running dip watch over favourites")
	favourites, err := s.Watchlist.Favourites()
	if err != nil {
		log.Printf("[ERROR] dip watch: load favourites: %v", err)
		return
	}
	if len(favourites) == 0 {
		log.Println("[INFO] dip watch: no favourites configured")
		return
	}

	for _, ref := range favourites {
		row, err := s.dipRow(ref)
		if err != nil {
			log.Printf("[ERROR] dip watch %s: %v", ref.SchemeCode, err)
			continue
		}
		if row.DipFactor < s.AlertThreshold {
			continue
		}

		alert := &recorder.DipAlert{
			SchemeCode: ref.SchemeCode,
			SchemeName: ref.SchemeName,
			Nav:        row.Nav,
			DipFactor:  row.DipFactor,
			Threshold:  s.AlertThreshold,
		}
		s.trySend(notifier.FormatDipAlert(alert))
		if err := s.Recorder.RecordDipAlert(alert); err != nil {
			log.Printf("[ERROR] record dip alert: %v", err)
		}
	}
}

func (s *Scheduler) dipRow(ref model.SchemeRef) (notifier.DipRow, error) {
	series, err := s.Source.History(ref.SchemeCode)
	if err != nil {
		return notifier.DipRow{}, fmt.Errorf("fetch history: %w", err)
	}
	factor, err := s.Calc.ForFrequency(series, model.FrequencyWeekly)
	if err != nil {
		return notifier.DipRow{}, fmt.Errorf("dip factor: %w", err)
	}
	nav := 0.0
	if len(series) > 0 {
		nav = series[len(series)-1].Nav
	}
	return notifier.DipRow{Ref: ref, Nav: nav, DipFactor: factor}, nil
}

// HandleCommand processes a Telegram command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch strings.TrimSpace(command) {
	case "/dips":
		favourites, err := s.Watchlist.Favourites()
		if err != nil {
			return fmt.Sprintf("Could not load favourites: %v", err)
		}
		rows := make([]notifier.DipRow, 0, len(favourites))
		for _, ref := range favourites {
			row, err := s.dipRow(ref)
			if err != nil {
				log.Printf("[WARN] dip report %s: %v", ref.SchemeCode, err)
				continue
			}
			rows = append(rows, row)
		}
		return notifier.FormatDipReport(rows)
	case "/favourites":
		favourites, err := s.Watchlist.Favourites()
		if err != nil {
			return fmt.Sprintf("Could not load favourites: %v", err)
		}
		if len(favourites) == 0 {
			return "No favourite schemes yet."
		}
		var b strings.Builder
		b.WriteString("⭐ <b>Favourites</b>\n\n")
		for _, ref := range favourites {
			b.WriteString(fmt.Sprintf("• %s (%s)\n", ref.SchemeName, ref.SchemeCode))
		}
		return b.String()
	default:
		return "Commands:\n• /dips - dip factors for favourites\n• /favourites - list favourites"
	}
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		log.Printf("[INFO] notification (no telegram configured):\n%s", text)
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
