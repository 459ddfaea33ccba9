package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"FundPilot/internal/api"
	"FundPilot/internal/config"
	"FundPilot/internal/dipfactor"
	"FundPilot/internal/navsource"
	"FundPilot/internal/notifier"
	"FundPilot/internal/recorder"
	"FundPilot/internal/scheduler"
	"FundPilot/internal/store"

	"github.com/rs/cors"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] FundPilot starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init NAV source
	var source navsource.Source
	if cfg.NavSource.BaseURL == "mock" {
		source = &navsource.MockSource{}
	} else {
		source = navsource.NewMFAPIFetcher(cfg.NavSource.BaseURL, cfg.Proxy)
	}
	log.Printf("[INFO] nav source: %s", source.Name())

	// Init stores
	stores := store.NewStores(cfg.Storage.DataDir)
	watchlist := store.NewWatchlist(stores.Favourites, stores.Blacklist)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Storage.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Storage.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init dip factor calculator from config
	calc, err := dipfactor.NewCalculator(
		dipfactor.Weights{
			RecentVsHistorical: cfg.Strategy.RecentVsHistorical,
			PeakVsAverage:      cfg.Strategy.PeakVsAverage,
		},
		dipfactor.ThresholdRange{
			MinDropPct: cfg.Strategy.MinDropPct,
			MaxDropPct: cfg.Strategy.MaxDropPct,
		},
	)
	if err != nil {
		log.Fatalf("[FATAL] strategy config: %v", err)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init Telegram notifier (optional)
	var tn *notifier.Telegram
	if cfg.Telegram.BotToken != "" {
		tn = notifier.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, source, watchlist, tn, rec, calc, cfg.Strategy.AlertThreshold)
	if err := sched.Register(cfg.Schedule.WatchCron); err != nil {
		log.Fatalf("[FATAL] register watch task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	// Optional: run immediately on start
	if cfg.Schedule.RunOnStart || os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing dip watch now")
		go sched.RunWatchNow()
	}

	// HTTP API
	router := api.NewRouter(api.Deps{
		Source:    source,
		Stores:    stores,
		Watchlist: watchlist,
		Recorder:  rec,
		Calc:      calc,
	})
	server := &http.Server{
		Addr:    cfg.Server.ListenAddr,
		Handler: cors.AllowAll().Handler(router),
	}
	go func() {
		log.Printf("[INFO] HTTP API listening on %s", cfg.Server.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	log.Println("[INFO] FundPilot is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARN] http shutdown: %v", err)
	}
	log.Println("[INFO] FundPilot stopped")
}
