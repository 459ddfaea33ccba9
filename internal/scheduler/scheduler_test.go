package scheduler

import (
	"context"
	"strings"
	"testing"

	"FundPilot/internal/dipfactor"
	"FundPilot/internal/model"
	"FundPilot/internal/navsource"
	"FundPilot/internal/recorder"
	"FundPilot/internal/store"
)

func newTestScheduler(t *testing.T) (*Scheduler, *store.Watchlist) {
	t.Helper()
	stores := store.NewStores(t.TempDir())
	wl := store.NewWatchlist(stores.Favourites, stores.Blacklist)
	s := NewScheduler(context.Background(), &navsource.MockSource{}, wl, nil, recorder.NewNoopRecorder(), dipfactor.Default(), 0.6)
	return s, wl
}

func TestRegister_BadCron(t *testing.T) {
	s, _ := newTestScheduler(t)
	if err := s.Register("not a cron spec"); err == nil {
		t.Fatal("expected error for malformed cron expression")
	}
	if err := s.Register("0 0 18 * * 1-5"); err != nil {
		t.Fatalf("valid spec should register, got %v", err)
	}
}

func TestHandleCommand_Favourites(t *testing.T) {
	s, wl := newTestScheduler(t)

	reply := s.HandleCommand("/favourites")
	if !strings.Contains(reply, "No favourite schemes") {
		t.Errorf("empty watchlist reply: %q", reply)
	}

	if err := wl.AddFavourite(model.SchemeRef{SchemeCode: "000001", SchemeName: "Mock Growth Fund"}); err != nil {
		t.Fatal(err)
	}
	reply = s.HandleCommand("/favourites")
	if !strings.Contains(reply, "Mock Growth Fund") {
		t.Errorf("expected favourite in reply, got %q", reply)
	}
}

func TestHandleCommand_Dips(t *testing.T) {
	s, wl := newTestScheduler(t)
	if err := wl.AddFavourite(model.SchemeRef{SchemeCode: "000001", SchemeName: "Mock Growth Fund"}); err != nil {
		t.Fatal(err)
	}

	reply := s.HandleCommand("/dips")
	if !strings.Contains(reply, "000001") {
		t.Errorf("expected scheme code in dip report, got %q", reply)
	}
	if !strings.Contains(reply, "dip factor") {
		t.Errorf("expected a dip factor line, got %q", reply)
	}
}

func TestHandleCommand_Unknown(t *testing.T) {
	s, _ := newTestScheduler(t)
	reply := s.HandleCommand("/bogus")
	if !strings.Contains(reply, "/dips") {
		t.Errorf("expected help text, got %q", reply)
	}
}

func TestRunWatchNow_NoNotifier(t *testing.T) {
	s, wl := newTestScheduler(t)
	if err := wl.AddFavourite(model.SchemeRef{SchemeCode: "000001", SchemeName: "Mock Growth Fund"}); err != nil {
		t.Fatal(err)
	}
	// with no Telegram client configured the watch must log and record
	// without panicking
	s.RunWatchNow()
}
