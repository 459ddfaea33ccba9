package model

import (
	"testing"
	"time"
)

func d(y int, m time.Month, dd int) time.Time {
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

func TestSorted_OrdersAndDedups(t *testing.T) {
	series := NavSeries{
		{Date: d(2024, 1, 3), Nav: 103},
		{Date: d(2024, 1, 1), Nav: 101},
		{Date: d(2024, 1, 2), Nav: 102},
		{Date: d(2024, 1, 2), Nav: 202}, // later entry wins
	}
	got := series.Sorted()
	if len(got) != 3 {
		t.Fatalf("expected 3 unique dates, got %d", len(got))
	}
	if got[1].Nav != 202 {
		t.Errorf("expected duplicate date to keep the later nav, got %.2f", got[1].Nav)
	}
	if len(series) != 4 {
		t.Error("Sorted must not mutate the receiver")
	}
}

func TestNavOn(t *testing.T) {
	series := NavSeries{
		{Date: d(2024, 1, 1), Nav: 101},
		{Date: d(2024, 1, 3), Nav: 103},
	}
	if nav, ok := series.NavOn(d(2024, 1, 3)); !ok || nav != 103 {
		t.Errorf("expected (103, true), got (%.2f, %v)", nav, ok)
	}
	if _, ok := series.NavOn(d(2024, 1, 2)); ok {
		t.Error("expected miss for a date between points")
	}
	// time-of-day must not matter
	noon := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)
	if nav, ok := series.NavOn(noon); !ok || nav != 101 {
		t.Errorf("expected midnight-truncated lookup to hit, got (%.2f, %v)", nav, ok)
	}
}

func TestOnOrBefore(t *testing.T) {
	series := NavSeries{
		{Date: d(2024, 1, 1), Nav: 101},
		{Date: d(2024, 1, 3), Nav: 103},
		{Date: d(2024, 1, 8), Nav: 108},
	}
	if p, ok := series.OnOrBefore(d(2024, 1, 5)); !ok || !p.Date.Equal(d(2024, 1, 3)) {
		t.Errorf("expected back-fill to 2024-01-03, got (%+v, %v)", p, ok)
	}
	if p, ok := series.OnOrBefore(d(2024, 1, 8)); !ok || p.Nav != 108 {
		t.Errorf("exact date should hit, got (%+v, %v)", p, ok)
	}
	if _, ok := series.OnOrBefore(d(2023, 12, 31)); ok {
		t.Error("expected miss before the series start")
	}
}

func TestUpTo(t *testing.T) {
	series := NavSeries{
		{Date: d(2024, 1, 1), Nav: 101},
		{Date: d(2024, 1, 3), Nav: 103},
		{Date: d(2024, 1, 8), Nav: 108},
	}
	if got := series.UpTo(d(2024, 1, 3)); len(got) != 2 {
		t.Errorf("expected 2 points up to 2024-01-03, got %d", len(got))
	}
	if got := series.UpTo(d(2023, 12, 1)); len(got) != 0 {
		t.Errorf("expected empty prefix before series start, got %d", len(got))
	}
	if got := series.UpTo(d(2025, 1, 1)); len(got) != 3 {
		t.Errorf("expected whole series, got %d", len(got))
	}
}
