package dipfactor

import (
	"errors"
	"math"
	"testing"
	"time"

	"FundPilot/internal/model"
)

func TestNormalizeDrop_Boundaries(t *testing.T) {
	c := Default() // band 3..8
	tests := []struct {
		drop float64
		want float64
	}{
		{4, 0},     // today above the reference
		{0, 0},     // no move
		{-2, 0},    // shallower than the band
		{-3, 0},    // band start is exclusive
		{-5.5, 0.5},
		{-8, 1},
		{-10, 1}, // saturated
	}
	for _, tt := range tests {
		got := c.normalizeDrop(tt.drop)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("normalizeDrop(%.1f): expected %.3f, got %.3f", tt.drop, tt.want, got)
		}
	}
}

func TestNormalizeDrop_Monotonic(t *testing.T) {
	c := Default()
	prev := -1.0
	for d := 0.0; d >= -12; d -= 0.25 {
		got := c.normalizeDrop(d)
		if got < prev {
			t.Fatalf("normalizeDrop not monotone: f(%.2f)=%.4f but previous was %.4f", d, got, prev)
		}
		prev = got
	}
}

func TestFactor_KnownBlend(t *testing.T) {
	c := Default()
	// recent: peak drop normalizes to 0.2, avg drop to 0
	// historical: peak drop 0.6, avg drop 0.4
	got := c.Factor(DropPair{Peak: -4, Avg: -2}, DropPair{Peak: -6, Avg: -5})
	// 0.4*(0.3*0.2) + 0.6*(0.3*0.6 + 0.7*0.4) = 0.3
	if math.Abs(got-0.3) > 1e-9 {
		t.Errorf("expected factor 0.3, got %.6f", got)
	}
}

func TestFactor_Range(t *testing.T) {
	c := Default()
	pairs := []DropPair{{0, 0}, {-1, -1}, {-5, -4}, {-9, -8}, {-50, -50}, {3, 7}}
	for _, recent := range pairs {
		for _, historical := range pairs {
			got := c.Factor(recent, historical)
			if got < 0 || got > 1 {
				t.Errorf("Factor(%+v, %+v) = %.4f outside [0,1]", recent, historical, got)
			}
		}
	}
}

func TestFactor_DeepDropSaturates(t *testing.T) {
	c := Default()
	got := c.Factor(DropPair{Peak: -20, Avg: -15}, DropPair{Peak: -30, Avg: -25})
	if got != 1.0 {
		t.Errorf("expected saturated factor 1.0, got %.4f", got)
	}
}

func TestNewCalculator_Invalid(t *testing.T) {
	cases := []struct {
		name string
		w    Weights
		r    ThresholdRange
	}{
		{"weight above one", Weights{RecentVsHistorical: 1.5, PeakVsAverage: 0.3}, DefaultThresholdRange()},
		{"negative weight", Weights{RecentVsHistorical: 0.4, PeakVsAverage: -0.1}, DefaultThresholdRange()},
		{"inverted band", DefaultWeights(), ThresholdRange{MinDropPct: 8, MaxDropPct: 3}},
		{"negative band start", DefaultWeights(), ThresholdRange{MinDropPct: -1, MaxDropPct: 8}},
	}
	for _, tt := range cases {
		if _, err := NewCalculator(tt.w, tt.r); !errors.Is(err, model.ErrConfig) {
			t.Errorf("%s: expected ErrConfig, got %v", tt.name, err)
		}
	}
}

func TestForFrequency_Unknown(t *testing.T) {
	series := model.NavSeries{{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Nav: 100}}
	got, err := Default().ForFrequency(series, "fortnightly")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("unknown frequency should yield 0, got %.4f", got)
	}
}

func TestForFrequency_CaseInsensitive(t *testing.T) {
	series := make(model.NavSeries, 0, 10)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		series = append(series, model.NavPoint{Date: start.AddDate(0, 0, i), Nav: 100})
	}
	lower, err := Default().ForFrequency(series, model.FrequencyWeekly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mixed, err := Default().ForFrequency(series, "Weekly")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lower != mixed {
		t.Errorf("case should not matter: %.4f vs %.4f", lower, mixed)
	}
	if lower != 0 {
		t.Errorf("flat series should have dip factor 0, got %.4f", lower)
	}
}
