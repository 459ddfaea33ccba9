package navsource

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"FundPilot/internal/model"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "navs.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSV_HeaderAndMixedLayouts(t *testing.T) {
	path := writeCSV(t, "date,nav\n2024-01-02,101.5\n03-01-2024,102.25\n04-Jan-2024,103\n")
	series, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 3 {
		t.Fatalf("expected 3 points, got %d", len(series))
	}
	if !series[0].Date.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected first date %s", series[0].Date)
	}
	if series[2].Nav != 103 {
		t.Errorf("expected last nav 103, got %.2f", series[2].Nav)
	}
}

func TestLoadCSV_SortsUnorderedRows(t *testing.T) {
	path := writeCSV(t, "2024-01-05,105\n2024-01-03,103\n2024-01-04,104\n")
	series, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(series); i++ {
		if !series[i-1].Date.Before(series[i].Date) {
			t.Fatalf("series not ascending at %d", i)
		}
	}
}

func TestLoadCSV_BadRow(t *testing.T) {
	path := writeCSV(t, "2024-01-03,103\nnot-a-date,104\n")
	if _, err := LoadCSV(path); !errors.Is(err, model.ErrData) {
		t.Fatalf("expected ErrData for bad body row, got %v", err)
	}
}

func TestLoadCSV_Empty(t *testing.T) {
	path := writeCSV(t, "date,nav\n")
	if _, err := LoadCSV(path); !errors.Is(err, model.ErrData) {
		t.Fatalf("expected ErrData for header-only file, got %v", err)
	}
}
