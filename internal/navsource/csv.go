package navsource

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"FundPilot/internal/model"
)

var csvDateLayouts = []string{"2006-01-02", "02-01-2006", "02-Jan-2006"}

// LoadCSV reads a NAV series from a two-column date,nav file. A header
// row is detected and skipped. Dates may be YYYY-MM-DD, DD-MM-YYYY or
// DD-Mon-YYYY.
func LoadCSV(path string) (model.NavSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open nav csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read nav csv: %w", err)
	}

	series := make(model.NavSeries, 0, len(rows))
	for i, row := range rows {
		date, dateErr := parseCSVDate(row[0])
		nav, navErr := strconv.ParseFloat(row[1], 64)
		if dateErr != nil || navErr != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("%w: bad csv row %d: %q,%q", model.ErrData, i+1, row[0], row[1])
		}
		series = append(series, model.NavPoint{Date: date, Nav: nav})
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: csv %s has no nav rows", model.ErrData, path)
	}
	return series.Sorted(), nil
}

func parseCSVDate(s string) (time.Time, error) {
	for _, layout := range csvDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return model.Day(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
