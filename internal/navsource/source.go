package navsource

import (
	"math"
	"time"

	"FundPilot/internal/model"
)

// Source supplies NAV history and scheme metadata. Implementations must
// return date-ascending series with unique dates.
type Source interface {
	History(schemeCode string) (model.NavSeries, error)
	Latest(schemeCode string) (model.NavPoint, error)
	Details(schemeCode string) (*model.Scheme, error)
	SchemeCodes() (map[string]string, error)
	Name() string
}

// MockSource returns controllable fixed data for development and testing.
type MockSource struct {
	Series model.NavSeries
	Scheme *model.Scheme
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) History(_ string) (model.NavSeries, error) {
	if m.Series != nil {
		return m.Series.Sorted(), nil
	}
	return generateMockSeries(100, 400), nil
}

func (m *MockSource) Latest(schemeCode string) (model.NavPoint, error) {
	series, err := m.History(schemeCode)
	if err != nil {
		return model.NavPoint{}, err
	}
	return series[len(series)-1], nil
}

func (m *MockSource) Details(schemeCode string) (*model.Scheme, error) {
	if m.Scheme != nil {
		return m.Scheme, nil
	}
	latest, err := m.Latest(schemeCode)
	if err != nil {
		return nil, err
	}
	return &model.Scheme{
		SchemeCode:     schemeCode,
		SchemeName:     "Mock Growth Fund",
		FundHouse:      "Mock AMC",
		SchemeType:     "Open Ended",
		SchemeCategory: "Equity",
		CurrentDate:    latest.Date,
		CurrentNav:     latest.Nav,
	}, nil
}

func (m *MockSource) SchemeCodes() (map[string]string, error) {
	return map[string]string{"000001": "Mock Growth Fund"}, nil
}

func generateMockSeries(baseNav float64, days int) model.NavSeries {
	series := make(model.NavSeries, 0, days)
	start := model.Day(time.Now()).AddDate(0, 0, -days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		nav := baseNav * (1 + 0.0003*float64(i) + 0.05*math.Sin(float64(i)/17))
		series = append(series, model.NavPoint{Date: d, Nav: nav})
	}
	return series
}
