package navsource

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"FundPilot/internal/model"
)

// DefaultBaseURL is the public mfapi.in endpoint serving AMFI NAV data.
const DefaultBaseURL = "https://api.mfapi.in"

// MFAPIFetcher implements Source against the mfapi.in REST API.
type MFAPIFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewMFAPIFetcher creates a fetcher with optional proxy support.
func NewMFAPIFetcher(baseURL, proxyURL string) *MFAPIFetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &MFAPIFetcher{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *MFAPIFetcher) Name() string { return "mfapi" }

// mfapiScheme is the JSON shape of /mf/{code} and /mf/{code}/latest.
type mfapiScheme struct {
	Meta struct {
		FundHouse      string `json:"fund_house"`
		SchemeType     string `json:"scheme_type"`
		SchemeCategory string `json:"scheme_category"`
		SchemeName     string `json:"scheme_name"`
	} `json:"meta"`
	Data []struct {
		Date string `json:"date"` // DD-MM-YYYY
		Nav  string `json:"nav"`
	} `json:"data"`
	Status string `json:"status"`
}

// History fetches the full NAV history for a scheme. When the latest
// quote is newer than the last history row it is appended, so a series
// always ends at the most recent published NAV.
func (f *MFAPIFetcher) History(schemeCode string) (model.NavSeries, error) {
	payload, err := f.fetchScheme(schemeCode, "")
	if err != nil {
		return nil, err
	}
	series := make(model.NavSeries, 0, len(payload.Data))
	for _, row := range payload.Data {
		point, err := parseNavRow(row.Date, row.Nav)
		if err != nil {
			log.Printf("[WARN] mfapi: skipping row for scheme %s: %v", schemeCode, err)
			continue
		}
		series = append(series, point)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: scheme %s has no nav history", model.ErrData, schemeCode)
	}
	series = series.Sorted()

	if latest, err := f.Latest(schemeCode); err == nil && latest.Date.After(series.MaxDate()) {
		series = append(series, latest)
	}
	return series, nil
}

// Latest fetches the most recent published NAV for a scheme.
func (f *MFAPIFetcher) Latest(schemeCode string) (model.NavPoint, error) {
	payload, err := f.fetchScheme(schemeCode, "/latest")
	if err != nil {
		return model.NavPoint{}, err
	}
	if len(payload.Data) == 0 {
		return model.NavPoint{}, fmt.Errorf("%w: scheme %s has no latest nav", model.ErrData, schemeCode)
	}
	return parseNavRow(payload.Data[0].Date, payload.Data[0].Nav)
}

// Details fetches scheme metadata plus the current quote.
func (f *MFAPIFetcher) Details(schemeCode string) (*model.Scheme, error) {
	payload, err := f.fetchScheme(schemeCode, "/latest")
	if err != nil {
		return nil, err
	}
	scheme := &model.Scheme{
		SchemeCode:     schemeCode,
		SchemeName:     payload.Meta.SchemeName,
		FundHouse:      payload.Meta.FundHouse,
		SchemeType:     payload.Meta.SchemeType,
		SchemeCategory: payload.Meta.SchemeCategory,
	}
	if len(payload.Data) > 0 {
		point, err := parseNavRow(payload.Data[0].Date, payload.Data[0].Nav)
		if err != nil {
			return nil, err
		}
		scheme.CurrentDate = point.Date
		scheme.CurrentNav = point.Nav
	}
	return scheme, nil
}

// SchemeCodes fetches the full scheme registry as code -> name.
func (f *MFAPIFetcher) SchemeCodes() (map[string]string, error) {
	body, err := f.get(f.BaseURL + "/mf")
	if err != nil {
		return nil, err
	}
	var rows []struct {
		SchemeCode int    `json:"schemeCode"`
		SchemeName string `json:"schemeName"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode scheme list: %w", err)
	}
	codes := make(map[string]string, len(rows))
	for _, r := range rows {
		codes[strconv.Itoa(r.SchemeCode)] = r.SchemeName
	}
	return codes, nil
}

func (f *MFAPIFetcher) fetchScheme(schemeCode, suffix string) (*mfapiScheme, error) {
	body, err := f.get(fmt.Sprintf("%s/mf/%s%s", f.BaseURL, url.PathEscape(schemeCode), suffix))
	if err != nil {
		return nil, err
	}
	var payload mfapiScheme
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode scheme %s: %w", schemeCode, err)
	}
	return &payload, nil
}

func (f *MFAPIFetcher) get(endpoint string) ([]byte, error) {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mfapi fetch: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("mfapi read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mfapi: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

func parseNavRow(dateStr, navStr string) (model.NavPoint, error) {
	date, err := time.Parse("02-01-2006", dateStr)
	if err != nil {
		return model.NavPoint{}, fmt.Errorf("parse date %q: %w", dateStr, err)
	}
	nav, err := strconv.ParseFloat(navStr, 64)
	if err != nil {
		return model.NavPoint{}, fmt.Errorf("parse nav %q: %w", navStr, err)
	}
	if nav <= 0 {
		return model.NavPoint{}, fmt.Errorf("non-positive nav %.4f on %s", nav, dateStr)
	}
	return model.NavPoint{Date: model.Day(date), Nav: nav}, nil
}
