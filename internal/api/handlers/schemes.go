package handlers

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"FundPilot/internal/api/models"
	"FundPilot/internal/dipfactor"
	"FundPilot/internal/model"
	"FundPilot/internal/navmetrics"
	"FundPilot/internal/navsource"

	"github.com/gin-gonic/gin"
)

// SchemeHandler serves scheme discovery, NAV history and window metrics.
type SchemeHandler struct {
	Source navsource.Source
	Calc   *dipfactor.Calculator
}

func NewSchemeHandler(source navsource.Source, calc *dipfactor.Calculator) *SchemeHandler {
	return &SchemeHandler{Source: source, Calc: calc}
}

// ListSchemes handles GET /api/v1/schemes?q=substring
func (h *SchemeHandler) ListSchemes(c *gin.Context) {
	codes, err := h.Source.SchemeCodes()
	if err != nil {
		writeError(c, err)
		return
	}

	q := strings.ToLower(c.Query("q"))
	refs := make([]model.SchemeRef, 0, len(codes))
	for code, name := range codes {
		if q != "" && !strings.Contains(strings.ToLower(name), q) {
			continue
		}
		refs = append(refs, model.SchemeRef{SchemeCode: code, SchemeName: name})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].SchemeCode < refs[j].SchemeCode })

	c.JSON(http.StatusOK, refs)
}

// GetScheme handles GET /api/v1/schemes/:code
func (h *SchemeHandler) GetScheme(c *gin.Context) {
	scheme, err := h.Source.Details(c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, scheme)
}

// GetHistory handles GET /api/v1/schemes/:code/history
func (h *SchemeHandler) GetHistory(c *gin.Context) {
	series, err := h.Source.History(c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// GetMetrics handles GET /api/v1/schemes/:code/metrics?lookback=30,60,90
// and returns one window-metrics block per lookback plus the weekly dip
// factor at the latest NAV date.
func (h *SchemeHandler) GetMetrics(c *gin.Context) {
	code := c.Param("code")
	lookbacks, err := parseLookbacks(c.DefaultQuery("lookback", "30,60,90"))
	if err != nil {
		badRequest(c, "INVALID_LOOKBACK", err)
		return
	}

	series, err := h.Source.History(code)
	if err != nil {
		writeError(c, err)
		return
	}

	windows := make([]model.NavWindowMetrics, 0, len(lookbacks))
	for _, days := range lookbacks {
		m, err := navmetrics.Compute(series, days)
		if err != nil {
			writeError(c, err)
			return
		}
		windows = append(windows, m)
	}

	factor, err := h.Calc.ForFrequency(series, model.FrequencyWeekly)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SchemeMetricsResponse{
		SchemeCode: code,
		AsOf:       series.MaxDate(),
		Windows:    windows,
		DipFactor:  factor,
	})
}

func parseLookbacks(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		days, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("lookback %q is not a number", p)
		}
		out = append(out, days)
	}
	return out, nil
}
