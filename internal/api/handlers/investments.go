package handlers

import (
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"

	"FundPilot/internal/api/models"
	"FundPilot/internal/model"
	"FundPilot/internal/navsource"
	"FundPilot/internal/portfolio"
	"FundPilot/internal/store"

	"github.com/gin-gonic/gin"
)

// InvestmentHandler manages the personal investment ledger and its
// valuation.
type InvestmentHandler struct {
	Stores *store.Stores
	Source navsource.Source
}

func NewInvestmentHandler(stores *store.Stores, source navsource.Source) *InvestmentHandler {
	return &InvestmentHandler{Stores: stores, Source: source}
}

// List handles GET /api/v1/investments
func (h *InvestmentHandler) List(c *gin.Context) {
	ledger, err := h.Stores.Investments.Load()
	if err != nil {
		writeError(c, err)
		return
	}
	if ledger == nil {
		ledger = []model.Investment{}
	}
	c.JSON(http.StatusOK, ledger)
}

// Add handles POST /api/v1/investments. Units are derived from the
// amount and NAV; the record id is assigned server-side.
func (h *InvestmentHandler) Add(c *gin.Context) {
	var req models.AddInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	navDate, err := time.Parse("2006-01-02", req.NavDate)
	if err != nil {
		badRequest(c, "INVALID_REQUEST", fmt.Errorf("nav_date must be YYYY-MM-DD: %w", err))
		return
	}
	if req.Nav <= 0 {
		badRequest(c, "INVALID_REQUEST", fmt.Errorf("nav must be positive, got %.4f", req.Nav))
		return
	}
	if req.AmountInvested <= 0 {
		badRequest(c, "INVALID_REQUEST", fmt.Errorf("amount_invested must be positive, got %.2f", req.AmountInvested))
		return
	}

	saved, err := h.Stores.AddInvestment(model.Investment{
		SchemeCode:     req.SchemeCode,
		SchemeName:     req.SchemeName,
		NavDate:        model.Day(navDate),
		Nav:            req.Nav,
		AmountInvested: req.AmountInvested,
		UnitsBought:    req.AmountInvested / req.Nav,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// Remove handles DELETE /api/v1/investments/:id
func (h *InvestmentHandler) Remove(c *gin.Context) {
	if err := h.Stores.Investments.RemoveByKey(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PortfolioMetrics handles GET /api/v1/investments/metrics. The ledger
// is valued per scheme at each scheme's latest NAV; schemes whose NAV
// cannot be fetched are logged and skipped rather than failing the
// whole valuation.
func (h *InvestmentHandler) PortfolioMetrics(c *gin.Context) {
	ledger, err := h.Stores.Investments.Load()
	if err != nil {
		writeError(c, err)
		return
	}

	byScheme := make(map[string][]model.Investment)
	names := make(map[string]string)
	for _, inv := range ledger {
		byScheme[inv.SchemeCode] = append(byScheme[inv.SchemeCode], inv)
		names[inv.SchemeCode] = inv.SchemeName
	}

	codes := make([]string, 0, len(byScheme))
	for code := range byScheme {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	schemes := make([]models.SchemeValuation, 0, len(codes))
	for _, code := range codes {
		latest, err := h.Source.Latest(code)
		if err != nil {
			log.Printf("[WARN] portfolio valuation: latest nav for %s: %v", code, err)
			continue
		}
		schemes = append(schemes, models.SchemeValuation{
			SchemeCode: code,
			SchemeName: names[code],
			Metrics:    portfolio.Metrics(byScheme[code], latest.Date, latest.Nav),
		})
	}

	c.JSON(http.StatusOK, models.PortfolioResponse{Schemes: schemes})
}
