package model

import "time"

// Scheme holds registry metadata for one mutual fund scheme.
type Scheme struct {
	SchemeCode     string    `json:"scheme_code"`
	SchemeName     string    `json:"scheme_name"`
	FundHouse      string    `json:"fund_house"`
	SchemeType     string    `json:"scheme_type"`
	SchemeCategory string    `json:"scheme_category"`
	CurrentDate    time.Time `json:"current_date"`
	CurrentNav     float64   `json:"current_nav"`
}

// SchemeRef is the code/name pair kept in the favourites and blacklist
// registries.
type SchemeRef struct {
	SchemeCode string `json:"scheme_code"`
	SchemeName string `json:"scheme_name"`
}

// Investment is one purchase recorded in the user's ledger.
type Investment struct {
	InvestmentID   string    `json:"investment_id"`
	SchemeCode     string    `json:"scheme_code"`
	SchemeName     string    `json:"scheme_name"`
	NavDate        time.Time `json:"nav_date"`
	Nav            float64   `json:"nav"`
	AmountInvested float64   `json:"amount_invested"`
	UnitsBought    float64   `json:"units_bought"`
}
