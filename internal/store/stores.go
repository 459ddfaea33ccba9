package store

import (
	"path/filepath"

	"github.com/google/uuid"

	"FundPilot/internal/model"
)

// Stores bundles the flat JSON registries kept under the data directory.
type Stores struct {
	Favourites  *Collection[model.SchemeRef]
	Blacklist   *Collection[model.SchemeRef]
	Investments *Collection[model.Investment]
	Simulations *Collection[model.SimulationParams]
}

// NewStores creates all registries under dataDir.
func NewStores(dataDir string) *Stores {
	refKey := func(r model.SchemeRef) string { return r.SchemeCode }
	return &Stores{
		Favourites:  NewCollection(filepath.Join(dataDir, "favourites.json"), refKey),
		Blacklist:   NewCollection(filepath.Join(dataDir, "blacklist.json"), refKey),
		Investments: NewCollection(filepath.Join(dataDir, "my_investments.json"), func(i model.Investment) string { return i.InvestmentID }),
		Simulations: NewCollection(filepath.Join(dataDir, "saved_simulations.json"), func(p model.SimulationParams) string { return p.ID }),
	}
}

// AddInvestment assigns an id when missing and appends to the ledger.
func (s *Stores) AddInvestment(inv model.Investment) (model.Investment, error) {
	if inv.InvestmentID == "" {
		inv.InvestmentID = uuid.NewString()
	}
	if err := s.Investments.AddUnique(inv); err != nil {
		return model.Investment{}, err
	}
	return inv, nil
}

// SaveSimulation assigns an id when missing and upserts by id, so saving
// an existing record updates it in place.
func (s *Stores) SaveSimulation(p model.SimulationParams) (model.SimulationParams, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := s.Simulations.Upsert(p); err != nil {
		return model.SimulationParams{}, err
	}
	return p, nil
}
