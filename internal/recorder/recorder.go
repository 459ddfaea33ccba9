package recorder

import "FundPilot/internal/model"

// SimulationRun captures one completed simulation for later analysis.
type SimulationRun struct {
	SchemeCode   string
	Frequency    model.Frequency
	Lumpsum      float64
	SIPAmount    float64
	CarryForward bool
	Periods      int
	Events       int
	Metrics      model.FinalMetrics
}

// DipAlert records a watch-job trigger for a favourite scheme.
type DipAlert struct {
	SchemeCode string
	SchemeName string
	Nav        float64
	DipFactor  float64
	Threshold  float64
}

// Recorder persists simulation runs and dip alerts for analysis.
type Recorder interface {
	RecordSimulation(run *SimulationRun) error
	RecordDipAlert(alert *DipAlert) error
	Close() error
}
