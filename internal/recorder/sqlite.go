package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists runs and alerts to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboard reads don't block service writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS simulation_runs (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			scheme_code    TEXT,
			frequency      TEXT,
			lumpsum        REAL,
			sip_amount     REAL,
			carry_forward  INTEGER,
			periods        INTEGER,
			events         INTEGER,
			total_invested REAL,
			final_value    REAL,
			profit         REAL,
			roi            REAL,
			xirr           REAL,
			total_units    REAL,
			latest_nav     REAL,
			average_nav    REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON simulation_runs(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_scheme ON simulation_runs(scheme_code)`,

		`CREATE TABLE IF NOT EXISTS dip_alerts (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			scheme_code TEXT,
			scheme_name TEXT,
			nav         REAL,
			dip_factor  REAL,
			threshold   REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_alerts_ts ON dip_alerts(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordSimulation(run *SimulationRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	carry := 0
	if run.CarryForward {
		carry = 1
	}
	m := run.Metrics

	_, err := r.db.Exec(`INSERT INTO simulation_runs
		(timestamp, scheme_code, frequency, lumpsum, sip_amount, carry_forward,
		 periods, events,
		 total_invested, final_value, profit, roi, xirr,
		 total_units, latest_nav, average_nav)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), run.SchemeCode, string(run.Frequency),
		run.Lumpsum, run.SIPAmount, carry,
		run.Periods, run.Events,
		m.TotalInvested, m.FinalValue, m.Profit, m.ROI, m.XIRR,
		m.TotalUnits, m.LatestNav, m.AverageNav,
	)
	return err
}

func (r *SQLiteRecorder) RecordDipAlert(alert *DipAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO dip_alerts
		(timestamp, scheme_code, scheme_name, nav, dip_factor, threshold)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), alert.SchemeCode, alert.SchemeName,
		alert.Nav, alert.DipFactor, alert.Threshold,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
