package recorder

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"DealProjector/internal/model"
)

// SQLiteRecorder persists projection runs to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL so exports can be read while the service writes.
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
		`CREATE TABLE IF NOT EXISTS projection_runs (
			id                    TEXT PRIMARY KEY,
			timestamp             INTEGER NOT NULL,
			scenario              TEXT,
			source                TEXT,
			investment_type       TEXT,
			purchase_price        REAL,
			rehab_cost            REAL,
			after_repair_value    REAL,
			peak_cash_invested    REAL,
			cash_after_refinance  REAL,
			cash_recovered_pct    REAL,
			total_cash_flow       REAL,
			flip_profit           REAL,
			year1_dscr            REAL,
			year1_return_pct      REAL,
			year1_return_infinite INTEGER,
			final_equity          REAL,
			params_json           TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON projection_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS projection_years (
			run_id              TEXT NOT NULL REFERENCES projection_runs(id),
			year                INTEGER NOT NULL,
			rent                REAL,
			expenses            REAL,
			interest_paid       REAL,
			cash_flow           REAL,
			equity_growth       REAL,
			total_return        REAL,
			cash_invested       REAL,
			total_cash_invested REAL,
			return_pct          REAL,
			return_infinite     INTEGER,
			dscr                REAL,
			end_value           REAL,
			end_debt            REAL,
			end_equity          REAL,
			PRIMARY KEY (run_id, year)
		)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordProjection writes the run and its 30 yearly rows in one transaction.
func (r *SQLiteRecorder) RecordProjection(ctx context.Context, run *ProjectionRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	params, err := json.Marshal(run.Params)
	if err != nil {
		return fmt.Errorf("encode params: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	s := run.Summary
	d := run.Params.Deal
	_, err = tx.ExecContext(ctx, `INSERT INTO projection_runs
		(id, timestamp, scenario, source, investment_type,
		 purchase_price, rehab_cost, after_repair_value,
		 peak_cash_invested, cash_after_refinance, cash_recovered_pct,
		 total_cash_flow, flip_profit, year1_dscr,
		 year1_return_pct, year1_return_infinite, final_equity, params_json)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		run.ID, run.CreatedAt.Unix(), run.Scenario, run.Source, string(s.InvestmentType),
		d.PurchasePrice, d.RehabCost, d.AfterRepairValue,
		s.PeakCashInvested, s.CashAfterRefinance, s.CashRecoveredPct,
		s.TotalCashFlow, s.FlipProfit, s.Year1DSCR,
		s.Year1ReturnOnCash.Percent, s.Year1ReturnOnCash.Infinite, s.FinalEquity, string(params),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO projection_years
		(run_id, year, rent, expenses, interest_paid, cash_flow, equity_growth,
		 total_return, cash_invested, total_cash_invested, return_pct, return_infinite,
		 dscr, end_value, end_debt, end_equity)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare years: %w", err)
	}
	defer stmt.Close()

	for y := 1; y <= model.ProjectionYears; y++ {
		yr := run.Projection.Year(y)
		t := yr.Totals
		end := yr.Months[model.MonthsPerYear-1]
		if _, err := stmt.ExecContext(ctx,
			run.ID, y, t.Rent, t.Expenses, t.InterestPaid, t.CashFlow, t.EquityGrowth,
			t.TotalReturn, t.CashInvested, t.TotalCashInvested,
			t.ReturnOnInvestedCash.Percent, t.ReturnOnInvestedCash.Infinite,
			t.DSCR, end.Value, end.Debt, end.Equity,
		); err != nil {
			return fmt.Errorf("insert year %d: %w", y, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// RecentRuns lists the latest runs, newest first.
func (r *SQLiteRecorder) RecentRuns(ctx context.Context, limit int) ([]RunInfo, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, timestamp, scenario, source, investment_type,
		peak_cash_invested, total_cash_flow, year1_return_pct, year1_return_infinite
		FROM projection_runs ORDER BY timestamp DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunInfo
	for rows.Next() {
		var (
			info     RunInfo
			ts       int64
			typ      string
			infinite bool
		)
		if err := rows.Scan(&info.ID, &ts, &info.Scenario, &info.Source, &typ,
			&info.PeakCash, &info.TotalCashFlow, &info.Year1Return.Percent, &infinite); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		info.CreatedAt = time.Unix(ts, 0)
		info.InvestmentType = model.InvestmentType(typ)
		info.Year1Return.Infinite = infinite
		out = append(out, info)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
