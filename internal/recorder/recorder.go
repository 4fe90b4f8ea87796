package recorder

import (
	"context"
	"time"

	"github.com/google/uuid"

	"DealProjector/internal/model"
)

// Where a run came from.
const (
	SourceAPI       = "api"
	SourceScheduler = "scheduler"
)

// ProjectionRun is one finished projection to export.
type ProjectionRun struct {
	ID         string
	Scenario   string
	Source     string
	CreatedAt  time.Time
	Params     model.InvestmentParameters
	Summary    model.Summary
	Projection *model.Projection
}

// NewRun stamps a projection with a fresh run ID.
func NewRun(scenario, source string, params model.InvestmentParameters, summary model.Summary, proj *model.Projection) *ProjectionRun {
	return &ProjectionRun{
		ID:         uuid.NewString(),
		Scenario:   scenario,
		Source:     source,
		CreatedAt:  time.Now(),
		Params:     params,
		Summary:    summary,
		Projection: proj,
	}
}

// RunInfo is the listing view of a recorded run.
type RunInfo struct {
	ID             string               `json:"id"`
	Scenario       string               `json:"scenario"`
	Source         string               `json:"source"`
	CreatedAt      time.Time            `json:"createdAt"`
	InvestmentType model.InvestmentType `json:"investmentType"`
	PeakCash       float64              `json:"peakCashInvested"`
	TotalCashFlow  float64              `json:"totalCashFlow"`
	Year1Return    model.CashReturn     `json:"year1ReturnOnCash"`
}

// Recorder exports projections for offline analysis. Nothing recorded is
// read back into a calculation.
type Recorder interface {
	RecordProjection(ctx context.Context, run *ProjectionRun) error
	RecentRuns(ctx context.Context, limit int) ([]RunInfo, error)
	Close() error
}
