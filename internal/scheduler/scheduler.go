package scheduler

import (
	"context"
	"fmt"
	"log"

	"DealProjector/internal/recorder"
	"DealProjector/internal/report"
	"DealProjector/internal/scenario"
	"DealProjector/internal/service"

	"github.com/robfig/cron/v3"
)

// Scheduler re-projects saved scenarios on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Source    scenario.Source
	Projector *service.Projector
	Notifier  report.Notifier
	Recorder  recorder.Recorder
	Ctx       context.Context
}

// BatchStats counts the outcome of one batch run.
type BatchStats struct {
	Projected int
	Failed    int
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, src scenario.Source, p *service.Projector, n report.Notifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Source:    src,
		Projector: p,
		Notifier:  n,
		Recorder:  rec,
		Ctx:       ctx,
	}
}

// Register adds the batch projection task.
func (s *Scheduler) Register(batchCron string) error {
	if _, err := s.Cron.AddFunc(batchCron, func() { s.RunBatch() }); err != nil {
		return fmt.Errorf("register batch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running batch to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunBatch projects every scenario from the source once. One failing
// scenario does not stop the others.
func (s *Scheduler) RunBatch() BatchStats {
	var stats BatchStats
	log.Printf("[INFO] running batch projection from %s", s.Source.Name())

	list, err := s.Source.Scenarios(s.Ctx)
	if err != nil {
		log.Printf("[ERROR] load scenarios: %v", err)
		s.trySend(fmt.Sprintf("Batch projection failed: %v", err))
		return stats
	}

	for _, sc := range list {
		if s.Ctx.Err() != nil {
			log.Printf("[WARN] batch cancelled after %d scenarios", stats.Projected+stats.Failed)
			break
		}

		res, err := s.Projector.ProjectScenario(s.Ctx, sc)
		if err != nil {
			log.Printf("[ERROR] project %s: %v", sc.Name, err)
			stats.Failed++
			continue
		}
		stats.Projected++

		s.trySend(report.FormatSummary(sc.Name, res.Summary))

		run := recorder.NewRun(sc.Name, recorder.SourceScheduler, res.Params, res.Summary, res.Projection)
		if err := s.Recorder.RecordProjection(s.Ctx, run); err != nil {
			log.Printf("[ERROR] record %s: %v", sc.Name, err)
		}
	}

	log.Printf("[INFO] batch done: %d projected, %d failed", stats.Projected, stats.Failed)
	return stats
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.Send(s.Ctx, text); err != nil {
		log.Printf("[ERROR] send report: %v", err)
	}
}
