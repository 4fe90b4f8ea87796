package recorder

import "context"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordProjection(_ context.Context, _ *ProjectionRun) error { return nil }
func (n *NoopRecorder) RecentRuns(_ context.Context, _ int) ([]RunInfo, error)     { return nil, nil }
func (n *NoopRecorder) Close() error                                               { return nil }
