// Package scenario loads the saved deals the scheduler re-projects.
package scenario

import (
	"context"

	"DealProjector/internal/model"
)

// Source defines the interface for listing saved scenarios.
type Source interface {
	Scenarios(ctx context.Context) ([]model.Scenario, error)
	Name() string
}

// MockSource returns a fixed list, for development and testing.
type MockSource struct {
	List []model.Scenario
	Err  error
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) Scenarios(_ context.Context) ([]model.Scenario, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.List, nil
}
