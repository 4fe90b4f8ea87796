package report

import (
	"context"
	"log"
	"sync"
)

// Notifier delivers a finished report.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// LogNotifier writes reports to the process log.
type LogNotifier struct{}

func (LogNotifier) Send(_ context.Context, text string) error {
	log.Printf("[INFO] report:\n%s", text)
	return nil
}

// MemoryNotifier keeps every report in memory, for tests and dry runs.
type MemoryNotifier struct {
	mu   sync.Mutex
	Sent []string
}

func (m *MemoryNotifier) Send(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, text)
	return nil
}

// Messages returns a copy of everything sent so far.
func (m *MemoryNotifier) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Sent...)
}
