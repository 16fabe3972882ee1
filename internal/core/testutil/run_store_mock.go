package testutil

import (
	"github.com/AntonioJCosta/tally/internal/core/domain/bench"
	"github.com/AntonioJCosta/tally/internal/core/ports"
)

// MockRunStore is a mock implementation of the ports.RunStore interface.
type MockRunStore struct {
	SaveSamplesFunc func(samples []bench.Sample) error
	ListRunsFunc    func(limit int) ([]bench.Run, error)
	CloseFunc       func() error
}

// SaveSamples mocks the SaveSamples method.
func (m *MockRunStore) SaveSamples(samples []bench.Sample) error {
	if m.SaveSamplesFunc != nil {
		return m.SaveSamplesFunc(samples)
	}
	return nil
}

// ListRuns mocks the ListRuns method.
func (m *MockRunStore) ListRuns(limit int) ([]bench.Run, error) {
	if m.ListRunsFunc != nil {
		return m.ListRunsFunc(limit)
	}
	// Default behavior: no persisted runs.
	return []bench.Run{}, nil
}

// Close mocks the Close method.
func (m *MockRunStore) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// Ensure MockRunStore implements the ports.RunStore interface.
var _ ports.RunStore = (*MockRunStore)(nil)
