package testutil

import (
	"github.com/AntonioJCosta/tally/internal/core/domain/bench"
	"github.com/AntonioJCosta/tally/internal/core/ports"
)

// MockBenchmarkService is a mock implementation of the ports.BenchmarkService interface.
type MockBenchmarkService struct {
	RunFunc func(sizes []int) ([]bench.Sample, error)
}

// Run mocks the Run method.
func (m *MockBenchmarkService) Run(sizes []int) ([]bench.Sample, error) {
	if m.RunFunc != nil {
		return m.RunFunc(sizes)
	}
	// Default behavior: return an empty slice and no error.
	return []bench.Sample{}, nil
}

// Ensure MockBenchmarkService implements the ports.BenchmarkService interface.
var _ ports.BenchmarkService = (*MockBenchmarkService)(nil)
