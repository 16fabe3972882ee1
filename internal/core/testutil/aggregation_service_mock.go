package testutil

import (
	"github.com/AntonioJCosta/tally/internal/core/domain/freq"
	"github.com/AntonioJCosta/tally/internal/core/domain/record"
	"github.com/AntonioJCosta/tally/internal/core/ports"
)

// MockAggregationService is a mock implementation of the ports.AggregationService interface.
type MockAggregationService struct {
	CountByYearFunc      func(records []record.Record) freq.Table
	CountByYearNaiveFunc func(records []record.Record) freq.Table
	StrategiesFunc       func() []ports.AggregationStrategy
}

// CountByYear mocks the CountByYear method.
func (m *MockAggregationService) CountByYear(records []record.Record) freq.Table {
	if m.CountByYearFunc != nil {
		return m.CountByYearFunc(records)
	}
	// Default behavior: return an empty zero-filled table.
	return freq.NewTable()
}

// CountByYearNaive mocks the CountByYearNaive method.
func (m *MockAggregationService) CountByYearNaive(records []record.Record) freq.Table {
	if m.CountByYearNaiveFunc != nil {
		return m.CountByYearNaiveFunc(records)
	}
	return freq.NewTable()
}

// Strategies mocks the Strategies method.
func (m *MockAggregationService) Strategies() []ports.AggregationStrategy {
	if m.StrategiesFunc != nil {
		return m.StrategiesFunc()
	}
	// Default behavior: expose the mock's own counting methods.
	return []ports.AggregationStrategy{
		{Name: "single-pass", Count: m.CountByYear},
		{Name: "naive", Count: m.CountByYearNaive},
	}
}

// Ensure MockAggregationService implements the ports.AggregationService interface.
var _ ports.AggregationService = (*MockAggregationService)(nil)
