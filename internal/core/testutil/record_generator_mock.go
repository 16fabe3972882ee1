package testutil

import (
	"github.com/AntonioJCosta/tally/internal/core/domain/record"
	"github.com/AntonioJCosta/tally/internal/core/ports"
)

// MockRecordGenerator is a mock implementation of the ports.RecordGenerator interface.
type MockRecordGenerator struct {
	GenerateFunc func(n int) ([]record.Record, error)
}

// Generate mocks the Generate method.
func (m *MockRecordGenerator) Generate(n int) ([]record.Record, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(n)
	}
	// Default behavior: return an empty slice and no error.
	return []record.Record{}, nil
}

// Ensure MockRecordGenerator implements the ports.RecordGenerator interface.
var _ ports.RecordGenerator = (*MockRecordGenerator)(nil)
