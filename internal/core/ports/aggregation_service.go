package ports

import (
	"github.com/AntonioJCosta/tally/internal/core/domain/freq"
	"github.com/AntonioJCosta/tally/internal/core/domain/record"
)

/*
AggregationStrategy is one named counting implementation. The benchmark
harness runs every registered strategy against the same inputs; all
strategies must produce equal tables for equal input.
*/
type AggregationStrategy struct {
	Name  string
	Count func(records []record.Record) freq.Table
}

/*
AggregationService defines the contract for turning a record sequence
into a per-year frequency table. This is a driving port.
*/
type AggregationService interface {
	// CountByYear is the production strategy: one pass over the input
	// on top of a constant-size bucket initialization.
	CountByYear(records []record.Record) freq.Table

	// CountByYearNaive re-scans the full input once per bucket. It is
	// kept for cross-checking and benchmarking, not for production use.
	CountByYearNaive(records []record.Record) freq.Table

	// Strategies lists every counting implementation the service
	// exposes, production strategy first.
	Strategies() []AggregationStrategy
}
