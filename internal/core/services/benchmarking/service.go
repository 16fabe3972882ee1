/*
Package benchmarking times aggregation strategies across input sizes.

Timing lives here, outside the aggregator, so the counting code stays
pure and independently testable. Each size gets one freshly generated
input that every strategy consumes, making the per-strategy timings
directly comparable.
*/
package benchmarking

import (
	"fmt"
	"time"

	"github.com/AntonioJCosta/tally/internal/core/domain/bench"
	"github.com/AntonioJCosta/tally/internal/core/ports"
)

type service struct {
	generator  ports.RecordGenerator
	aggregator ports.AggregationService
}

// NewService creates a new benchmark service.
// It panics if generator or aggregator is nil.
func NewService(gen ports.RecordGenerator, agg ports.AggregationService) ports.BenchmarkService {
	if gen == nil {
		panic("generator cannot be nil")
	}
	if agg == nil {
		panic("aggregator cannot be nil")
	}
	return &service{generator: gen, aggregator: agg}
}

// Run executes the benchmark batch: for each size it generates one
// input and times every strategy against it, sequentially. The batch
// shares nothing between runs, so nothing needs resetting in between.
func (s *service) Run(sizes []int) ([]bench.Sample, error) {
	for _, size := range sizes {
		if size < 0 {
			return nil, fmt.Errorf("invalid input size %d: sizes must be non-negative", size)
		}
	}

	strategies := s.aggregator.Strategies()
	samples := make([]bench.Sample, 0, len(sizes)*len(strategies))

	for _, size := range sizes {
		records, err := s.generator.Generate(size)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %d records: %w", size, err)
		}

		for _, strat := range strategies {
			start := time.Now()
			strat.Count(records)
			samples = append(samples, bench.Sample{
				Strategy: strat.Name,
				Size:     size,
				Elapsed:  time.Since(start),
			})
		}
	}

	return samples, nil
}
