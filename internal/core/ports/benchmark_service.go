package ports

import "github.com/AntonioJCosta/tally/internal/core/domain/bench"

/*
BenchmarkService defines the contract for timing aggregation strategies
across a batch of input sizes. This is a driving port.
*/
type BenchmarkService interface {
	// Run generates a fresh input per size, times every strategy
	// against it, and returns one sample per (strategy, size) pair.
	// Sizes must be non-negative.
	Run(sizes []int) ([]bench.Sample, error)
}
