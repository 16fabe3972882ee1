package ports

import "github.com/AntonioJCosta/tally/internal/core/domain/record"

/*
RecordGenerator defines the contract for producing synthetic journal
records. This is a driven port, representing a domain capability.
*/
type RecordGenerator interface {
	// Generate returns exactly n records with uniformly drawn labels
	// and years. n must be non-negative; a negative n is a precondition
	// violation and is rejected with an error rather than clamped.
	Generate(n int) ([]record.Record, error)
}
