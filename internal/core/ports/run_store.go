package ports

import "github.com/AntonioJCosta/tally/internal/core/domain/bench"

/*
RunStore defines the contract for persisting benchmark samples and
reading them back. This is a driven port.
*/
type RunStore interface {
	// SaveSamples persists every sample in one batch. Either all
	// samples are stored or none are.
	SaveSamples(samples []bench.Sample) error

	// ListRuns returns the most recent persisted runs, newest first.
	// limit <= 0 means no limit.
	ListRuns(limit int) ([]bench.Run, error)

	Close() error
}

// RunStoreOpener opens a RunStore at the given path. Commands that
// take the store location as a flag use this to defer opening until
// the flag is known.
type RunStoreOpener func(path string) (RunStore, error)
