package ports

import "github.com/AntonioJCosta/tally/internal/core/domain/preset"

/*
SizePresetProvider defines the contract for loading named benchmark
size lists from configuration. This is a driven port.
*/
type SizePresetProvider interface {
	// GetSizePresets returns every configured preset. A missing or
	// empty configuration source yields an empty list, not an error.
	GetSizePresets() ([]preset.Preset, error)
}

// SizePresetOpener builds a SizePresetProvider for the given file path.
// Commands that take the presets location as a flag use this to defer
// construction until the flag is known.
type SizePresetOpener func(path string) (SizePresetProvider, error)
