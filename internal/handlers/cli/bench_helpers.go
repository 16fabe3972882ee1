package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/tally/internal/core/ports"
)

// resolveBenchSizes picks the size batch for a bench run. Explicit
// --sizes win over a named preset; with neither, the built-in default
// batch is used.
func resolveBenchSizes(
	sizes []int,
	presetName string,
	presetsFile string,
	presetOpener ports.SizePresetOpener,
) ([]int, error) {
	if len(sizes) > 0 {
		if presetName != "" {
			return nil, fmt.Errorf("--sizes and --preset are mutually exclusive")
		}
		return sizes, nil
	}

	if presetName == "" {
		return defaultBenchSizes, nil
	}

	if presetOpener == nil {
		return nil, fmt.Errorf("size presets are not available")
	}
	if presetsFile == "" {
		presetsFile = defaultPresetsFile()
	}

	provider, err := presetOpener(presetsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open presets file %s: %w", presetsFile, err)
	}

	presets, err := provider.GetSizePresets()
	if err != nil {
		return nil, fmt.Errorf("could not load size presets: %w", err)
	}

	for _, p := range presets {
		if p.Name == presetName {
			if len(p.Sizes) == 0 {
				return nil, fmt.Errorf("preset %q has no sizes", presetName)
			}
			return p.Sizes, nil
		}
	}
	return nil, fmt.Errorf("preset %q not found in %s", presetName, presetsFile)
}

func defaultPresetsFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to the working directory when HOME is unset.
		return "presets.yaml"
	}
	return filepath.Join(home, ".tally", "presets.yaml")
}
