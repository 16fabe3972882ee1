package sizepresets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/tally/internal/core/domain/preset"
	"github.com/AntonioJCosta/tally/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the SizePresetProvider interface by reading
// named size lists from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML file containing benchmark size presets.
func NewYAMLProvider(filePath string) (ports.SizePresetProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// GetSizePresets reads and parses presets from the configured YAML file.
// A missing or empty file means no presets are configured; neither is
// an error.
func (p *YAMLProvider) GetSizePresets() ([]preset.Preset, error) {
	presets := []preset.Preset{}

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return presets, nil
		}
		return nil, fmt.Errorf("failed to read size presets file %s: %w", p.filePath, err)
	}

	if len(yamlFile) == 0 {
		return presets, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	err = decoder.Decode(&presets)
	if err != nil {
		// A file holding only comments or a bare document separator
		// decodes to io.EOF; treat that like an empty file.
		if errors.Is(err, io.EOF) {
			return presets, nil
		}
		return nil, fmt.Errorf("failed to unmarshal size presets from %s: %w", p.filePath, err)
	}

	return presets, nil
}
