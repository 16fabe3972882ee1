package testutil

import (
	"github.com/AntonioJCosta/tally/internal/core/domain/preset"
	"github.com/AntonioJCosta/tally/internal/core/ports"
)

// MockSizePresetProvider is a mock implementation of the ports.SizePresetProvider interface.
type MockSizePresetProvider struct {
	GetSizePresetsFunc func() ([]preset.Preset, error)
}

// GetSizePresets mocks the GetSizePresets method.
func (m *MockSizePresetProvider) GetSizePresets() ([]preset.Preset, error) {
	if m.GetSizePresetsFunc != nil {
		return m.GetSizePresetsFunc()
	}
	// Default behavior: no presets configured.
	return []preset.Preset{}, nil
}

// Ensure MockSizePresetProvider implements the ports.SizePresetProvider interface.
var _ ports.SizePresetProvider = (*MockSizePresetProvider)(nil)
