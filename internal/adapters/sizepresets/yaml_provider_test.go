package sizepresets

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/tally/internal/core/domain/preset"
)

func writePresetsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write presets file: %v", err)
	}
	return path
}

func TestNewYAMLProvider(t *testing.T) {
	t.Run("should return a provider for a non-empty path", func(t *testing.T) {
		provider, err := NewYAMLProvider("/tmp/presets.yaml")
		if err != nil {
			t.Errorf("NewYAMLProvider() unexpected error = %v", err)
		}
		if provider == nil {
			t.Error("NewYAMLProvider() expected non-nil provider, got nil")
		}
	})

	t.Run("should reject an empty path", func(t *testing.T) {
		provider, err := NewYAMLProvider("")
		if err == nil {
			t.Error("NewYAMLProvider(\"\") expected an error, got nil")
		}
		if provider != nil {
			t.Errorf("NewYAMLProvider(\"\") expected nil provider, got %T", provider)
		}
	})
}

func TestYAMLProvider_GetSizePresets(t *testing.T) {
	validPresetsYAML := `
- name: quick
  sizes: [10, 100, 1000]
- name: full
  sizes: [10, 100, 1000, 10000, 100000, 1000000, 10000000]
`
	expectedValidPresets := []preset.Preset{
		{Name: "quick", Sizes: []int{10, 100, 1000}},
		{Name: "full", Sizes: []int{10, 100, 1000, 10000, 100000, 1000000, 10000000}},
	}

	tests := []struct {
		name                string
		fileContent         *string // nil means the file does not exist
		wantPresets         []preset.Preset
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{
			name:        "missing file means no presets",
			fileContent: nil,
			wantPresets: []preset.Preset{},
		},
		{
			name:        "empty file means no presets",
			fileContent: strPtr(""),
			wantPresets: []preset.Preset{},
		},
		{
			name:        "comments-only file means no presets",
			fileContent: strPtr("# sizes go here\n"),
			wantPresets: []preset.Preset{},
		},
		{
			name:        "empty YAML list",
			fileContent: strPtr("[]"),
			wantPresets: []preset.Preset{},
		},
		{
			name:        "valid presets",
			fileContent: strPtr(validPresetsYAML),
			wantPresets: expectedValidPresets,
		},
		{
			name:                "unknown field is rejected",
			fileContent:         strPtr("- name: quick\n  sizes: [10]\n  repeat: 3\n"),
			wantPresets:         nil,
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal size presets",
		},
		{
			name:                "not a list",
			fileContent:         strPtr("name: quick"),
			wantPresets:         nil,
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal size presets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var path string
			if tt.fileContent != nil {
				path = writePresetsFile(t, *tt.fileContent)
			} else {
				path = filepath.Join(t.TempDir(), "does-not-exist.yaml")
			}

			provider, err := NewYAMLProvider(path)
			if err != nil {
				t.Fatalf("NewYAMLProvider() failed unexpectedly: %v", err)
			}

			presets, err := provider.GetSizePresets()

			if (err != nil) != tt.wantErr {
				t.Errorf("GetSizePresets() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if tt.wantErrorMsgSnippet != "" && !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("GetSizePresets() error = %q, want it to contain %q", err.Error(), tt.wantErrorMsgSnippet)
				}
				return
			}
			if !reflect.DeepEqual(presets, tt.wantPresets) {
				t.Errorf("GetSizePresets() = %v, want %v", presets, tt.wantPresets)
			}
		})
	}
}

func strPtr(s string) *string { return &s }
