package benchmarking

import (
	"errors"
	"strings"
	"testing"

	"github.com/AntonioJCosta/tally/internal/core/domain/freq"
	"github.com/AntonioJCosta/tally/internal/core/domain/record"
	"github.com/AntonioJCosta/tally/internal/core/ports"
	"github.com/AntonioJCosta/tally/internal/core/testutil"
)

func TestNewService(t *testing.T) {
	t.Run("should return a service when both dependencies are set", func(t *testing.T) {
		svc := NewService(&testutil.MockRecordGenerator{}, &testutil.MockAggregationService{})
		if svc == nil {
			t.Fatal("NewService() returned nil, expected a service instance")
		}
	})

	t.Run("should panic with nil generator", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil generator")
			}
		}()
		_ = NewService(nil, &testutil.MockAggregationService{})
	})

	t.Run("should panic with nil aggregator", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil aggregator")
			}
		}()
		_ = NewService(&testutil.MockRecordGenerator{}, nil)
	})
}

func TestService_Run(t *testing.T) {
	generatorErr := errors.New("generator failure")

	tests := []struct {
		name           string
		sizes          []int
		setupGenerator func(m *testutil.MockRecordGenerator)
		setupAgg       func(m *testutil.MockAggregationService)
		wantSamples    int
		wantErr        bool
		wantErrSnippet string
	}{
		{
			name:  "one sample per strategy per size",
			sizes: []int{0, 3},
			setupGenerator: func(m *testutil.MockRecordGenerator) {
				m.GenerateFunc = func(n int) ([]record.Record, error) {
					return make([]record.Record, n), nil
				}
			},
			wantSamples: 4, // 2 sizes x 2 default strategies
		},
		{
			name:        "empty size list yields no samples",
			sizes:       []int{},
			wantSamples: 0,
		},
		{
			name:           "negative size is rejected before generation",
			sizes:          []int{10, -1},
			wantErr:        true,
			wantErrSnippet: "invalid input size -1",
		},
		{
			name:  "generator error is propagated",
			sizes: []int{5},
			setupGenerator: func(m *testutil.MockRecordGenerator) {
				m.GenerateFunc = func(n int) ([]record.Record, error) {
					return nil, generatorErr
				}
			},
			wantErr:        true,
			wantErrSnippet: "failed to generate 5 records",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGen := &testutil.MockRecordGenerator{}
			if tt.setupGenerator != nil {
				tt.setupGenerator(mockGen)
			}
			mockAgg := &testutil.MockAggregationService{}
			if tt.setupAgg != nil {
				tt.setupAgg(mockAgg)
			}

			svc := NewService(mockGen, mockAgg)
			samples, err := svc.Run(tt.sizes)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if tt.wantErrSnippet != "" && !strings.Contains(err.Error(), tt.wantErrSnippet) {
					t.Errorf("Run() error = %q, want it to contain %q", err.Error(), tt.wantErrSnippet)
				}
				return
			}
			if len(samples) != tt.wantSamples {
				t.Errorf("Run() returned %d samples, want %d", len(samples), tt.wantSamples)
			}
		})
	}
}

func TestService_Run_SamplesCarryStrategyAndSize(t *testing.T) {
	countCalls := 0
	mockGen := &testutil.MockRecordGenerator{
		GenerateFunc: func(n int) ([]record.Record, error) {
			return make([]record.Record, n), nil
		},
	}
	mockAgg := &testutil.MockAggregationService{
		StrategiesFunc: func() []ports.AggregationStrategy {
			return []ports.AggregationStrategy{
				{Name: "only", Count: func(records []record.Record) freq.Table {
					countCalls++
					return freq.NewTable()
				}},
			}
		},
	}

	svc := NewService(mockGen, mockAgg)
	samples, err := svc.Run([]int{2, 7})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if countCalls != 2 {
		t.Errorf("strategy Count() called %d times, want 2", countCalls)
	}
	if len(samples) != 2 {
		t.Fatalf("Run() returned %d samples, want 2", len(samples))
	}
	wantSizes := []int{2, 7}
	for i, sample := range samples {
		if sample.Strategy != "only" {
			t.Errorf("samples[%d].Strategy = %q, want %q", i, sample.Strategy, "only")
		}
		if sample.Size != wantSizes[i] {
			t.Errorf("samples[%d].Size = %d, want %d", i, sample.Size, wantSizes[i])
		}
		if sample.Elapsed < 0 {
			t.Errorf("samples[%d].Elapsed = %v, want a non-negative duration", i, sample.Elapsed)
		}
	}
}

func TestService_Run_StrategiesShareOneInputPerSize(t *testing.T) {
	generated := 0
	mockGen := &testutil.MockRecordGenerator{
		GenerateFunc: func(n int) ([]record.Record, error) {
			generated++
			return make([]record.Record, n), nil
		},
	}

	svc := NewService(mockGen, &testutil.MockAggregationService{})
	if _, err := svc.Run([]int{1, 2, 3}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if generated != 3 {
		t.Errorf("Generate() called %d times, want 3 (one fresh input per size)", generated)
	}
}
