/*
Package recordgen produces synthetic journal records for counting and
benchmarking.
*/
package recordgen

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/AntonioJCosta/tally/internal/core/domain/freq"
	"github.com/AntonioJCosta/tally/internal/core/domain/record"
	"github.com/AntonioJCosta/tally/internal/core/ports"
)

const (
	labelAlphabet = "ABCD"
	labelLength   = 3
)

// Generator produces records with uniformly drawn labels and years.
// Years are drawn from the aggregation key range [freq.YearMin,
// freq.YearMax] inclusive on both ends, so a table built from
// generated records always sums to the record count.
type Generator struct{}

// NewGenerator creates a new record generator.
func NewGenerator() ports.RecordGenerator {
	return &Generator{}
}

// Generate returns exactly n records. Label collisions are expected
// and harmless; the label plays no role in aggregation.
func (g *Generator) Generate(n int) ([]record.Record, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid record count %d: count must be non-negative", n)
	}

	records := make([]record.Record, n)
	for i := range records {
		records[i] = record.Record{
			Label: randomLabel(),
			Year:  freq.YearMin + rand.IntN(freq.NumYears),
		}
	}
	return records, nil
}

func randomLabel() string {
	var b strings.Builder
	b.Grow(labelLength)
	for i := 0; i < labelLength; i++ {
		b.WriteByte(labelAlphabet[rand.IntN(len(labelAlphabet))])
	}
	return b.String()
}
