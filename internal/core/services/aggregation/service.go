/*
Package aggregation counts journal records per calendar year.

Two strategies produce behaviorally identical tables: a single-pass
count that increments one bucket per record, and a naive count that
re-scans the full input once per bucket. The single-pass strategy is
the production one; the naive strategy exists so the two can be
cross-checked and benchmarked against each other.
*/
package aggregation

import (
	"github.com/AntonioJCosta/tally/internal/core/domain/freq"
	"github.com/AntonioJCosta/tally/internal/core/domain/record"
	"github.com/AntonioJCosta/tally/internal/core/ports"
)

type service struct{}

// NewService creates a new aggregation service.
func NewService() ports.AggregationService {
	return &service{}
}

// CountByYear builds the frequency table in one pass: every year in
// [freq.YearMin, freq.YearMax] starts at zero, then each record
// increments its bucket. Records with out-of-range years are skipped;
// they count toward the input length but never toward any bucket.
func (s *service) CountByYear(records []record.Record) freq.Table {
	table := freq.NewTable()
	for _, r := range records {
		if !freq.InRange(r.Year) {
			continue
		}
		table[r.Year]++
	}
	return table
}

// CountByYearNaive scans the full record slice once per year bucket.
// It returns the same table as CountByYear but does O(N*Y) work, which
// is why it only serves as a comparison baseline.
func (s *service) CountByYearNaive(records []record.Record) freq.Table {
	table := freq.NewTable()
	for year := freq.YearMin; year <= freq.YearMax; year++ {
		count := 0
		for _, r := range records {
			if r.Year == year {
				count++
			}
		}
		table[year] = count
	}
	return table
}

// Strategies returns the counting implementations, production strategy
// first.
func (s *service) Strategies() []ports.AggregationStrategy {
	return []ports.AggregationStrategy{
		{Name: "single-pass", Count: s.CountByYear},
		{Name: "naive", Count: s.CountByYearNaive},
	}
}
