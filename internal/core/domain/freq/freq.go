/*
Package freq defines the frequency table produced by year aggregation.
*/
package freq

// The aggregation key range. Every table holds exactly one entry per
// year in [YearMin, YearMax], zero-valued entries included.
const (
	YearMin = 2000
	YearMax = 2018
)

// NumYears is the number of buckets in a fully populated table.
const NumYears = YearMax - YearMin + 1

/*
Table maps a calendar year to the number of records observed for that
year. A table returned by an aggregator is a fresh snapshot: it holds
no reference to the input and is never mutated after being returned.
*/
type Table map[int]int

// NewTable returns a table pre-populated with every year in
// [YearMin, YearMax] at count zero.
func NewTable() Table {
	t := make(Table, NumYears)
	for y := YearMin; y <= YearMax; y++ {
		t[y] = 0
	}
	return t
}

// InRange reports whether year falls inside the table key range.
func InRange(year int) bool {
	return year >= YearMin && year <= YearMax
}

// Sum returns the total count across all buckets. For input whose
// years all fall inside the key range this equals the input length.
func (t Table) Sum() int {
	total := 0
	for _, count := range t {
		total += count
	}
	return total
}

// Equal reports whether two tables hold the same keys with the same
// counts.
func (t Table) Equal(other Table) bool {
	if len(t) != len(other) {
		return false
	}
	for year, count := range t {
		otherCount, ok := other[year]
		if !ok || otherCount != count {
			return false
		}
	}
	return true
}

// Years returns the table's keys in ascending order, for stable
// rendering.
func (t Table) Years() []int {
	years := make([]int, 0, len(t))
	for y := YearMin; y <= YearMax; y++ {
		if _, ok := t[y]; ok {
			years = append(years, y)
		}
	}
	return years
}
