/*
Package record defines the core domain entity for a journal record.
*/
package record

/*
Record represents a single journal entry, consisting of a short label
and the calendar year it belongs to. The label carries no meaning for
aggregation; it is kept so downstream consumers see the full entry.
This is a core domain entity.
*/
type Record struct {
	Label string `yaml:"label"`
	Year  int    `yaml:"year"`
}
