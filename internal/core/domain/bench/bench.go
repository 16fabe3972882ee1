/*
Package bench defines core domain entities for benchmark measurements.
*/
package bench

import "time"

/*
Sample is one timed aggregation call: the strategy that ran, the number
of input records it consumed, and the wall-clock time it took.
*/
type Sample struct {
	Strategy string        `yaml:"strategy"`
	Size     int           `yaml:"size"`
	Elapsed  time.Duration `yaml:"elapsed"`
}

/*
Run is a Sample that has been persisted to the run store, together with
its storage identity.
*/
type Run struct {
	ID        int64
	CreatedAt time.Time
	Strategy  string
	Size      int
	Elapsed   time.Duration
}
