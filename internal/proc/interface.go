package proc

import "time"

// Reader reads resource counters of the running process.
type Reader interface {
	// ResidentBytes returns the current resident set size.
	ResidentBytes() (uint64, error)
	// CPUTime returns user plus system CPU time consumed so far.
	CPUTime() (time.Duration, error)
}
