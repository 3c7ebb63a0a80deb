package bench

import (
	"runtime"
	"time"
)

// ResourceReader reads process-wide resource counters.
type ResourceReader interface {
	// ResidentBytes returns the resident set size of the process.
	ResidentBytes() (uint64, error)
	// CPUTime returns user plus system CPU time consumed so far.
	CPUTime() (time.Duration, error)
}

// ResourceUsage is the resource footprint of one measurement window.
// Memory readings are best effort: page cache and GC timing both add noise.
type ResourceUsage struct {
	MemoryDelta     int64         `json:"memory_delta_bytes" yaml:"memory_delta_bytes"`
	PeakMemory      uint64        `json:"peak_memory_bytes" yaml:"peak_memory_bytes"`
	MemoryAvailable bool          `json:"memory_available" yaml:"memory_available"`
	CPUTime         time.Duration `json:"cpu_time_ns" yaml:"cpu_time_ns"`
	CPUPercent      float64       `json:"cpu_percent" yaml:"cpu_percent"`
	CPUAvailable    bool          `json:"cpu_available" yaml:"cpu_available"`
}

// MarshalYAML writes CPUTime as integer nanoseconds, like the JSON form.
func (u ResourceUsage) MarshalYAML() (any, error) {
	return struct {
		MemoryDelta     int64   `yaml:"memory_delta_bytes"`
		PeakMemory      uint64  `yaml:"peak_memory_bytes"`
		MemoryAvailable bool    `yaml:"memory_available"`
		CPUTime         int64   `yaml:"cpu_time_ns"`
		CPUPercent      float64 `yaml:"cpu_percent"`
		CPUAvailable    bool    `yaml:"cpu_available"`
	}{
		MemoryDelta:     u.MemoryDelta,
		PeakMemory:      u.PeakMemory,
		MemoryAvailable: u.MemoryAvailable,
		CPUTime:         u.CPUTime.Nanoseconds(),
		CPUPercent:      u.CPUPercent,
		CPUAvailable:    u.CPUAvailable,
	}, nil
}

// Window tracks resident memory across a measurement window.
type Window struct {
	reader   ResourceReader
	baseline uint64
	peak     uint64
	ok       bool
}

// Checkpoint samples resident memory and keeps the highest reading.
// A failed read invalidates the window's memory figures.
func (w *Window) Checkpoint() {
	if w == nil || !w.ok {
		return
	}

	rss, err := w.reader.ResidentBytes()
	if err != nil {
		w.ok = false
		return
	}

	w.peak = max(w.peak, rss)
}

// ResourceSampler brackets a block of work with resource readings.
type ResourceSampler struct {
	Reader ResourceReader
	Clock  Clock
}

// Measure runs fn inside a measurement window. fn may call
// Window.Checkpoint after each sub-run. An error from fn is returned as
// is; reader failures only mark the affected figures unavailable.
func (s ResourceSampler) Measure(fn func(w *Window) error) (ResourceUsage, error) {
	clock := s.Clock
	if clock == nil {
		clock = SystemClock()
	}

	if s.Reader == nil {
		return ResourceUsage{}, fn(&Window{})
	}

	runtime.GC()

	w := &Window{reader: s.Reader}
	if rss, err := s.Reader.ResidentBytes(); err == nil {
		w.baseline, w.peak, w.ok = rss, rss, true
	}

	cpuStart, cpuErr := s.Reader.CPUTime()
	wallStart := clock.Now()

	if err := fn(w); err != nil {
		return ResourceUsage{}, err
	}

	wall := clock.Now().Sub(wallStart)

	var usage ResourceUsage

	if w.ok {
		if final, err := s.Reader.ResidentBytes(); err == nil {
			w.peak = max(w.peak, final)
			usage.MemoryDelta = int64(final) - int64(w.baseline)
			usage.PeakMemory = w.peak - w.baseline
			usage.MemoryAvailable = true
		}
	}

	if cpuErr == nil {
		if cpuEnd, err := s.Reader.CPUTime(); err == nil {
			usage.CPUTime = max(0, cpuEnd-cpuStart)
			usage.CPUAvailable = true
			if wall > 0 {
				usage.CPUPercent = float64(usage.CPUTime) / float64(wall) * 100
			}
		}
	}

	return usage, nil
}
