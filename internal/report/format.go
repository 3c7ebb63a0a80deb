package report

import (
	"fmt"
	"math"
	"strings"

	"codeberg.org/mutker/puzzlebench/internal/bench"
)

type timeUnit struct {
	scale  float64
	suffix string
	prec   int
}

var (
	unitNano   = timeUnit{1e9, "ns", 1}
	unitMicro  = timeUnit{1e6, "µs", 1}
	unitMilli  = timeUnit{1e3, "ms", 1}
	unitSecond = timeUnit{1, "s", 2}

	memoryUnits = []string{"B", "KB", "MB", "GB", "TB"}
)

func unitFor(seconds float64) timeUnit {
	switch {
	case seconds < 1e-6:
		return unitNano
	case seconds < 1e-3:
		return unitMicro
	case seconds < 1:
		return unitMilli
	default:
		return unitSecond
	}
}

func (u timeUnit) format(seconds float64) string {
	return fmt.Sprintf("%.*f%s", u.prec, seconds*u.scale, u.suffix)
}

// FormatTime renders a duration given in seconds with the largest unit
// that keeps the value below 1000.
func FormatTime(seconds float64) string {
	return unitFor(seconds).format(seconds)
}

// FormatTimeStdDev renders "mean ± stddev", both in the mean's unit.
func FormatTimeStdDev(mean, stddev float64) string {
	u := unitFor(mean)
	return u.format(mean) + " ± " + u.format(stddev)
}

// FormatMemory renders a signed byte count in binary units.
func FormatMemory(bytes int64) string {
	v := float64(bytes)
	i := 0
	for math.Abs(v) >= 1024 && i < len(memoryUnits)-1 {
		v /= 1024
		i++
	}

	return fmt.Sprintf("%.2f %s", v, memoryUnits[i])
}

// Row is one labelled line of a metrics table.
type Row struct {
	Label string
	Value string
}

// Rows lists the displayable fields of m. Figures that could not be
// measured are left out.
func Rows(m *bench.PerformanceMetrics) []Row {
	if m == nil {
		return nil
	}

	rows := []Row{
		{"Result", m.Result.String()},
		{"Time", FormatTimeStdDev(m.Timing.MeanMicros/1e6, m.Timing.StdDevMicros/1e6)},
	}

	if m.Resources.MemoryAvailable {
		rows = append(rows,
			Row{"Memory", FormatMemory(m.Resources.MemoryDelta)},
			Row{"Peak memory", FormatMemory(int64(m.Resources.PeakMemory))},
		)
	}

	if m.Resources.CPUAvailable {
		rows = append(rows, Row{"CPU usage", fmt.Sprintf("%.1f%%", m.Resources.CPUPercent)})
	}

	if c := m.Complexity; c != nil {
		rows = append(rows, Row{"Complexity", complexityText(c)})
	}

	return rows
}

func complexityText(c *bench.ComplexityResult) string {
	if !c.Determined() {
		return bench.UndeterminedLabel
	}

	return fmt.Sprintf("%s %s (fit %.2f)", c.Label(), c.Model, c.Score)
}

// Format renders m as an aligned plain-text table.
func Format(m *bench.PerformanceMetrics) string {
	rows := Rows(m)

	width := 0
	for _, r := range rows {
		width = max(width, len(r.Label)+1)
	}

	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%-*s %s\n", width, r.Label+":", r.Value)
	}

	return b.String()
}
