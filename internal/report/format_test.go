package report_test

import (
	"testing"

	"codeberg.org/mutker/puzzlebench/internal/bench"
	"codeberg.org/mutker/puzzlebench/internal/report"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{5e-7, "500.0ns"},
		{0, "0.0ns"},
		{1e-6, "1.0µs"},
		{2.5e-5, "25.0µs"},
		{1e-3, "1.0ms"},
		{0.1234, "123.4ms"},
		{1.5, "1.50s"},
		{61, "61.00s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, report.FormatTime(tt.seconds), "FormatTime(%v)", tt.seconds)
	}
}

func TestFormatTimeStdDevSharesUnit(t *testing.T) {
	assert.Equal(t, "1.5ms ± 0.2ms", report.FormatTimeStdDev(1.5e-3, 2e-4))
	assert.Equal(t, "2.00s ± 0.00s", report.FormatTimeStdDev(2, 1e-4))
}

func TestFormatMemory(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0.00 B"},
		{512, "512.00 B"},
		{1023, "1023.00 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{-1536, "-1.50 KB"},
		{5 << 20, "5.00 MB"},
		{3 << 30, "3.00 GB"},
		{2 << 40, "2.00 TB"},
		{2048 << 40, "2048.00 TB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, report.FormatMemory(tt.bytes), "FormatMemory(%d)", tt.bytes)
	}
}

func fullMetrics() *bench.PerformanceMetrics {
	return &bench.PerformanceMetrics{
		Result: bench.Int(24000),
		Timing: bench.TimingResult{MeanMicros: 1500, StdDevMicros: 200, MinMicros: 1200, MaxMicros: 2000, Count: 100},
		Resources: bench.ResourceUsage{
			MemoryDelta:     1536,
			PeakMemory:      2048,
			MemoryAvailable: true,
			CPUPercent:      99.5,
			CPUAvailable:    true,
		},
		Complexity: &bench.ComplexityResult{Model: bench.Linear, Score: 0.987},
	}
}

func TestRows(t *testing.T) {
	want := []report.Row{
		{Label: "Result", Value: "24000"},
		{Label: "Time", Value: "1.5ms ± 0.2ms"},
		{Label: "Memory", Value: "1.50 KB"},
		{Label: "Peak memory", Value: "2.00 KB"},
		{Label: "CPU usage", Value: "99.5%"},
		{Label: "Complexity", Value: "O(n) linear (fit 0.99)"},
	}

	if diff := cmp.Diff(want, report.Rows(fullMetrics())); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestRowsOmitUnavailable(t *testing.T) {
	m := fullMetrics()
	m.Resources = bench.ResourceUsage{}
	m.Complexity = nil
	m.Result = bench.NoAnswer

	want := []report.Row{
		{Label: "Result", Value: "None"},
		{Label: "Time", Value: "1.5ms ± 0.2ms"},
	}

	if diff := cmp.Diff(want, report.Rows(m)); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, report.Rows(nil))
}

func TestRowsUndetermined(t *testing.T) {
	m := fullMetrics()
	m.Complexity = &bench.ComplexityResult{Model: bench.Undetermined, Reason: "timings do not vary"}

	rows := report.Rows(m)
	assert.Equal(t, report.Row{Label: "Complexity", Value: "Unable to determine"}, rows[len(rows)-1])
}

func TestFormat(t *testing.T) {
	want := "" +
		"Result:      24000\n" +
		"Time:        1.5ms ± 0.2ms\n" +
		"Memory:      1.50 KB\n" +
		"Peak memory: 2.00 KB\n" +
		"CPU usage:   99.5%\n" +
		"Complexity:  O(n) linear (fit 0.99)\n"

	assert.Equal(t, want, report.Format(fullMetrics()))
}
