package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"codeberg.org/mutker/puzzlebench/internal/errors"
	"codeberg.org/mutker/puzzlebench/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewReporterRejectsFormat(t *testing.T) {
	_, err := report.NewReporter(&bytes.Buffer{}, "xml")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, report.ErrInvalidFormat))
}

func TestReporterTable(t *testing.T) {
	var buf bytes.Buffer
	r, err := report.NewReporter(&buf, report.FormatTable)
	require.NoError(t, err)

	r.Heading("Advent of Code 2022 - Day 1")
	r.Status(true, "Part a examples passed")
	r.Status(false, "Part b examples failed")
	require.NoError(t, r.Part(report.PartReport{Year: 2022, Day: 1, Part: "a", Passed: true, Metrics: fullMetrics()}))

	out := buf.String()
	assert.Contains(t, out, "Advent of Code 2022 - Day 1")
	assert.Contains(t, out, "✓ Part a examples passed")
	assert.Contains(t, out, "✗ Part b examples failed")
	assert.Contains(t, out, "Part A Analysis")
	assert.Contains(t, out, "24000")
	assert.Contains(t, out, "1.5ms ± 0.2ms")
	assert.Contains(t, out, "O(n) linear (fit 0.99)")
}

func TestReporterTableWithoutMetrics(t *testing.T) {
	var buf bytes.Buffer
	r, err := report.NewReporter(&buf, report.FormatTable)
	require.NoError(t, err)

	require.NoError(t, r.Part(report.PartReport{Year: 2022, Day: 1, Part: "a"}))
	assert.Empty(t, buf.String())
}

func TestReporterJSON(t *testing.T) {
	var buf bytes.Buffer
	r, err := report.NewReporter(&buf, report.FormatJSON)
	require.NoError(t, err)

	r.Heading("ignored")
	r.Status(true, "ignored")
	require.NoError(t, r.Part(report.PartReport{Year: 2024, Day: 3, Part: "b", Passed: true, Metrics: fullMetrics()}))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "b", doc["part"])
	assert.Equal(t, true, doc["examples_passed"])

	metrics := doc["metrics"].(map[string]any)
	assert.Equal(t, 24000.0, metrics["result"])
	assert.Equal(t, 1500.0, metrics["timing"].(map[string]any)["mean_us"])
	assert.Equal(t, "linear", metrics["complexity"].(map[string]any)["model"])
	assert.NotContains(t, buf.String(), "ignored")
}

func TestReporterYAML(t *testing.T) {
	var buf bytes.Buffer
	r, err := report.NewReporter(&buf, report.FormatYAML)
	require.NoError(t, err)

	m := fullMetrics()
	m.Complexity = nil
	require.NoError(t, r.Part(report.PartReport{Year: 2024, Day: 1, Part: "a", Metrics: m}))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, 2024, doc["year"])
	metrics := doc["metrics"].(map[string]any)
	assert.Equal(t, 24000, metrics["result"])
	assert.NotContains(t, metrics, "complexity")
}
