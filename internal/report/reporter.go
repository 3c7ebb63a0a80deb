package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"codeberg.org/mutker/puzzlebench/internal/bench"
	"codeberg.org/mutker/puzzlebench/internal/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

var (
	colorAccent  = lipgloss.Color("#20B9B4")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#2C4A54")
)

type styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Rule    lipgloss.Style
	Panel   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		Title:   r.NewStyle().Bold(true).Foreground(colorAccent),
		Label:   r.NewStyle().Bold(true).Foreground(colorAccent),
		Value:   r.NewStyle().Foreground(colorSuccess),
		Success: r.NewStyle().Foreground(colorSuccess),
		Failure: r.NewStyle().Foreground(colorError),
		Rule:    r.NewStyle().Foreground(colorMuted),
		Panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1),
	}
}

// PartReport is the machine readable form of one analysed part.
type PartReport struct {
	Year    int                       `json:"year" yaml:"year"`
	Day     int                       `json:"day" yaml:"day"`
	Part    string                    `json:"part" yaml:"part"`
	Passed  bool                      `json:"examples_passed" yaml:"examples_passed"`
	Metrics *bench.PerformanceMetrics `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// Reporter writes run progress and metrics to out. Only the table format
// prints progress lines; machine formats emit one document per part.
type Reporter struct {
	out    io.Writer
	format string
	styles styles
}

func ValidFormat(format string) bool {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// NewReporter creates a reporter. Colours follow the capabilities of out.
func NewReporter(out io.Writer, format string) (*Reporter, error) {
	if !ValidFormat(format) {
		return nil, errors.New().WithData(ErrInvalidFormat, format)
	}

	return &Reporter{
		out:    out,
		format: format,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}, nil
}

// Heading prints a section rule such as "Advent of Code 2024 - Day 1".
func (r *Reporter) Heading(title string) {
	if r.format != FormatTable {
		return
	}

	line := r.styles.Rule.Render(strings.Repeat("─", 4))
	fmt.Fprintf(r.out, "%s %s %s\n", line, r.styles.Title.Render(title), line)
}

// Status prints a pass/fail line.
func (r *Reporter) Status(ok bool, msg string) {
	if r.format != FormatTable {
		return
	}

	if ok {
		fmt.Fprintln(r.out, r.styles.Success.Render("✓ "+msg))
		return
	}
	fmt.Fprintln(r.out, r.styles.Failure.Render("✗ "+msg))
}

// Part renders the outcome of one part in the configured format.
func (r *Reporter) Part(p PartReport) error {
	errFactory := errors.New()

	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(p); err != nil {
			return errFactory.Wrap(ErrRenderFailed, err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return errFactory.Wrap(ErrRenderFailed, err)
		}
		if err := enc.Close(); err != nil {
			return errFactory.Wrap(ErrRenderFailed, err)
		}
	default:
		if p.Metrics == nil {
			return nil
		}
		fmt.Fprintln(r.out, r.panel(fmt.Sprintf("Part %s Analysis", strings.ToUpper(p.Part)), p.Metrics))
	}

	return nil
}

func (r *Reporter) panel(title string, m *bench.PerformanceMetrics) string {
	rows := Rows(m)

	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row.Label)+1)
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, r.styles.Title.Render(title))
	for _, row := range rows {
		label := r.styles.Label.Width(width).Render(row.Label + ":")
		lines = append(lines, label+" "+r.styles.Value.Render(row.Value))
	}

	return r.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
