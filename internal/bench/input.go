package bench

import "strings"

// Input is a payload handed to a solver. Len is measured in lines for
// text and in elements for sequences.
type Input interface {
	Len() int
	// Prefix returns the first n units. Callers clamp n to [1, Len()].
	Prefix(n int) Input
}

// Text is line-oriented input. A single trailing separator does not count
// as an extra line, and prefixes keep it.
type Text struct {
	raw      string
	lines    []string
	sep      string
	trailing bool
}

// NewText splits s on its own line separator: "\r\n" when present,
// otherwise "\n".
func NewText(s string) Text {
	sep := "\n"
	if strings.Contains(s, "\r\n") {
		sep = "\r\n"
	}

	var lines []string
	if s != "" {
		lines = strings.Split(strings.TrimSuffix(s, sep), sep)
	}

	return Text{
		raw:      s,
		lines:    lines,
		sep:      sep,
		trailing: s != "" && strings.HasSuffix(s, sep),
	}
}

func (t Text) Len() int {
	return len(t.lines)
}

func (t Text) Prefix(n int) Input {
	if n >= len(t.lines) {
		return t
	}

	lines := t.lines[:n]
	raw := strings.Join(lines, t.sep)
	if t.trailing {
		raw += t.sep
	}

	return Text{
		raw:      raw,
		lines:    lines,
		sep:      t.sep,
		trailing: t.trailing,
	}
}

// String returns the text exactly as the solver should see it.
func (t Text) String() string {
	return t.raw
}

// Lines returns the parsed lines. The slice must not be modified.
func (t Text) Lines() []string {
	return t.lines
}

// Separator returns the detected line separator.
func (t Text) Separator() string {
	return t.sep
}

// Sequence is element-oriented input.
type Sequence[T any] []T

func (s Sequence[T]) Len() int {
	return len(s)
}

func (s Sequence[T]) Prefix(n int) Input {
	return s[:n:n]
}

// Scale returns a prefix of in holding max(1, min(target, in.Len())) units.
// Empty input is returned unchanged.
func Scale(in Input, target int) Input {
	total := in.Len()
	if total == 0 {
		return in
	}

	return in.Prefix(max(1, min(target, total)))
}
