package puzzles

import (
	"fmt"
	"slices"

	"codeberg.org/mutker/puzzlebench/internal/bench"
	"codeberg.org/mutker/puzzlebench/internal/errors"
)

// Example is a worked example with its expected answer.
type Example struct {
	Input string
	Want  bench.Answer
}

// Part is one half of a puzzle.
type Part struct {
	Name     string
	Solver   bench.Solver
	Examples []Example
}

type Puzzle struct {
	Year  int
	Day   int
	Title string
	Parts []Part
}

func (p *Puzzle) String() string {
	return fmt.Sprintf("%d day %d: %s", p.Year, p.Day, p.Title)
}

// Part returns the named part.
func (p *Puzzle) Part(name string) (Part, error) {
	for _, part := range p.Parts {
		if part.Name == name {
			return part, nil
		}
	}

	return Part{}, errors.New().WithData(ErrUnknownPart, name)
}

var registry = []*Puzzle{
	calorieCounting(),
	rucksackReorganization(),
	historianHysteria(),
	redNosedReports(),
	mullItOver(),
}

// Lookup returns the registered puzzle for year and day.
func Lookup(year, day int) (*Puzzle, error) {
	for _, p := range registry {
		if p.Year == year && p.Day == day {
			return p, nil
		}
	}

	return nil, errors.New().WithData(ErrUnknownPuzzle, struct {
		Year int
		Day  int
	}{
		Year: year,
		Day:  day,
	})
}

// All returns every registered puzzle ordered by year and day.
func All() []*Puzzle {
	out := slices.Clone(registry)
	slices.SortFunc(out, func(a, b *Puzzle) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return a.Day - b.Day
	})

	return out
}
