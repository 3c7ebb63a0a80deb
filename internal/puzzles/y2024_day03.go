package puzzles

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"

	"codeberg.org/mutker/puzzlebench/internal/bench"
	"codeberg.org/mutker/puzzlebench/internal/errors"
)

const (
	memoryExample            = `xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))`
	conditionalMemoryExample = `xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))`
)

var instructionPattern = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

type instruction struct {
	product int
	// enabled is false for products preceded by an unmatched don't().
	enabled bool
}

// instructionCache memoizes the parsed program of each input so both
// parts can share one scan.
type instructionCache struct {
	mu      sync.Mutex
	entries map[string][]instruction
}

func (c *instructionCache) get(txt string) []instruction {
	c.mu.Lock()
	defer c.mu.Unlock()

	if prog, ok := c.entries[txt]; ok {
		return prog
	}

	prog := scanInstructions(txt)
	if c.entries == nil {
		c.entries = make(map[string][]instruction)
	}
	c.entries[txt] = prog

	return prog
}

func (c *instructionCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = nil
}

func scanInstructions(txt string) []instruction {
	var prog []instruction
	enabled := true

	for _, m := range instructionPattern.FindAllStringSubmatch(txt, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			x, _ := strconv.Atoi(m[1])
			y, _ := strconv.Atoi(m[2])
			prog = append(prog, instruction{product: x * y, enabled: enabled})
		}
	}

	return prog
}

// mulSolver sums the products of a corrupted memory dump.
type mulSolver struct {
	cache       *instructionCache
	conditional bool
}

func (s *mulSolver) Solve(in bench.Input) (bench.Answer, error) {
	txt, ok := in.(bench.Text)
	if !ok {
		return bench.NoAnswer, errors.New().WithData(bench.ErrUnsupportedInput, fmt.Sprintf("%T", in))
	}

	sum := 0
	for _, ins := range s.cache.get(txt.String()) {
		if ins.enabled || !s.conditional {
			sum += ins.product
		}
	}

	return answer(sum), nil
}

func (s *mulSolver) ResetCache() {
	s.cache.reset()
}

func mullItOver() *Puzzle {
	cache := &instructionCache{}

	return &Puzzle{
		Year:  2024,
		Day:   3,
		Title: "Mull It Over",
		Parts: []Part{
			{
				Name:     "a",
				Solver:   &mulSolver{cache: cache},
				Examples: []Example{{Input: memoryExample, Want: bench.Int(161)}},
			},
			{
				Name:     "b",
				Solver:   &mulSolver{cache: cache, conditional: true},
				Examples: []Example{{Input: conditionalMemoryExample, Want: bench.Int(48)}},
			},
		},
	}
}
