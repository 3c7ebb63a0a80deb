package bench_test

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"codeberg.org/mutker/puzzlebench/internal/bench"
)

// fakeClock only moves when told to.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// costSolver counts input units and advances the clock by cost(n).
func costSolver(clock *fakeClock, cost func(n int) time.Duration) bench.Solver {
	return bench.SolverFunc(func(in bench.Input) (bench.Answer, error) {
		n := in.Len()
		clock.Advance(cost(n))
		return bench.Int(int64(n)), nil
	})
}

func linesOf(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}

	return b.String()
}

// fakeReader replays scripted readings. A nil slice makes the
// corresponding read fail.
type fakeReader struct {
	rss []uint64
	cpu []time.Duration
}

func (r *fakeReader) ResidentBytes() (uint64, error) {
	if len(r.rss) == 0 {
		return 0, fmt.Errorf("no rss reading")
	}

	v := r.rss[0]
	if len(r.rss) > 1 {
		r.rss = r.rss[1:]
	}

	return v, nil
}

func (r *fakeReader) CPUTime() (time.Duration, error) {
	if len(r.cpu) == 0 {
		return 0, fmt.Errorf("no cpu reading")
	}

	v := r.cpu[0]
	if len(r.cpu) > 1 {
		r.cpu = r.cpu[1:]
	}

	return v, nil
}
