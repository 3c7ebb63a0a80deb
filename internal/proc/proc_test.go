//go:build linux

package proc_test

import (
	"testing"
	"time"

	"codeberg.org/mutker/puzzlebench/internal/proc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ proc.Reader = (*proc.Process)(nil)

func TestResidentBytes(t *testing.T) {
	p, err := proc.New()
	require.NoError(t, err)

	rss, err := p.ResidentBytes()
	require.NoError(t, err)
	assert.Positive(t, rss)

	// Touch a few megabytes so resident memory cannot shrink to zero.
	buf := make([]byte, 4<<20)
	for i := range buf {
		buf[i] = byte(i)
	}

	after, err := p.ResidentBytes()
	require.NoError(t, err)
	assert.Positive(t, after)
	assert.Equal(t, byte(0xff), buf[len(buf)-1])
}

func TestCPUTime(t *testing.T) {
	p, err := proc.New()
	require.NoError(t, err)

	before, err := p.CPUTime()
	require.NoError(t, err)

	deadline := time.Now().Add(20 * time.Millisecond)
	x := 0
	for time.Now().Before(deadline) {
		x++
	}

	after, err := p.CPUTime()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, after, before)
	assert.Positive(t, x)
}
