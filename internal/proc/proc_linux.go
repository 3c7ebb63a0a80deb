//go:build linux

package proc

import (
	"sync"
	"time"

	"codeberg.org/mutker/puzzlebench/internal/errors"
	"github.com/prometheus/procfs"
	"golang.org/x/sys/unix"
)

// Process reads counters for the current process from /proc and getrusage.
type Process struct {
	self procfs.Proc
	mu   sync.Mutex
}

// New opens the proc filesystem entry of the current process.
func New() (*Process, error) {
	errFactory := errors.New()

	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return nil, errFactory.Wrap(ErrInitFailed, err)
	}

	self, err := fs.Self()
	if err != nil {
		return nil, errFactory.Wrap(ErrInitFailed, err)
	}

	return &Process{self: self}, nil
}

func (p *Process) ResidentBytes() (uint64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	stat, err := p.self.Stat()
	if err != nil {
		return 0, errors.New().Wrap(ErrReadMemory, err)
	}

	rss := stat.ResidentMemory()
	if rss < 0 {
		return 0, errors.New().WithData(ErrReadMemory, rss)
	}

	return uint64(rss), nil
}

func (p *Process) CPUTime() (time.Duration, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, errors.New().Wrap(ErrReadCPU, err)
	}

	return time.Duration(ru.Utime.Nano() + ru.Stime.Nano()), nil
}
