package pid

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"codeberg.org/mutker/puzzlebench/internal/errors"
)

const (
	pidFile = "puzzlebench.pid"
)

// Lock is a held PID file.
type Lock struct {
	path string
}

// Acquire writes the current process ID to a PID file in dir. It fails
// with ErrAlreadyRunning when the file names another live process. A
// stale file left by a dead process is replaced.
func Acquire(dir string) (*Lock, error) {
	errFactory := errors.New()

	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, pidFile)

	for attempt := 0; attempt < 2; attempt++ {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
		if err == nil {
			_, werr := f.WriteString(strconv.Itoa(os.Getpid()))
			cerr := f.Close()
			if werr != nil || cerr != nil {
				os.Remove(path)
				return nil, errFactory.Wrap(ErrWriteFailed, errors.Join(werr, cerr))
			}
			return &Lock{path: path}, nil
		}

		if !os.IsExist(err) {
			return nil, errFactory.Wrap(ErrWriteFailed, err)
		}

		holder, err := readPID(path)
		if err == nil && holder != os.Getpid() && processAlive(holder) {
			return nil, errFactory.WithData(ErrAlreadyRunning, struct {
				PID  int
				Path string
			}{
				PID:  holder,
				Path: path,
			})
		}

		// Stale or unreadable: clear it and try again.
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, errFactory.Wrap(ErrWriteFailed, err)
		}
	}

	return nil, errFactory.WithData(ErrAlreadyRunning, path)
}

// Path returns the location of the PID file.
func (l *Lock) Path() string {
	return l.path
}

// Release removes the PID file if it still belongs to this process.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}

	holder, err := readPID(l.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err == nil && holder != os.Getpid() {
		return nil
	}

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return errors.New().Wrap(ErrReleaseFailed, err)
	}

	return nil
}

func readPID(path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(strings.TrimSpace(string(b)))
}
