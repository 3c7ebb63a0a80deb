//go:build !unix

package pid

import "os"

func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}

	_, err := os.FindProcess(pid)
	return err == nil
}
