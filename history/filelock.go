package history

import (
	"fmt"
	"os"
	"time"
)

// acquireFileLock takes a cross-process lock by exclusively creating lockPath.
// It polls until the lock is free or the timeout elapses. Stale locks older
// than ten times the timeout are broken, since a crashed run never cleans up.
func acquireFileLock(lockPath string, timeout time.Duration) (func(), error) {
	deadline := time.Now().Add(timeout)
	staleAfter := 10 * timeout

	for {
		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if err == nil {
			fmt.Fprintf(f, "%d\n", os.Getpid())
			f.Close()
			return func() { os.Remove(lockPath) }, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("create lock %s: %w", lockPath, err)
		}

		if fi, statErr := os.Stat(lockPath); statErr == nil {
			if time.Since(fi.ModTime()) > staleAfter {
				os.Remove(lockPath)
				continue
			}
		}

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, lockPath)
		}
		time.Sleep(25 * time.Millisecond)
	}
}
