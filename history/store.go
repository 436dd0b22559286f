// Package history persists the set of previously emitted idea titles so the
// generator never produces the same title twice across runs.
package history

import (
	"errors"
	"time"
)

// Sentinel errors for common store conditions.
var (
	// ErrCorrupt indicates the persisted history could not be parsed.
	ErrCorrupt = errors.New("history: data corruption detected")
	// ErrLockTimeout indicates a timeout acquiring the history lock file.
	ErrLockTimeout = errors.New("history: lock acquisition timeout")
)

// Store is the membership log consulted during idea generation.
// Implementations must be safe for concurrent use within one process;
// cross-process safety is the backend's concern.
type Store interface {
	// Contains reports whether a title was previously recorded.
	Contains(title string) (bool, error)
	// Record appends the given titles, skipping ones already present,
	// and refreshes the last-updated timestamp.
	Record(titles []string) error
	// Titles returns all recorded titles, oldest first.
	Titles() ([]string, error)
	// LastUpdated returns the time of the last successful Record,
	// or the zero time if nothing was ever recorded.
	LastUpdated() (time.Time, error)

	// Close releases any resources held by the store.
	Close() error
}
