package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// historyFile is the on-disk document. The shape is shared with the n8n
// workflows that read the same file, so field names stay snake_case.
type historyFile struct {
	GeneratedTitles []string `json:"generated_titles"`
	LastUpdated     string   `json:"last_updated,omitempty"`
}

// JSONStore keeps the title log in a single JSON file. A sidecar .lock file
// guards against concurrent invocations from a second process; an in-process
// mutex guards concurrent use of one store value.
type JSONStore struct {
	mu          sync.Mutex
	path        string
	retention   int
	lockTimeout time.Duration

	titles  []string
	seen    map[string]bool
	updated time.Time
}

// JSONStoreOptions tunes a JSONStore beyond its defaults.
type JSONStoreOptions struct {
	// RetentionLimit bounds the log to the most recent N titles (default 100).
	RetentionLimit int
	// LockTimeout bounds how long Record waits for the lock file (default 5s).
	LockTimeout time.Duration
}

// NewJSONStore opens (or initializes) the history file at path.
// A missing file yields an empty history; an unparsable file yields ErrCorrupt.
func NewJSONStore(path string, opts JSONStoreOptions) (*JSONStore, error) {
	s := newEmptyStore(path, opts)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read history %s: %w", path, err)
	}

	var doc historyFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}

	for _, title := range doc.GeneratedTitles {
		if !s.seen[title] {
			s.seen[title] = true
			s.titles = append(s.titles, title)
		}
	}
	if doc.LastUpdated != "" {
		if t, err := time.Parse(time.RFC3339, doc.LastUpdated); err == nil {
			s.updated = t
		}
	}
	return s, nil
}

// Open is NewJSONStore with the corrupt-file case downgraded: a history
// file that can't be parsed costs the dedupe record, not the run. The bad
// file is left in place and overwritten on the next Record.
func Open(path string, opts JSONStoreOptions) (*JSONStore, error) {
	s, err := NewJSONStore(path, opts)
	if err == nil || !errors.Is(err, ErrCorrupt) {
		return s, err
	}
	log.Printf("[history] ⚠️  %v — starting with an empty history", err)
	return newEmptyStore(path, opts), nil
}

func newEmptyStore(path string, opts JSONStoreOptions) *JSONStore {
	if opts.RetentionLimit <= 0 {
		opts.RetentionLimit = 100
	}
	if opts.LockTimeout <= 0 {
		opts.LockTimeout = 5 * time.Second
	}
	return &JSONStore{
		path:        path,
		retention:   opts.RetentionLimit,
		lockTimeout: opts.LockTimeout,
		seen:        make(map[string]bool),
	}
}

// Contains reports whether a title was previously recorded.
func (s *JSONStore) Contains(title string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seen[title], nil
}

// Titles returns a copy of all recorded titles, oldest first.
func (s *JSONStore) Titles() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.titles))
	copy(out, s.titles)
	return out, nil
}

// LastUpdated returns the time of the last successful Record.
func (s *JSONStore) LastUpdated() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updated, nil
}

// Record appends new titles and writes the file back. Titles already present
// are skipped, so recording the same batch twice is a no-op apart from the
// timestamp. The log is trimmed to the retention limit, oldest first.
func (s *JSONStore) Record(titles []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, title := range titles {
		if title == "" || s.seen[title] {
			continue
		}
		s.seen[title] = true
		s.titles = append(s.titles, title)
	}

	// Keep only the most recent titles so the file never grows unbounded
	if len(s.titles) > s.retention {
		dropped := s.titles[:len(s.titles)-s.retention]
		for _, title := range dropped {
			delete(s.seen, title)
		}
		s.titles = s.titles[len(s.titles)-s.retention:]
	}

	s.updated = time.Now().UTC()
	return s.flush()
}

// flush writes the document atomically: temp file + rename, under the lock file.
func (s *JSONStore) flush() error {
	unlock, err := acquireFileLock(s.path+".lock", s.lockTimeout)
	if err != nil {
		return err
	}
	defer unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create history dir: %w", err)
		}
	}

	doc := historyFile{
		GeneratedTitles: s.titles,
		LastUpdated:     s.updated.Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}

// Close releases the store. The JSON backend holds no open handles.
func (s *JSONStore) Close() error { return nil }
