package housing

import (
	"sync"
	"time"
)

// Loader memoizes LoadFile for interactive use: the raw path is fixed for
// the life of the process, so the first successful load is reused on every
// refresh instead of re-reading the file.
//
// An optional TTL expires the cached table after a fixed duration; a zero
// TTL means the cache only expires on Invalidate or process restart.
// Failed loads are not cached.
type Loader struct {
	path string
	ttl  time.Duration

	mu     sync.Mutex
	table  *Table
	loaded time.Time
}

// NewLoader returns a memoizing loader for the file at path.
func NewLoader(path string) *Loader { return &Loader{path: path} }

// WithTTL sets a time-based invalidation period and returns the loader.
func (l *Loader) WithTTL(ttl time.Duration) *Loader {
	l.ttl = ttl
	return l
}

// Table returns the long table for the loader's path, reading the file at
// most once per cache lifetime.
func (l *Loader) Table() (*Table, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.table != nil && (l.ttl == 0 || time.Since(l.loaded) < l.ttl) {
		return l.table, nil
	}

	t, err := LoadFile(l.path)
	if err != nil {
		return nil, err
	}
	l.table, l.loaded = t, time.Now()
	return t, nil
}

// Invalidate drops the cached table; the next Table call re-reads the file.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.table = nil
}
