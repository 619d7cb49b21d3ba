// ABOUTME: Polling-based file watcher for settings and stylesheet hot-reload
// ABOUTME: Compares mtimes at a fixed interval and reports which paths changed

package config

import (
	"context"
	"os"
	"sync"
	"time"
)

// DefaultWatchInterval is the polling period used when none is set.
const DefaultWatchInterval = time.Second

// Watcher monitors files for changes by polling mtime at regular intervals.
type Watcher struct {
	paths    []string
	onChange func(changed []string)
	interval time.Duration
	mtimes   map[string]time.Time
	mu       sync.Mutex
}

// NewWatcher creates a watcher that calls onChange with the paths whose
// mtime changed, appeared, or disappeared since the previous poll.
func NewWatcher(paths []string, onChange func(changed []string)) *Watcher {
	w := &Watcher{
		paths:    paths,
		onChange: onChange,
		interval: DefaultWatchInterval,
		mtimes:   make(map[string]time.Time),
	}
	w.snapshotLocked()
	return w
}

// SetInterval overrides the polling interval.
func (w *Watcher) SetInterval(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if d > 0 {
		w.interval = d
	}
}

// Run polls until ctx is done. onChange runs on the polling goroutine.
func (w *Watcher) Run(ctx context.Context) {
	w.mu.Lock()
	interval := w.interval
	w.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Check()
		}
	}
}

// Check polls once and reports whether anything changed.
func (w *Watcher) Check() bool {
	w.mu.Lock()
	changed := w.changedLocked()
	if len(changed) > 0 {
		w.snapshotLocked()
	}
	w.mu.Unlock()

	if len(changed) == 0 {
		return false
	}
	w.onChange(changed)
	return true
}

// changedLocked compares current mtimes with stored snapshots. Must hold mu.
func (w *Watcher) changedLocked() []string {
	var changed []string
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			if _, existed := w.mtimes[path]; existed {
				changed = append(changed, path)
			}
			continue
		}
		prev, ok := w.mtimes[path]
		if !ok || !info.ModTime().Equal(prev) {
			changed = append(changed, path)
		}
	}
	return changed
}

// snapshotLocked records current mtimes. Must hold mu.
func (w *Watcher) snapshotLocked() {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			delete(w.mtimes, path)
			continue
		}
		w.mtimes[path] = info.ModTime()
	}
}
