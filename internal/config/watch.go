package config

import (
	"os"
	"time"
)

// Watcher polls config file modification times and triggers a callback on
// change, typically Loader.Invalidate plus a generator rebuild.
type Watcher struct {
	paths     []string
	interval  time.Duration
	onChange  func(string) // called with the path that changed
	stopCh    chan struct{}
	lastMTime map[string]time.Time
}

// NewWatcher creates a watcher for the given paths and poll interval.
func NewWatcher(paths []string, interval time.Duration, onChange func(string)) *Watcher {
	return &Watcher{
		paths:     paths,
		interval:  interval,
		onChange:  onChange,
		stopCh:    make(chan struct{}),
		lastMTime: make(map[string]time.Time),
	}
}

// Start begins polling in a goroutine.
func (w *Watcher) Start() {
	ticker := time.NewTicker(w.interval)
	go func() {
		defer ticker.Stop()
		w.scan(true) // prime mtime cache
		for {
			select {
			case <-ticker.C:
				w.scan(false)
			case <-w.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the watcher.
func (w *Watcher) Stop() {
	close(w.stopCh)
}

func (w *Watcher) scan(prime bool) {
	for _, p := range w.paths {
		fi, err := os.Stat(p)
		if err != nil {
			continue // missing file, keep going
		}
		mt := fi.ModTime()
		last, ok := w.lastMTime[p]
		if !ok {
			w.lastMTime[p] = mt
			continue
		}
		if mt.After(last) {
			w.lastMTime[p] = mt
			if !prime && w.onChange != nil {
				w.onChange(p)
			}
		}
	}
}
