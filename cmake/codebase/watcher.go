package codebase

import (
	"os"
	"slices"
	"time"

	"golang.org/x/exp/maps"
)

// IncludeWatcher polls the files held in include caches and rebuilds the
// caches of the buffers that include a file when it changes, disappears or
// shows up for an include that did not resolve before.
type IncludeWatcher struct {
	codebase     *Codebase
	stopCh       chan struct{}
	pollInterval time.Duration
	modTimes     map[string]time.Time
}

func NewIncludeWatcher(c *Codebase) *IncludeWatcher {
	interval := c.Config().WatchInterval
	if interval <= 0 {
		interval = time.Second
	}
	return &IncludeWatcher{
		codebase:     c,
		stopCh:       make(chan struct{}),
		pollInterval: interval,
		modTimes:     make(map[string]time.Time),
	}
}

func (w *IncludeWatcher) Start() {
	go w.run()
}

func (w *IncludeWatcher) Stop() {
	close(w.stopCh)
}

func (w *IncludeWatcher) run() {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.scan()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

// scan returns the buffers whose caches it rebuilt.
func (w *IncludeWatcher) scan() []string {
	stale := make(map[string]bool)
	current := make(map[string]bool)

	for path, owners := range w.codebase.IncludedBy() {
		current[path] = true
		info, err := os.Stat(path)
		if err != nil {
			for _, o := range owners {
				stale[o] = true
			}
			delete(w.modTimes, path)
			continue
		}
		lastMod, known := w.modTimes[path]
		w.modTimes[path] = info.ModTime()
		if known && info.ModTime().After(lastMod) {
			for _, o := range owners {
				stale[o] = true
			}
		}
	}

	for path := range w.modTimes {
		if !current[path] {
			delete(w.modTimes, path)
		}
	}

	for _, owner := range w.codebase.Paths() {
		if f := w.codebase.GetFile(owner); f != nil && f.Cache.Appeared() {
			stale[owner] = true
		}
	}

	owners := maps.Keys(stale)
	slices.Sort(owners)
	var rebuilt []string
	for _, owner := range owners {
		logger().Infof("include of %s changed, rebuilding", owner)
		w.codebase.RefreshIncludes(owner)
		rebuilt = append(rebuilt, owner)
	}
	return rebuilt
}
