package roster

import (
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const reloadDebounce = 200 * time.Millisecond

// Store is a single-slot cache for the roster dataset. The snapshot is loaded
// once, held immutably, and refreshed only by Reload, which swaps the
// snapshot pointer atomically so concurrent readers never observe a
// half-updated dataset.
type Store struct {
	path   string
	logger *zap.Logger

	current atomic.Pointer[Roster]

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	done    chan struct{}
}

func NewStore(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logger: logger}
}

// Load returns the current snapshot, reading the CSV on first use.
func (s *Store) Load() (*Roster, error) {
	if snapshot := s.current.Load(); snapshot != nil {
		return snapshot, nil
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s.current.Load(), nil
}

// Snapshot returns the current snapshot without loading. Nil until the first
// successful Load or Reload.
func (s *Store) Snapshot() *Roster {
	return s.current.Load()
}

// Reload re-reads the CSV and atomically replaces the snapshot. On failure
// the previous snapshot stays in place.
func (s *Store) Reload() error {
	roster, err := LoadCSV(s.path)
	if err != nil {
		return err
	}

	s.current.Store(roster)
	s.logger.Info("roster snapshot loaded",
		zap.String("path", s.path),
		zap.Int("lawyers", roster.Len()),
	)
	return nil
}

// Watch starts monitoring the roster file and reloads the snapshot when it
// changes. Editors often replace files on save, so the parent directory is
// watched and events are debounced.
func (s *Store) Watch() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watcher != nil {
		return errors.New("roster watch already started")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(s.path)
	if err != nil {
		watcher.Close()
		return err
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return err
	}

	s.watcher = watcher
	s.done = make(chan struct{})

	go s.watchLoop(abs)

	s.logger.Info("watching roster file", zap.String("path", abs))
	return nil
}

func (s *Store) watchLoop(path string) {
	var lastEvent time.Time
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			now := time.Now()
			if now.Sub(lastEvent) < reloadDebounce {
				continue
			}
			lastEvent = now

			if err := s.Reload(); err != nil {
				s.logger.Warn("roster reload failed; keeping previous snapshot",
					zap.String("path", path),
					zap.Error(err),
				)
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("roster watcher error", zap.Error(err))
		case <-s.done:
			return
		}
	}
}

// Close stops watching. Safe to call when Watch was never started.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watcher == nil {
		return nil
	}

	close(s.done)
	err := s.watcher.Close()
	s.watcher = nil
	s.done = nil
	return err
}
