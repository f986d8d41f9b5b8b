package monitor

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of writes of one save into a single run
const DefaultDebounce = 200 * time.Millisecond

// Logger receives watcher diagnostics
type Logger interface {
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Monitor re-runs a batch job each time the watched file is written or re-created
type Monitor struct {
	path     string
	run      func() error
	log      Logger
	debounce time.Duration

	watcher  *fsnotify.Watcher
	stopCh   chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a new monitor for path
func New(path string, run func() error, log Logger) *Monitor {
	return &Monitor{
		path:     path,
		run:      run,
		log:      log,
		debounce: DefaultDebounce,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs the job once and begins watching. A failing first run is returned.
func (m *Monitor) Start() error {
	abs, err := filepath.Abs(m.path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", m.path, err)
	}
	m.path = abs

	if err := m.run(); err != nil {
		return err
	}

	m.watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory so editors that replace the file are still seen
	dir := filepath.Dir(m.path)
	if err := m.watcher.Add(dir); err != nil {
		m.watcher.Close()
		m.watcher = nil
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go m.watchFiles()

	m.log.Info("Watching %s for changes", m.path)
	return nil
}

func (m *Monitor) watchFiles() {
	defer close(m.done)

	var timer *time.Timer
	var pending <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			absEventPath, _ := filepath.Abs(event.Name)
			if absEventPath != m.path {
				continue
			}

			// restart the quiet period on every write
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(m.debounce)
			pending = timer.C

		case <-pending:
			pending = nil
			m.log.Info("Journal modified: %s", m.path)
			if err := m.run(); err != nil {
				m.log.Error("%v", err)
			}

		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			m.log.Error("File watcher error: %v", err)

		case <-m.stopCh:
			return
		}
	}
}

// Stop stops watching and waits for a running job to finish
func (m *Monitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopCh)
		if m.watcher != nil {
			m.watcher.Close()
			<-m.done
		}
	})
}
