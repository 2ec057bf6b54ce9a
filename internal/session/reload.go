package session

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/philipparndt/vrpbooth/internal/config"
	"github.com/philipparndt/vrpbooth/pkg/watcher"
)

const reloadDebounce = 300 * time.Millisecond

// Reloads delivers the config file's contents each time it changes. Only
// the latest valid version is kept; broken edits are logged and skipped.
type Reloads struct {
	fw  *watcher.FileWatcher
	mu  sync.Mutex
	ch  chan config.Config
	log *slog.Logger
}

// WatchConfig starts watching the config file at path
func WatchConfig(path string, log *slog.Logger) (*Reloads, error) {
	fw, err := watcher.NewFileWatcher(reloadDebounce, watcher.WithLogger(log))
	if err != nil {
		return nil, err
	}

	r := &Reloads{fw: fw, ch: make(chan config.Config, 1), log: log}
	if err := fw.Watch([]string{path}, r.load); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching config: %w", err)
	}
	fw.Start()

	log.Info("watching config for changes", "path", path)
	return r, nil
}

func (r *Reloads) load(path string) {
	cfg, err := config.Load(path)
	if err != nil {
		r.log.Warn("ignoring config change", "err", err)
		return
	}
	r.publish(cfg)
}

func (r *Reloads) publish(cfg config.Config) {
	r.mu.Lock()
	defer r.mu.Unlock()

	select {
	case <-r.ch:
	default:
	}
	r.ch <- cfg
}

// C returns the channel reloaded configs arrive on
func (r *Reloads) C() <-chan config.Config { return r.ch }

// Close stops watching
func (r *Reloads) Close() error { return r.fw.Close() }

// ApplyReloads applies a pending reload, if any, without blocking
func (s *Session) ApplyReloads(r *Reloads) {
	if r == nil {
		return
	}
	select {
	case cfg := <-r.C():
		s.Reconfigure(cfg)
	default:
	}
}
