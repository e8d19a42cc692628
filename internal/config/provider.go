package config

import (
	"context"
	"log"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Provider hands out the active configuration and swaps it when the
// config file changes. Connection settings read through Current are
// immutable snapshots; callers must not mutate the returned value.
type Provider struct {
	mu   sync.RWMutex
	path string
	cfg  *Config
}

func NewProvider(path string, cfg *Config) *Provider {
	return &Provider{path: path, cfg: cfg}
}

func (p *Provider) Current() *Config {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg
}

func (p *Provider) reload() {
	cfg, err := Load(p.path)
	if err != nil {
		log.Printf("[config] reload skipped: %v", err)
		return
	}
	p.mu.Lock()
	p.cfg = cfg
	p.mu.Unlock()
	log.Printf("[config] reloaded from %s", p.path)
}

// Watch blocks until ctx is cancelled, reloading the config file on
// write/create/rename events. Events are debounced; a burst of writes
// triggers a single reload.
func (p *Provider) Watch(ctx context.Context) error {
	if p.path == "" {
		<-ctx.Done()
		return ctx.Err()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dir := filepath.Dir(p.path)
	base := filepath.Base(p.path)

	if err := w.Add(dir); err != nil {
		return err
	}

	var pending atomic.Bool
	trigger := func() {
		if pending.CompareAndSwap(false, true) {
			go func() {
				time.Sleep(50 * time.Millisecond)
				p.reload()
				pending.Store(false)
			}()
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-w.Events:
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				trigger()
			}
		case <-w.Errors:
		}
	}
}
