package config

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/ZacxDev/go-docs-site/logging"
	"github.com/ZacxDev/go-docs-site/site"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const reloadDebounce = 300 * time.Millisecond

// Holder serves the current store and replaces it whole on reload. Readers
// see either the old store or the new one, never a mix.
type Holder struct {
	path    string
	current atomic.Pointer[site.Store]
	logger  zerolog.Logger

	// OnReload, when set, runs after every successful swap.
	OnReload func(*site.Store)
}

// NewHolder loads path and fails if the initial configuration is invalid.
func NewHolder(path string) (*Holder, error) {
	store, err := Load(path)
	if err != nil {
		return nil, err
	}
	h := &Holder{
		path:   path,
		logger: logging.WithComponent("config"),
	}
	h.current.Store(store)
	return h, nil
}

func (h *Holder) Store() *site.Store {
	return h.current.Load()
}

// Reload rebuilds the store from disk. On failure the previous store stays
// in place.
func (h *Holder) Reload() error {
	store, err := Load(h.path)
	if err != nil {
		h.logger.Error().Err(err).Str("event", "config.reload_failed").Str("path", h.path).Msg("keeping previous configuration")
		return err
	}
	h.current.Store(store)
	h.logger.Info().Str("event", "config.reloaded").Strs("locales", store.LocaleCodes()).Msg("configuration reloaded")
	if h.OnReload != nil {
		h.OnReload(store)
	}
	return nil
}

// Watch reloads the store whenever the file changes, until ctx is done.
func (h *Holder) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	if err := watcher.Add(h.path); err != nil {
		_ = watcher.Close()
		return errors.Wrap(err, "watch config file")
	}
	h.logger.Info().Str("event", "config.watch_started").Str("path", h.path).Msg("watching configuration")

	go func() {
		defer watcher.Close()
		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				// Editors that replace the file drop it from the watch list.
				if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					_ = watcher.Add(h.path)
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(reloadDebounce, func() { _ = h.Reload() })
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				h.logger.Error().Err(err).Str("event", "config.watch_error").Msg("watcher error")
			}
		}
	}()
	return nil
}
