// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-tw-config/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// DocumentWatcher reloads the document whenever its file changes on disk.
//
// The parent directory is watched rather than the file itself, so editors
// and tools that replace the file by renaming a temporary one are noticed.
// Bursts of events are collapsed: a reload happens once the file has been
// quiet for the debounce period.
type DocumentWatcher struct {
	path     string
	reloader Reloader
	debounce time.Duration

	logger *logger.Logger
}

func NewDocumentWatcher(path string, reloader Reloader, debounce time.Duration, logger *logger.Logger) (*DocumentWatcher, error) {
	if reloader == nil {
		return nil, ErrNilReloader
	}
	if path == "" {
		return nil, ErrEmptyPath
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStartWatching, err)
	}

	return &DocumentWatcher{
		path:     abs,
		reloader: reloader,
		debounce: debounce,
		logger:   logger,
	}, nil
}

// Run watches until ctx is cancelled.
func (w *DocumentWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStartWatching, err)
	}
	defer watcher.Close()

	if err = watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("%w: %w", ErrStartWatching, err)
	}

	w.logger.Info().Str("path", w.path).Dur("debounce", w.debounce).Msg("watching document file")

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Str("path", w.path).Msg("document watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}

			w.logger.Debug().Str("op", event.Op.String()).Msg("document file changed")
			timer.Reset(w.debounce)

		case <-timer.C:
			if err := w.reloader.Reload(ctx); err != nil {
				w.logger.Err(err).Str("path", w.path).Msg("automatic reload failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Err(err).Msg("document watcher error")
		}
	}
}

func (w *DocumentWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
