package settings

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a settings file whenever it changes on disk.
type Watcher struct {
	path    string
	fs      *fsnotify.Watcher
	logger  *slog.Logger
	updates chan Settings
	done    chan struct{}
}

// Watch starts watching the directory holding path. The directory is watched
// rather than the file because Save replaces the file by rename.
func Watch(ctx context.Context, path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("settings watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("settings watcher: %w", err)
	}
	w := &Watcher{
		path:    filepath.Clean(path),
		fs:      fsw,
		logger:  logger,
		updates: make(chan Settings, 1),
		done:    make(chan struct{}),
	}
	go w.loop(ctx)
	return w, nil
}

// Updates delivers the latest valid settings. Only the newest pending value is
// kept.
func (w *Watcher) Updates() <-chan Settings {
	return w.updates
}

func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	return err
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("settings watcher error", "err", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Warn("settings reload rejected", "path", w.path, "err", err)
		return
	}
	// drop a stale pending value so the reader always sees the newest file
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
	w.logger.Debug("settings reloaded", "path", w.path)
}
