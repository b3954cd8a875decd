package config

import (
	"DeskScene/internal/logger"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads a config file whenever it is written. Valid reloads are
// delivered on Changes; invalid ones are logged and dropped.
type Watcher struct {
	path    string
	fs      *fsnotify.Watcher
	changes chan *Config
	done    chan struct{}
}

// Watch starts watching path. The containing directory is watched so that
// editors which replace the file on save are still seen.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w := &Watcher{
		path:    abs,
		fs:      fs,
		changes: make(chan *Config, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Changes delivers the latest valid configuration. Only the newest pending
// reload is kept. The channel is closed by Close.
func (w *Watcher) Changes() <-chan *Config {
	return w.changes
}

func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	defer close(w.changes)

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Log.Warn("Config watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		logger.Log.Warn("Ignoring config change", zap.String("path", w.path), zap.Error(err))
		return
	}
	// Replace a reload the frame loop has not picked up yet.
	select {
	case <-w.changes:
	default:
	}
	w.changes <- cfg
	logger.Log.Info("Config reloaded", zap.String("path", w.path))
}
