package campaign

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const defaultDebounce = 300 * time.Millisecond

// Watcher reports changes to a snapshot file. The parent directory is
// watched so editors that save through a rename are still seen.
type Watcher struct {
	Path     string
	Debounce time.Duration
	log      *zap.Logger
}

func NewWatcher(path string, log *zap.Logger) *Watcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{Path: path, Debounce: defaultDebounce, log: log}
}

// Run blocks until ctx is done, calling onChange once per burst of events
// touching Path.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer fw.Close()

	target := filepath.Clean(w.Path)
	dir := filepath.Dir(target)
	if err := fw.Add(dir); err != nil {
		return errors.Wrapf(err, "watch %s", dir)
	}
	w.log.Debug("watching snapshot", zap.String("path", target))

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("snapshot watcher", zap.Error(err))
		case <-timer.C:
			w.log.Info("snapshot changed", zap.String("path", target))
			onChange()
		}
	}
}
