package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	perrors "github.com/zhubert/sidechat/internal/errors"
	"github.com/zhubert/sidechat/internal/logger"
)

// Watch calls onChange whenever the config file is written or replaced on
// disk. The directory is watched rather than the file so editors that save
// by rename are still picked up. Watch returns once the watcher is running;
// it stops when ctx is cancelled.
//
// onChange runs on the watcher goroutine. Callers that mutate UI state should
// hand the notification to their own event loop (e.g. tea.Program.Send) and
// call Reload from there.
func Watch(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return perrors.E(perrors.Op("config.Watch"), perrors.KindIO, err)
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return perrors.E(perrors.Op("config.Watch"), perrors.KindIO, err, dir)
	}

	log := logger.WithComponent("config")
	log.Debug("watching config", "path", path)

	base := filepath.Base(path)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					onChange()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("config watcher error", "error", err)
			}
		}
	}()
	return nil
}
