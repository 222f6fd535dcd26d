package app

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/dshills/textbuf/internal/plugin/lua"
	"github.com/dshills/textbuf/internal/watcher"
)

// RunScript executes the Lua script at path in a fresh sandboxed state with
// the textbuf module loaded.
func (a *Application) RunScript(ctx context.Context, path string) error {
	if path == "" {
		return NewOperationError("run", "", ErrNoScript)
	}

	log := a.logger.WithComponent("script").WithField("path", path)
	state := lua.NewState(
		lua.WithExecutionTimeout(a.cfg.Script.Timeout.Duration),
		lua.WithOutput(a.stdout),
	)
	defer state.Close()
	a.module.Register(state)

	start := time.Now()
	log.Debug("running script")
	if err := state.DoFile(ctx, path); err != nil {
		return NewOperationError("run", path, err)
	}
	log.Debug("script finished in %s", time.Since(start).Round(time.Millisecond))
	return nil
}

// Watch runs the script at path, then runs it again after every change to
// the file until ctx is cancelled. Script failures are logged and do not
// stop the loop.
func (a *Application) Watch(ctx context.Context, path string) error {
	if path == "" {
		return NewOperationError("watch", "", ErrNoScript)
	}

	log := a.logger.WithComponent("watcher").WithField("path", path)

	fsw, err := watcher.NewFSNotifyWatcher()
	if err != nil {
		return NewComponentError("watcher", "create", err)
	}
	w := watcher.NewDebouncedWatcher(fsw, a.cfg.Script.WatchDebounce.Duration)
	defer w.Close()

	if err := w.Watch(path); err != nil {
		return NewOperationError("watch", path, err)
	}

	a.runWatched(ctx, path, log)
	log.Info("watching %s", strings.Join(w.WatchedPaths(), ", "))

	for {
		select {
		case <-ctx.Done():
			log.Debug("stopped")
			return nil

		case ev, ok := <-w.Events():
			if !ok {
				return NewOperationError("watch", path, ErrWatchClosed)
			}
			log.Debug("change detected: %s", ev.Op)
			if _, err := os.Stat(path); err != nil {
				log.Warn("script unavailable, waiting for it to return: %v", err)
				continue
			}
			a.runWatched(ctx, path, log)

		case err, ok := <-w.Errors():
			if !ok {
				return NewOperationError("watch", path, ErrWatchClosed)
			}
			log.Warn("watch error: %v", err)
		}
	}
}

func (a *Application) runWatched(ctx context.Context, path string, log *Logger) {
	err := a.RunScript(ctx, path)
	if err != nil && ctx.Err() == nil {
		log.Error("%v", err)
	}
	if a.afterRun != nil {
		a.afterRun(err)
	}
}
