package distwatch

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/tether/internal/core/ports"
)

// debounceWindow is how long the dist directory has to stay quiet before a
// rebuild is considered complete.
const debounceWindow = 300 * time.Millisecond

// Observer reports rebuild completions in the library's dist directory.
// It is purely informational: a failure to observe never affects the session.
type Observer struct {
	logger ports.Logger
}

// NewObserver creates a new Observer.
func NewObserver(logger ports.Logger) *Observer {
	return &Observer{logger: logger}
}

// Run watches the dist directory until the context is canceled. Any failure
// to start observing, including the directory not existing yet because the
// watch child has not produced output before, is reported once and Run
// returns nil: observation must never end the session.
func (o *Observer) Run(ctx context.Context, distDir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		o.logger.Info(fmt.Sprintf("not observing %s: %v", distDir, err))
		return nil
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(distDir); err != nil {
		o.logger.Info(fmt.Sprintf("not observing %s: %v", distDir, err))
		return nil
	}

	debouncer := NewDebouncer(debounceWindow, func(paths []string) {
		o.logger.Info(fmt.Sprintf("library output updated (%d files)", len(paths)))
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
				debouncer.Add(event.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			o.logger.Warn(fmt.Sprintf("dist observer: %v", err))
		}
	}
}
