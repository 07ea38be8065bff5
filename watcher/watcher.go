package watcher

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ArtifactWatcher observes one engine-managed artifact directory while a
// target runs and reports crashing inputs as the engine writes them. It
// is strictly advisory: the orchestrator never opens the artifacts, and
// classification still comes from the engine's exit status alone.
type ArtifactWatcher struct {
	dir        string
	onArtifact func(path string)
	fsw        *fsnotify.Watcher
	mu         sync.Mutex
}

func New(dir string) (*ArtifactWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create artifact watcher: %w", err)
	}

	return &ArtifactWatcher{
		dir: dir,
		fsw: fsw,
	}, nil
}

func (w *ArtifactWatcher) OnArtifact(fn func(path string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onArtifact = fn
}

// Start blocks until ctx is done. The artifact directory may not exist
// until the engine's first crash; a missing directory is an error the
// caller is expected to absorb.
func (w *ArtifactWatcher) Start(ctx context.Context) error {
	if info, err := os.Stat(w.dir); err != nil || !info.IsDir() {
		return fmt.Errorf("artifact directory %s not watchable", w.dir)
	}
	if err := w.fsw.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}

	// libFuzzer writes each artifact once; debounce only to coalesce the
	// create+write pair for a single file.
	debouncer := NewDebouncer(100 * time.Millisecond)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.fsw.Events:
				if !ok {
					return
				}

				if event.Op&(fsnotify.Create|fsnotify.Write) != 0 {
					name := event.Name
					debouncer.Trigger(func() {
						w.mu.Lock()
						fn := w.onArtifact
						w.mu.Unlock()

						if fn != nil {
							fn(name)
						}
					})
				}
			case _, ok := <-w.fsw.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	<-ctx.Done()
	return nil
}

func (w *ArtifactWatcher) Stop() {
	w.fsw.Close()
}
