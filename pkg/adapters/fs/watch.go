package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// Watch observes the store root and emits the key of every slot whose
// backing file is created, written, or renamed by another process. The
// channel closes when ctx is cancelled.
//
// Atomic writes surface as a rename, so a single external save may emit
// the same key more than once; consumers are expected to reload from the
// slot rather than interpret individual events.
func (s *Store) Watch(ctx context.Context) (<-chan string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(s.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.Path, err)
	}

	out := make(chan string, 16)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer watcher.Close()
		defer close(out)
		defer s.setWatcherActive(false)

		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				name := filepath.Base(event.Name)
				if strings.HasPrefix(name, tempFilePrefix) || !strings.HasSuffix(name, s.config.Ext) {
					continue
				}
				key := strings.TrimSuffix(name, s.config.Ext)

				select {
				case out <- key:
				default:
					s.config.Logger.Warn("watch buffer full, dropping event", "key", key)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				s.config.Logger.Warn("watcher error", "error", err)
			}
		}
	})

	return out, nil
}

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
