package config

import (
	"context"
	"log"

	"github.com/fsnotify/fsnotify"
)

// Watch re-reads path whenever it is written and delivers the result on the
// returned channel. Only the latest unread config is kept. The watcher shuts
// down when ctx is done.
func Watch(ctx context.Context, path string, logger *log.Logger) (<-chan Config, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, err
	}

	ch := make(chan Config, 1)
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				cfg, err := Load(path)
				if err != nil {
					logger.Printf("config reload: %v", err)
					continue
				}
				select {
				case ch <- cfg:
				default:
					// drop the stale pending config and replace it
					select {
					case <-ch:
					default:
					}
					ch <- cfg
				}
				logger.Println("config reloaded")

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Printf("config watch: %v", err)
			}
		}
	}()

	return ch, nil
}
