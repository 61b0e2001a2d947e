package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// genDebounce is the delay after the last write event before
// regenerating. 500ms coalesces the partial writes an image editor
// makes while saving into a single regeneration.
const genDebounce = 500 * time.Millisecond

// runGenWatch generates once, then regenerates whenever the source GIF
// changes, until interrupted. The directory is watched rather than the
// file because editors that save via rename replace the inode.
func runGenWatch(opts genOptions) error {
	if err := runGen(opts); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(opts.input)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(opts.input), err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Timer callbacks send signals instead of regenerating directly so
	// all the work stays on this goroutine.
	signals := make(chan struct{}, 1)
	var mu sync.Mutex
	var debounce *time.Timer
	defer func() {
		mu.Lock()
		if debounce != nil {
			debounce.Stop()
		}
		mu.Unlock()
	}()

	fmt.Printf("watching %s for changes\n", opts.input)
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-signals:
			if err := runGen(opts); err != nil {
				// Keep watching; a half-written GIF will fail to decode
				// and succeed on the next save.
				fmt.Fprintf(os.Stderr, "regenerate: %v\n", err)
			}

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != opts.input {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			mu.Lock()
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(genDebounce, func() {
				select {
				case signals <- struct{}{}:
				default:
				}
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logv("watcher error: %v", err)
		}
	}
}
