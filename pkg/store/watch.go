package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the outcome of a reload triggered by a source change.
type EventType int

const (
	// EventReloaded indicates a new store replaced the previous one.
	EventReloaded EventType = iota

	// EventFailed indicates the reload failed; Snapshot now reports Err.
	EventFailed
)

// Event is emitted by Catalog.Watch after every reload it performs.
type Event struct {
	Type EventType
	Err  error
}

// Watch reloads the document whenever the source file changes and streams the
// outcome until ctx is cancelled. Only file sources can be watched. Callers
// should drain the returned channel; events are dropped when it is full.
func (c *catalog) Watch(ctx context.Context) (<-chan Event, error) {
	fs, ok := c.src.(FileSource)
	if !ok {
		return nil, fmt.Errorf("store: cannot watch %s, only file sources are supported", c.src)
	}
	if fs.Path == "" {
		return nil, errors.New("store: source path unknown")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				slog.Warn("store: watcher close", "error", err)
			}
		})
	}

	// Editors often replace the file through a rename, so watch the directory
	// and filter on the file name.
	target := filepath.Clean(fs.Path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", filepath.Dir(target), err)
	}

	events := make(chan Event, 16)

	// A reload may still be running in the throttle's timer goroutine after the
	// watch loop returns, so sends and the final close share a lock.
	var (
		sendMu sync.Mutex
		closed bool
	)
	send := func(ev Event) {
		sendMu.Lock()
		defer sendMu.Unlock()
		if closed {
			return
		}
		select {
		case events <- ev:
		default:
		}
	}

	go func() {
		throttle := newReloadThrottle(100 * time.Millisecond)
		defer func() {
			throttle.Stop()
			closeWatcher()
			sendMu.Lock()
			closed = true
			close(events)
			sendMu.Unlock()
		}()

		reload := func() {
			if ctx.Err() != nil {
				return
			}
			// A cancelled watch must not turn a reload that already started
			// into a failed catalog.
			if err := c.Reload(context.WithoutCancel(ctx)); err != nil {
				slog.Warn("store: reload failed", "source", target, "error", err)
				send(Event{Type: EventFailed, Err: err})
				return
			}
			slog.Info("store: reloaded", "source", target)
			send(Event{Type: EventReloaded})
		}

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("store: watcher error", "error", err)
				throttle.Trigger(reload)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != target {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				throttle.Trigger(reload)
			}
		}
	}()

	return events, nil
}

// reloadThrottle coalesces bursts of file events so a save that touches the
// file several times reloads once.
type reloadThrottle struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
}

func newReloadThrottle(delay time.Duration) *reloadThrottle {
	return &reloadThrottle{delay: delay}
}

func (t *reloadThrottle) Trigger(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		return
	}
	t.timer = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		t.timer = nil
		t.mu.Unlock()
		fn()
	})
}

func (t *reloadThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
