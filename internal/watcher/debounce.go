package watcher

import (
	"sync"
	"time"
)

// DefaultDebounce is the delay used when NewDebouncedWatcher is given a
// non-positive one.
const DefaultDebounce = 100 * time.Millisecond

// DebouncedWatcher wraps a Watcher with event debouncing.
// Changes to the same file within the delay are coalesced into one event
// whose Op is the union of the operations seen.
type DebouncedWatcher struct {
	inner Watcher
	delay time.Duration

	mu       sync.Mutex
	pending  map[string]*pendingEvent
	events   chan Event
	errors   chan error
	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

type pendingEvent struct {
	event Event
	timer *time.Timer
}

// NewDebouncedWatcher creates a debounced watcher wrapper.
func NewDebouncedWatcher(inner Watcher, delay time.Duration) *DebouncedWatcher {
	if delay <= 0 {
		delay = DefaultDebounce
	}

	dw := &DebouncedWatcher{
		inner:   inner,
		delay:   delay,
		pending: make(map[string]*pendingEvent),
		events:  make(chan Event, 100),
		errors:  make(chan error, 100),
		closeCh: make(chan struct{}),
	}

	dw.closedWg.Add(1)
	go dw.processLoop()

	return dw
}

// Watch starts watching a file.
func (dw *DebouncedWatcher) Watch(path string) error {
	return dw.inner.Watch(path)
}

// Unwatch stops watching a file.
func (dw *DebouncedWatcher) Unwatch(path string) error {
	return dw.inner.Unwatch(path)
}

// Events returns the debounced event channel.
func (dw *DebouncedWatcher) Events() <-chan Event {
	return dw.events
}

// Errors returns the error channel.
func (dw *DebouncedWatcher) Errors() <-chan error {
	return dw.errors
}

// WatchedPaths returns all watched files.
func (dw *DebouncedWatcher) WatchedPaths() []string {
	return dw.inner.WatchedPaths()
}

// Close stops the debounced watcher and the watcher it wraps. Pending
// events are discarded.
func (dw *DebouncedWatcher) Close() error {
	dw.mu.Lock()
	if dw.closed {
		dw.mu.Unlock()
		return nil
	}
	dw.closed = true
	close(dw.closeCh)

	for path, p := range dw.pending {
		p.timer.Stop()
		delete(dw.pending, path)
	}
	dw.mu.Unlock()

	// The inner watcher is closed first so processLoop sees its channels
	// close if it is not already returning.
	err := dw.inner.Close()
	dw.closedWg.Wait()

	dw.mu.Lock()
	close(dw.events)
	close(dw.errors)
	dw.mu.Unlock()

	return err
}

// PendingCount returns the number of pending events.
func (dw *DebouncedWatcher) PendingCount() int {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	return len(dw.pending)
}

// Flush immediately fires all pending events.
func (dw *DebouncedWatcher) Flush() {
	dw.mu.Lock()
	paths := make([]string, 0, len(dw.pending))
	for path, p := range dw.pending {
		p.timer.Stop()
		paths = append(paths, path)
	}
	dw.mu.Unlock()

	for _, path := range paths {
		dw.fireEvent(path)
	}
}

func (dw *DebouncedWatcher) processLoop() {
	defer dw.closedWg.Done()

	for {
		select {
		case <-dw.closeCh:
			return

		case event, ok := <-dw.inner.Events():
			if !ok {
				return
			}
			dw.handleEvent(event)

		case err, ok := <-dw.inner.Errors():
			if !ok {
				return
			}
			dw.forwardError(err)
		}
	}
}

// handleEvent starts or extends the delay window for the event's path.
func (dw *DebouncedWatcher) handleEvent(event Event) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.closed {
		return
	}

	if p, exists := dw.pending[event.Path]; exists {
		p.event.Op |= event.Op
		p.event.Timestamp = event.Timestamp
		p.timer.Reset(dw.delay)
		return
	}

	path := event.Path
	dw.pending[path] = &pendingEvent{
		event: event,
		timer: time.AfterFunc(dw.delay, func() {
			dw.fireEvent(path)
		}),
	}
}

// fireEvent sends a pending event and removes it from the map.
func (dw *DebouncedWatcher) fireEvent(path string) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	p, exists := dw.pending[path]
	if !exists || dw.closed {
		return
	}
	delete(dw.pending, path)

	select {
	case dw.events <- p.event:
	default:
		// Channel full, drop event.
	}
}

func (dw *DebouncedWatcher) forwardError(err error) {
	select {
	case dw.errors <- err:
	case <-dw.closeCh:
	default:
	}
}

// Ensure DebouncedWatcher implements Watcher.
var _ Watcher = (*DebouncedWatcher)(nil)
