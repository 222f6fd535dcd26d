// Package watcher reports changes to individual files.
//
// Files are watched through their parent directory so that editors which
// save by writing a temporary file and renaming it over the original keep
// producing events. A DebouncedWatcher coalesces the bursts of events a
// single save usually produces.
package watcher

import (
	"errors"
	"strings"
	"time"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed   = errors.New("watcher is closed")
	ErrAlreadyWatching = errors.New("path is already being watched")
	ErrNotWatching     = errors.New("path is not being watched")
	ErrPathNotExist    = errors.New("path does not exist")
	ErrNotRegularFile  = errors.New("path is not a regular file")
)

// Op is a set of file system operations.
type Op uint32

const (
	// OpCreate indicates the file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates the file was written to.
	OpWrite
	// OpRemove indicates the file was removed.
	OpRemove
	// OpRename indicates the file was renamed away.
	OpRename
)

// String returns the operations joined with "|".
func (op Op) String() string {
	var names []string
	for _, o := range []struct {
		op   Op
		name string
	}{
		{OpCreate, "CREATE"},
		{OpWrite, "WRITE"},
		{OpRemove, "REMOVE"},
		{OpRename, "RENAME"},
	} {
		if op.Has(o.op) {
			names = append(names, o.name)
		}
	}
	if len(names) == 0 {
		return "UNKNOWN"
	}
	return strings.Join(names, "|")
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return o != 0 && op&o == o
}

// Event represents a change to a watched file.
type Event struct {
	// Path is the absolute path of the file.
	Path string

	// Op is the operation that occurred.
	Op Op

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// Watcher monitors files for changes.
type Watcher interface {
	// Watch starts watching a regular file.
	// Returns ErrAlreadyWatching if the file is already being watched.
	Watch(path string) error

	// Unwatch stops watching a file.
	// Returns ErrNotWatching if the file isn't being watched.
	Unwatch(path string) error

	// Events returns the channel of file change events.
	// The channel is closed when the watcher is closed.
	Events() <-chan Event

	// Errors returns the channel of watcher errors.
	// The channel is closed when the watcher is closed.
	Errors() <-chan error

	// WatchedPaths returns the absolute paths of all watched files.
	WatchedPaths() []string

	// Close stops the watcher and releases resources.
	Close() error
}

// Config configures an FSNotifyWatcher.
type Config struct {
	// BufferSize is the capacity of the event and error channels.
	BufferSize int
}

// DefaultConfig returns the default watcher configuration.
func DefaultConfig() Config {
	return Config{
		BufferSize: 100,
	}
}

// WatcherOption configures a watcher.
type WatcherOption func(*Config)

// WithBufferSize sets the event channel capacity.
func WithBufferSize(n int) WatcherOption {
	return func(c *Config) {
		c.BufferSize = n
	}
}
