// Package watcher reports changes to input files so they can be rendered
// again.
//
// FSNotifyWatcher forwards raw file system events. DebouncedWatcher
// coalesces bursts of events per path, since editors typically write a
// file in several steps. WatchFile combines the two for a single file.
package watcher

import (
	"errors"
	"time"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed   = errors.New("watcher is closed")
	ErrAlreadyWatching = errors.New("path is already being watched")
	ErrPathNotExist    = errors.New("path does not exist")
)

// Op represents the type of file system operation.
type Op uint32

const (
	// OpCreate indicates a file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates a file was written to.
	OpWrite
	// OpRemove indicates a file was removed.
	OpRemove
	// OpRename indicates a file was renamed.
	OpRename
	// OpChmod indicates file permissions were changed.
	OpChmod
)

// String returns a human-readable representation of the operation.
func (op Op) String() string {
	switch op {
	case OpCreate:
		return "CREATE"
	case OpWrite:
		return "WRITE"
	case OpRemove:
		return "REMOVE"
	case OpRename:
		return "RENAME"
	case OpChmod:
		return "CHMOD"
	default:
		return "UNKNOWN"
	}
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Changed returns true if the operation may have altered file contents.
func (op Op) Changed() bool {
	return op&(OpCreate|OpWrite|OpRename) != 0
}

// Event represents a file system change event.
type Event struct {
	// Path is the absolute path of the affected file.
	Path string

	// Op is the operation that occurred. Coalesced events carry the
	// union of their operations.
	Op Op

	// Timestamp is when the last coalesced event occurred.
	Timestamp time.Time
}

// Watcher is a source of file system events.
type Watcher interface {
	// Watch starts watching a path.
	Watch(path string) error

	// Events returns the event channel. It is closed by Close.
	Events() <-chan Event

	// Errors returns the error channel. It is closed by Close.
	Errors() <-chan error

	// Close stops the watcher.
	Close() error
}
