package watcher

import (
	"path/filepath"
	"time"
)

// WatchFile watches a single file and reports settled changes to it.
//
// The parent directory is watched rather than the file itself, so the file
// is still followed when an editor saves by writing a temporary file and
// renaming it into place.
func WatchFile(path string, delay time.Duration) (*DebouncedWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	inner, err := NewFSNotifyWatcher(WithFilter(func(e Event) bool {
		return filepath.Clean(e.Path) == absPath && e.Op.Changed()
	}))
	if err != nil {
		return nil, err
	}
	if err := inner.Watch(filepath.Dir(absPath)); err != nil {
		_ = inner.Close()
		return nil, err
	}
	return NewDebouncedWatcher(inner, delay), nil
}
