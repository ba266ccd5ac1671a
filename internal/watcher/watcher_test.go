package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

// mockWatcher is a simple mock for testing DebouncedWatcher.
type mockWatcher struct {
	mu       sync.Mutex
	events   chan Event
	errors   chan error
	watching map[string]bool
	closed   bool
}

func newMockWatcher() *mockWatcher {
	return &mockWatcher{
		events:   make(chan Event, 100),
		errors:   make(chan error, 100),
		watching: make(map[string]bool),
	}
}

func (m *mockWatcher) Watch(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.watching[path] = true
	return nil
}

func (m *mockWatcher) Events() <-chan Event { return m.events }
func (m *mockWatcher) Errors() <-chan error { return m.errors }

func (m *mockWatcher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.events)
		close(m.errors)
	}
	return nil
}

func (m *mockWatcher) isWatching(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.watching[path]
}

func TestOp(t *testing.T) {
	tests := []struct {
		op      Op
		str     string
		changed bool
	}{
		{OpCreate, "CREATE", true},
		{OpWrite, "WRITE", true},
		{OpRemove, "REMOVE", false},
		{OpRename, "RENAME", true},
		{OpChmod, "CHMOD", false},
		{OpWrite | OpChmod, "UNKNOWN", true},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.str {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.str)
		}
		if got := tt.op.Changed(); got != tt.changed {
			t.Errorf("Op(%d).Changed() = %v, want %v", tt.op, got, tt.changed)
		}
	}
	if !(OpCreate | OpWrite).Has(OpWrite) {
		t.Error("Has(OpWrite) = false for CREATE|WRITE")
	}
}

func TestConvertOp(t *testing.T) {
	tests := []struct {
		in   fsnotify.Op
		want Op
	}{
		{fsnotify.Create, OpCreate},
		{fsnotify.Write, OpWrite},
		{fsnotify.Remove, OpRemove},
		{fsnotify.Rename, OpRename},
		{fsnotify.Chmod, OpChmod},
		{fsnotify.Create | fsnotify.Write, OpCreate | OpWrite},
		{0, 0},
	}
	for _, tt := range tests {
		if got := convertOp(tt.in); got != tt.want {
			t.Errorf("convertOp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewDebouncedWatcher_DefaultDelay(t *testing.T) {
	dw := NewDebouncedWatcher(newMockWatcher(), 0)
	defer dw.Close()

	if dw.delay != DefaultDelay {
		t.Errorf("delay = %v, want %v", dw.delay, DefaultDelay)
	}
}

func TestDebouncedWatcher_PassThrough(t *testing.T) {
	mock := newMockWatcher()
	dw := NewDebouncedWatcher(mock, 50*time.Millisecond)
	defer dw.Close()

	if err := dw.Watch("/test"); err != nil {
		t.Errorf("Watch error = %v", err)
	}
	if !mock.isWatching("/test") {
		t.Error("mock should be watching /test")
	}
}

func TestDebouncedWatcher_EventCoalescing(t *testing.T) {
	mock := newMockWatcher()
	dw := NewDebouncedWatcher(mock, 100*time.Millisecond)
	defer dw.Close()

	path := "/test/formula.mml"
	now := time.Now()

	mock.events <- Event{Path: path, Op: OpCreate, Timestamp: now}
	time.Sleep(20 * time.Millisecond)
	mock.events <- Event{Path: path, Op: OpWrite, Timestamp: now.Add(20 * time.Millisecond)}
	time.Sleep(20 * time.Millisecond)
	mock.events <- Event{Path: path, Op: OpWrite, Timestamp: now.Add(40 * time.Millisecond)}

	select {
	case received := <-dw.Events():
		if received.Op != OpCreate|OpWrite {
			t.Errorf("coalesced Op = %v, want CREATE|WRITE", received.Op)
		}
		if !received.Timestamp.Equal(now.Add(40 * time.Millisecond)) {
			t.Errorf("coalesced Timestamp = %v, want the last event's", received.Timestamp)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for coalesced event")
	}

	select {
	case extra := <-dw.Events():
		t.Errorf("received unexpected extra event: %+v", extra)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestDebouncedWatcher_DifferentPaths(t *testing.T) {
	mock := newMockWatcher()
	dw := NewDebouncedWatcher(mock, 30*time.Millisecond)
	defer dw.Close()

	mock.events <- Event{Path: "/a", Op: OpWrite}
	mock.events <- Event{Path: "/b", Op: OpWrite}

	seen := make(map[string]bool)
	for len(seen) < 2 {
		select {
		case e := <-dw.Events():
			seen[e.Path] = true
		case <-time.After(500 * time.Millisecond):
			t.Fatalf("timeout; saw %v", seen)
		}
	}
}

func TestDebouncedWatcher_ErrorForwarding(t *testing.T) {
	mock := newMockWatcher()
	dw := NewDebouncedWatcher(mock, 30*time.Millisecond)
	defer dw.Close()

	boom := errors.New("boom")
	mock.errors <- boom

	select {
	case err := <-dw.Errors():
		if !errors.Is(err, boom) {
			t.Errorf("forwarded error = %v", err)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for error")
	}
}

func TestDebouncedWatcher_Close(t *testing.T) {
	mock := newMockWatcher()
	dw := NewDebouncedWatcher(mock, time.Hour)

	mock.events <- Event{Path: "/a", Op: OpWrite}
	if err := dw.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := dw.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if _, ok := <-dw.Events(); ok {
		t.Error("Events() should be closed")
	}
	if !mock.closed {
		t.Error("inner watcher not closed")
	}
}

func TestFSNotifyWatcher_Watch(t *testing.T) {
	w, err := NewFSNotifyWatcher()
	if err != nil {
		t.Fatalf("NewFSNotifyWatcher error = %v", err)
	}
	defer w.Close()

	dir := t.TempDir()
	if err := w.Watch(dir); err != nil {
		t.Fatalf("Watch error = %v", err)
	}
	if err := w.Watch(dir); !errors.Is(err, ErrAlreadyWatching) {
		t.Errorf("Watch again error = %v, want ErrAlreadyWatching", err)
	}
	if err := w.Watch(dir + string(filepath.Separator) + "."); !errors.Is(err, ErrAlreadyWatching) {
		t.Errorf("Watch of the same directory by another name error = %v, want ErrAlreadyWatching", err)
	}
	if err := w.Watch(filepath.Join(dir, "missing")); !errors.Is(err, ErrPathNotExist) {
		t.Errorf("Watch missing error = %v, want ErrPathNotExist", err)
	}
}

func TestFSNotifyWatcher_Closed(t *testing.T) {
	w, err := NewFSNotifyWatcher()
	if err != nil {
		t.Fatalf("NewFSNotifyWatcher error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Watch(t.TempDir()); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("Watch after Close error = %v, want ErrWatcherClosed", err)
	}
}

func TestWatchFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "formula.mml")
	other := filepath.Join(dir, "other.mml")
	if err := os.WriteFile(target, []byte("<mi>x</mi>"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchFile(target, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("WatchFile() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(other, []byte("<mi>y</mi>"), 0o644); err != nil {
		t.Fatal(err)
	}
	for i := range 3 {
		body := []byte("<mn>" + string(rune('0'+i)) + "</mn>")
		if err := os.WriteFile(target, body, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case e := <-w.Events():
		if filepath.Base(e.Path) != "formula.mml" {
			t.Errorf("event for %q, want formula.mml", e.Path)
		}
		if !e.Op.Changed() {
			t.Errorf("event Op = %v", e.Op)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for change event")
	}

	select {
	case e := <-w.Events():
		t.Errorf("unexpected extra event: %+v", e)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchFile_MissingDirectory(t *testing.T) {
	_, err := WatchFile(filepath.Join(t.TempDir(), "nope", "f.mml"), 0)
	if !errors.Is(err, ErrPathNotExist) {
		t.Errorf("WatchFile() error = %v, want ErrPathNotExist", err)
	}
}
