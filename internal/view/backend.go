package view

import "sync"

// Backend is the display surface a Viewer paints on.
type Backend interface {
	// Init initializes the backend. Must be called before other methods.
	Init() error

	// Shutdown restores the terminal to its original state.
	Shutdown()

	// Size returns the current size in columns and rows.
	Size() (width, height int)

	// SetCell sets the cell at (x, y). Out of range positions are ignored.
	SetCell(x, y int, cell Cell)

	// GetCell returns the cell at (x, y).
	GetCell(x, y int) Cell

	// Clear blanks the whole screen.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// PollEvent blocks until the next event.
	PollEvent() Event

	// PostEvent queues an event for PollEvent.
	PostEvent(event Event)
}

// EventType identifies the type of terminal event.
type EventType int

// Event types.
const (
	EventNone EventType = iota
	EventKey
	EventResize
	// EventInterrupt wakes the event loop, for example after new widgets
	// are installed or the context is cancelled.
	EventInterrupt
)

// Event is a terminal event.
type Event struct {
	Type EventType

	// Key events
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize events
	Width  int
	Height int
}

// Key identifies a special key.
type Key int

// Keys the viewer reacts to. Everything else arrives as KeyRune or
// KeyOther.
const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyCtrlC
	KeyOther
)

// ModMask is a set of modifier keys.
type ModMask int

// Modifier flags.
const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
)

// IsQuit reports whether the event asks the viewer to exit.
func (e Event) IsQuit() bool {
	if e.Type != EventKey {
		return false
	}
	switch e.Key {
	case KeyEscape, KeyCtrlC:
		return true
	case KeyRune:
		return e.Rune == 'q' || e.Rune == 'Q'
	}
	return false
}

// NullBackend is an in-memory backend for testing.
type NullBackend struct {
	mu            sync.Mutex
	width, height int
	cells         [][]Cell
	shows         int
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
}

func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cells = makeCells(b.width, b.height)
	return nil
}

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if x >= 0 && x < b.width && y >= 0 && y < len(b.cells) {
		b.cells[y][x] = cell
	}
}

func (b *NullBackend) GetCell(x, y int) Cell {
	b.mu.Lock()
	defer b.mu.Unlock()

	if x >= 0 && x < b.width && y >= 0 && y < len(b.cells) {
		return b.cells[y][x]
	}
	return EmptyCell()
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = EmptyCell()
		}
	}
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.shows++
}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

// Resize changes the screen size, discarding its contents, and posts a
// resize event.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	b.width, b.height = width, height
	b.cells = makeCells(width, height)
	b.mu.Unlock()

	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}

// Shows returns how many times Show has been called.
func (b *NullBackend) Shows() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.shows
}

// Lines returns the screen contents, one string per row.
func (b *NullBackend) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	lines := make([]string, len(b.cells))
	for y, row := range b.cells {
		var s []byte
		for _, c := range row {
			s = append(s, c.Text...)
		}
		lines[y] = string(s)
	}
	return lines
}

func makeCells(width, height int) [][]Cell {
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
		for j := range cells[i] {
			cells[i][j] = EmptyCell()
		}
	}
	return cells
}
