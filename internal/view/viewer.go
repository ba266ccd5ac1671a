// Package view presents rendered formulas in a full-screen terminal view.
//
// A Viewer owns a Backend (tcell in production, NullBackend in tests) and
// stacks Widgets top to bottom, one per formula. The view is display only:
// it repaints on resize and exits on q, Esc or Ctrl-C.
package view

import (
	"context"
	"sync"

	"github.com/dshills/termmath/internal/logging"
)

// widgetGap is the number of blank rows between widgets.
const widgetGap = 1

// Viewer displays a gallery of widgets.
type Viewer struct {
	backend Backend
	logger  *logging.Logger

	mu      sync.Mutex
	widgets []*Widget
	theme   Theme
}

// ViewerOption configures a Viewer.
type ViewerOption func(*Viewer)

// WithTheme sets the theme applied to every widget.
func WithTheme(t Theme) ViewerOption {
	return func(v *Viewer) {
		v.theme = t
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) ViewerOption {
	return func(v *Viewer) {
		v.logger = l
	}
}

// NewViewer creates a viewer painting on b.
func NewViewer(b Backend, opts ...ViewerOption) *Viewer {
	v := &Viewer{backend: b, logger: logging.Null}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.WithComponent("view")
	return v
}

// SetWidgets replaces the displayed widgets and wakes the event loop so
// they are painted. Safe to call from any goroutine.
func (v *Viewer) SetWidgets(widgets ...*Widget) {
	v.mu.Lock()
	for _, w := range widgets {
		w.Theme = v.theme
	}
	v.widgets = widgets
	v.mu.Unlock()

	v.backend.PostEvent(Event{Type: EventInterrupt})
}

// Layout assigns each widget a rectangle within a screen of the given
// size. Widgets that do not fit get an empty rectangle.
func (v *Viewer) Layout(width, height int) []Rect {
	v.mu.Lock()
	defer v.mu.Unlock()

	return layout(v.widgets, width, height)
}

func layout(widgets []*Widget, width, height int) []Rect {
	rects := make([]Rect, len(widgets))
	y := 0
	for i, w := range widgets {
		ww, wh := w.Size()
		r := Rect{X: 0, Y: y, Width: min(ww, width), Height: min(wh, height-y)}
		if r.Empty() {
			r = Rect{}
		}
		rects[i] = r
		y += wh + widgetGap
	}
	return rects
}

// Draw repaints the whole screen.
func (v *Viewer) Draw() {
	v.mu.Lock()
	defer v.mu.Unlock()

	width, height := v.backend.Size()
	v.backend.Clear()
	for i, r := range layout(v.widgets, width, height) {
		v.widgets[i].Draw(v.backend, r)
	}
	v.backend.Show()
}

// Run initializes the backend and runs the event loop until the user
// quits or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	if err := v.backend.Init(); err != nil {
		return err
	}
	defer v.backend.Shutdown()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			v.backend.PostEvent(Event{Type: EventInterrupt})
		case <-done:
		}
	}()

	v.Draw()
	for {
		ev := v.backend.PollEvent()
		if ev.IsQuit() {
			v.logger.Debug("quit requested")
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		switch ev.Type {
		case EventResize:
			v.logger.Debug("resized to %dx%d", ev.Width, ev.Height)
			v.Draw()
		case EventInterrupt:
			v.Draw()
		}
	}
}
