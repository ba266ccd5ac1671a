package view

import (
	"github.com/dshills/termmath/internal/grid"
	"github.com/dshills/termmath/internal/render"
)

// Rect is a screen rectangle.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, Width: r.Width - 2*n, Height: r.Height - 2*n}
}

// Box drawing characters.
const (
	boxHorizontal  = "─"
	boxVertical    = "│"
	boxTopLeft     = "┌"
	boxTopRight    = "┐"
	boxBottomLeft  = "└"
	boxBottomRight = "┘"
)

// Widget displays one rendered formula, or the error text of a failed
// render.
type Widget struct {
	Title  string
	Border bool
	Theme  Theme

	content *grid.Grid
	failed  bool
}

// NewWidget creates a widget for the result of a render. A non-nil err
// replaces the formula with its error text.
func NewWidget(title string, g *grid.Grid, err error) *Widget {
	w := &Widget{Title: title, Border: true}
	w.SetContent(g, err)
	return w
}

// SetContent replaces the displayed formula.
func (w *Widget) SetContent(g *grid.Grid, err error) {
	switch {
	case err != nil:
		w.content = grid.FromText(render.ErrorText(err))
		w.failed = true
	case g == nil:
		w.content = grid.Empty()
		w.failed = false
	default:
		w.content = g
		w.failed = false
	}
}

// Content returns the grid being displayed.
func (w *Widget) Content() *grid.Grid {
	return w.content
}

// Failed returns true if the widget shows an error.
func (w *Widget) Failed() bool {
	return w.failed
}

// Size returns the preferred size including the border.
func (w *Widget) Size() (width, height int) {
	width, height = w.content.Width(), w.content.Height()
	if w.Border {
		width += 2
		height += 2
		if tw := grid.DisplayWidth(w.Title) + 4; w.Title != "" && tw > width {
			width = tw
		}
	}
	return width, height
}

// Draw paints the widget into r, clipping at its edges.
func (w *Widget) Draw(b Backend, r Rect) {
	if r.Empty() {
		return
	}
	inner := r
	if w.Border {
		w.drawBorder(b, r)
		inner = r.Inset(1)
	}
	if inner.Empty() {
		return
	}

	style := w.Theme.Text
	if w.failed {
		style = w.Theme.Error
	}
	fillRect(b, inner, style)
	off := grid.CenterOffset(inner.Width, w.content.Width())
	drawGrid(b, Rect{X: inner.X + off, Y: inner.Y, Width: inner.Width - off, Height: inner.Height}, w.content, style)
}

func (w *Widget) drawBorder(b Backend, r Rect) {
	s := w.Theme.Border
	right, bottom := r.X+r.Width-1, r.Y+r.Height-1

	for x := r.X + 1; x < right; x++ {
		b.SetCell(x, r.Y, Cell{Text: boxHorizontal, Width: 1, Style: s})
		if bottom > r.Y {
			b.SetCell(x, bottom, Cell{Text: boxHorizontal, Width: 1, Style: s})
		}
	}
	for y := r.Y + 1; y < bottom; y++ {
		b.SetCell(r.X, y, Cell{Text: boxVertical, Width: 1, Style: s})
		if right > r.X {
			b.SetCell(right, y, Cell{Text: boxVertical, Width: 1, Style: s})
		}
	}
	b.SetCell(r.X, r.Y, Cell{Text: boxTopLeft, Width: 1, Style: s})
	if right > r.X {
		b.SetCell(right, r.Y, Cell{Text: boxTopRight, Width: 1, Style: s})
	}
	if bottom > r.Y {
		b.SetCell(r.X, bottom, Cell{Text: boxBottomLeft, Width: 1, Style: s})
		if right > r.X {
			b.SetCell(right, bottom, Cell{Text: boxBottomRight, Width: 1, Style: s})
		}
	}

	if w.Title == "" || r.Width < 5 {
		return
	}
	title := grid.FromText(" " + w.Title + " ")
	drawGrid(b, Rect{X: r.X + 1, Y: r.Y, Width: r.Width - 2, Height: 1}, title, w.Theme.Title)
}

func fillRect(b Backend, r Rect, s Style) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			b.SetCell(x, y, Cell{Text: " ", Width: 1, Style: s})
		}
	}
}

// drawGrid copies g to the top left of r. Wide glyphs that would straddle
// the right edge are dropped.
func drawGrid(b Backend, r Rect, g *grid.Grid, s Style) {
	for y := 0; y < g.Height() && y < r.Height; y++ {
		for x := 0; x < g.Width() && x < r.Width; x++ {
			c := g.Cell(x, y)
			if x+c.Width > r.Width {
				break
			}
			b.SetCell(r.X+x, r.Y+y, CellFromGrid(c, s))
		}
	}
}
