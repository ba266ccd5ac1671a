// Package grid provides the baseline-aware character grid used to lay out
// mathematical expressions on a monospace display.
//
// A Grid is a rectangle of cells, each holding one grapheme cluster, with a
// designated baseline row that aligns with the surrounding line of text.
// Horizontal composition aligns grids by baseline; vertical composition
// centres them in a column.
//
//	 2        ← ascent
//	x  + 1    ← baseline
//	─────
//	  y       ← descent
//
// Grids are values in spirit: composition copies children in, so a grid is
// never shared between two parents.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by grid construction.
var (
	// ErrInvalidBaseline indicates the baseline lies outside the grid rows.
	ErrInvalidBaseline = errors.New("baseline out of range")

	// ErrInvalidSize indicates a negative width or height.
	ErrInvalidSize = errors.New("invalid grid size")
)

// Grid is a rectangular buffer of display cells with a baseline row.
type Grid struct {
	cells    [][]Cell
	width    int
	height   int
	baseline int
}

// New creates a blank grid of the given size.
// The baseline must satisfy 0 <= baseline < height when height > 0,
// and must be 0 for a zero-height grid.
func New(width, height, baseline int) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if baseline < 0 || (height > 0 && baseline >= height) || (height == 0 && baseline != 0) {
		return nil, fmt.Errorf("%w: baseline %d, height %d", ErrInvalidBaseline, baseline, height)
	}

	g := &Grid{
		cells:    make([][]Cell, height),
		width:    width,
		height:   height,
		baseline: baseline,
	}
	for y := range g.cells {
		row := make([]Cell, width)
		for x := range row {
			row[x] = BlankCell()
		}
		g.cells[y] = row
	}
	return g, nil
}

// MustNew is like New but panics if the dimensions are invalid.
// Layout code uses it where the baseline is valid by construction.
func MustNew(width, height, baseline int) *Grid {
	g, err := New(width, height, baseline)
	if err != nil {
		panic(err)
	}
	return g
}

// Empty returns the 0x1 grid with baseline 0 that stands in for no content.
func Empty() *Grid {
	return MustNew(0, 1, 0)
}

// FromText creates a single-row grid from s.
func FromText(s string) *Grid {
	cells := CellsFromString(s)
	return &Grid{
		cells:  [][]Cell{cells},
		width:  len(cells),
		height: 1,
	}
}

// FromLines creates a grid with one row per line. The width is that of the
// widest line; shorter lines are padded with blanks.
func FromLines(lines []string, baseline int) (*Grid, error) {
	rows := make([][]Cell, len(lines))
	width := 0
	for i, line := range lines {
		rows[i] = CellsFromString(line)
		width = max(width, len(rows[i]))
	}

	g, err := New(width, len(lines), baseline)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		copy(g.cells[y], row)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Baseline returns the baseline row index (0 = top).
func (g *Grid) Baseline() int { return g.baseline }

// Ascent returns the number of rows above the baseline.
func (g *Grid) Ascent() int { return g.baseline }

// Descent returns the number of rows below the baseline.
func (g *Grid) Descent() int {
	return max(0, g.height-g.baseline-1)
}

// Cell returns the cell at (x, y), or a blank cell when out of range.
func (g *Grid) Cell(x, y int) Cell {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return BlankCell()
	}
	return g.cells[y][x]
}

// Get returns the grapheme cluster at (x, y).
// Out-of-range reads return a blank.
func (g *Grid) Get(x, y int) string {
	c := g.Cell(x, y)
	if c.IsContinuation() {
		return blank
	}
	return c.Text
}

// Set writes a grapheme cluster at (x, y).
// Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, cluster string) {
	c := NewCell(cluster)
	g.put(x, y, c)
	if c.Width == 2 {
		g.put(x+1, y, ContinuationCell())
	}
}

// put stores a cell, keeping wide glyphs and their continuation
// cells paired.
func (g *Grid) put(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	row := g.cells[y]
	old := row[x]
	if old.IsContinuation() && !c.IsContinuation() && x > 0 && row[x-1].Width == 2 {
		row[x-1] = BlankCell()
	}
	if old.Width == 2 && x+1 < g.width && row[x+1].IsContinuation() {
		row[x+1] = BlankCell()
	}
	row[x] = c
}

// CopyInto copies src into g with its top-left corner at (xOffset, yOffset).
// Blank cells of src leave the existing content of g untouched, so accents
// and scripts can be overlaid. Parts of src outside g are clipped.
func (g *Grid) CopyInto(src *Grid, xOffset, yOffset int) {
	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			c := src.cells[y][x]
			if c.IsBlank() {
				continue
			}
			g.put(xOffset+x, yOffset+y, c)
		}
	}
}

// FillRow overwrites row y with cluster.
func (g *Grid) FillRow(y int, cluster string) {
	if y < 0 || y >= g.height {
		return
	}
	for x := 0; x < g.width; x++ {
		g.Set(x, y, cluster)
	}
}

// FillCol overwrites column x with cluster.
func (g *Grid) FillCol(x int, cluster string) {
	if x < 0 || x >= g.width {
		return
	}
	for y := 0; y < g.height; y++ {
		g.Set(x, y, cluster)
	}
}

// Lines returns every row at full width, trailing blanks included.
func (g *Grid) Lines() []string {
	lines := make([]string, g.height)
	for y, row := range g.cells {
		lines[y] = StringFromCells(row)
	}
	return lines
}

// String returns the rows joined by newlines with trailing blanks
// trimmed from each row.
func (g *Grid) String() string {
	lines := g.Lines()
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, blank)
	}
	return strings.Join(lines, "\n")
}
