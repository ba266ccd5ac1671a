package typeset

import (
	"github.com/dshills/termmath/internal/grid"
	"github.com/dshills/termmath/internal/mathml"
	"github.com/dshills/termmath/internal/symbols"
)

const columnGap = 2

// table lays out mtr/mtd children on a grid of columns: each column as
// wide as its widest cell, each row as tall as its tallest cell, cells
// centred horizontally and top-aligned.
func (e *Engine) table(n *mathml.Node) (*grid.Grid, error) {
	var rows [][]*grid.Grid
	for _, r := range n.Children {
		if r.Kind() != mathml.KindTableRow {
			continue
		}
		var cells []*grid.Grid
		for _, c := range r.Children {
			if c.Kind() != mathml.KindTableCell {
				continue
			}
			g, err := e.row(c, true)
			if err != nil {
				return nil, err
			}
			cells = append(cells, g)
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return grid.Empty(), nil
	}

	cols := 0
	for _, cells := range rows {
		cols = max(cols, len(cells))
	}
	colWidths := make([]int, cols)
	rowHeights := make([]int, len(rows))
	for i, cells := range rows {
		for j, c := range cells {
			colWidths[j] = max(colWidths[j], c.Width())
			rowHeights[i] = max(rowHeights[i], c.Height())
		}
	}

	width := columnGap * max(0, cols-1)
	for _, w := range colWidths {
		width += w
	}
	height := 0
	for _, h := range rowHeights {
		height += h
	}

	// Rows without cells leave nothing to draw.
	if height == 0 {
		return grid.Empty(), nil
	}

	g := grid.MustNew(width, height, height/2)
	y := 0
	for i, cells := range rows {
		x := 0
		for j, c := range cells {
			g.CopyInto(c, x+grid.CenterOffset(colWidths[j], c.Width()), y)
			x += colWidths[j] + columnGap
		}
		y += rowHeights[i]
	}
	return g, nil
}

// tableRow joins the cells of a row met outside a table.
func (e *Engine) tableRow(n *mathml.Node) (*grid.Grid, error) {
	parts := make([]*grid.Grid, 0, 2*len(n.Children))
	for i, c := range n.Children {
		g, err := e.row(c, true)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			parts = append(parts, grid.FromText("  "))
		}
		parts = append(parts, g)
	}
	return grid.ConcatHorizontal(parts...), nil
}

// fenced wraps its children in delimiters. Multi-row content gets
// brackets drawn from scaled glyph sets, one glyph per row.
func (e *Engine) fenced(n *mathml.Node) (*grid.Grid, error) {
	open := n.AttrOr("open", "(")
	closing := n.AttrOr("close", ")")

	inner, err := e.row(n, true)
	if err != nil {
		return nil, err
	}
	if inner.Height() <= 1 {
		return grid.FromText(open + inner.String() + closing), nil
	}

	left, right := 0, 0
	if open != "" {
		left = 1
	}
	if closing != "" {
		right = 1
	}

	width := left + inner.Width() + right
	g := grid.MustNew(width, inner.Height(), inner.Baseline())
	if left > 0 {
		for y, glyph := range symbols.LeftBracket(open, inner.Height()) {
			g.Set(0, y, glyph)
		}
	}
	if right > 0 {
		for y, glyph := range symbols.RightBracket(closing, inner.Height()) {
			g.Set(width-1, y, glyph)
		}
	}
	g.CopyInto(inner, left, 0)
	return g, nil
}
