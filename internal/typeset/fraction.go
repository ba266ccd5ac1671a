package typeset

import (
	"strings"

	"github.com/dshills/termmath/internal/grid"
	"github.com/dshills/termmath/internal/mathml"
	"github.com/dshills/termmath/internal/symbols"
)

const (
	fractionBar  = "─"
	rootGlyph    = "√"
	sqrtOverline = "_"
	rootOverline = "─"
)

// fraction centres the numerator over the denominator, separated by a bar
// on the baseline row. A zero line thickness (as used for binomials)
// leaves the separator row blank.
func (e *Engine) fraction(n *mathml.Node) (*grid.Grid, error) {
	if err := arity(n, 2); err != nil {
		return nil, err
	}
	num, err := e.process(n.Children[0])
	if err != nil {
		return nil, err
	}
	den, err := e.process(n.Children[1])
	if err != nil {
		return nil, err
	}

	width := max(num.Width(), den.Width())
	g := grid.MustNew(width, num.Height()+1+den.Height(), num.Height())
	g.CopyInto(num, grid.CenterOffset(width, num.Width()), 0)
	if !zeroThickness(n.AttrOr("linethickness", "")) {
		g.FillRow(num.Height(), fractionBar)
	}
	g.CopyInto(den, grid.CenterOffset(width, den.Width()), num.Height()+1)
	return g, nil
}

func zeroThickness(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	v = strings.TrimRight(v, "abcdefghijklmnopqrstuvwxyz%")
	return strings.Trim(v, "0.") == "" && v != ""
}

// sqrt draws a radical over the children of n, laid out as a row.
//
//	 ___
//	√x+1
func (e *Engine) sqrt(n *mathml.Node) (*grid.Grid, error) {
	inner, err := e.row(n, true)
	if err != nil {
		return nil, err
	}

	if inner.Height() == 1 {
		inner = grid.FromText(inner.String())
		g := grid.MustNew(1+inner.Width(), 2, 1)
		overline(g, 1, g.Width(), 0, sqrtOverline)
		g.Set(0, 1, rootGlyph)
		g.CopyInto(inner, 1, 1)
		return g, nil
	}

	g := grid.MustNew(1+inner.Width(), 1+inner.Height(), 1+inner.Baseline())
	overline(g, 1, g.Width(), 0, sqrtOverline)
	g.Set(0, 1, rootGlyph)
	g.CopyInto(inner, 1, 1)
	return g, nil
}

// root draws an n-th root. A single-row index that converts to
// superscript characters is written inline before the radical.
func (e *Engine) root(n *mathml.Node) (*grid.Grid, error) {
	if err := arity(n, 2); err != nil {
		return nil, err
	}
	inner, err := e.process(n.Children[0])
	if err != nil {
		return nil, err
	}
	index, err := e.script(n.Children[1])
	if err != nil {
		return nil, err
	}

	if inner.Height() == 1 {
		if idx, ok := e.inlineScript(index, symbols.Superscript); ok {
			return grid.FromText(idx + rootGlyph + inner.String()), nil
		}
	}

	// Index top-left, radical on the bottom row after it, bar over the
	// operand which starts one row down and one column past the radical.
	width := index.Width() + 1 + inner.Width()
	height := max(inner.Height()+1, index.Height())
	g := grid.MustNew(width, height, inner.Baseline()+1)
	g.CopyInto(index, 0, 0)
	g.Set(index.Width(), height-1, rootGlyph)
	overline(g, index.Width()+1, width, 0, rootOverline)
	g.CopyInto(inner, index.Width()+1, 1)
	return g, nil
}

// overline writes glyph on row y for columns [from, to).
func overline(g *grid.Grid, from, to, y int, glyph string) {
	for x := from; x < to; x++ {
		g.Set(x, y, glyph)
	}
}
