// Package typeset lays out a MathML expression tree on a character grid.
//
// The Engine walks the tree once, bottom-up: every node becomes a fresh
// grid.Grid built from its children's grids, and nothing flows back down.
// Layout prefers single-row renderings that use Unicode superscript and
// subscript characters and falls back to two-dimensional placement when a
// script cannot be expressed that way.
//
// The only error the engine raises is ErrInvalidStructure, for constructs
// with the wrong number of children. Unknown elements are laid out as rows.
package typeset

import (
	"github.com/dshills/termmath/internal/grid"
	"github.com/dshills/termmath/internal/mathml"
)

// Options configures layout.
type Options struct {
	// UnicodeScripts enables single-row rendering of scripts with Unicode
	// superscript and subscript characters. When false every script is
	// placed in two dimensions.
	UnicodeScripts bool
}

// DefaultOptions returns the default layout options.
func DefaultOptions() Options {
	return Options{UnicodeScripts: true}
}

// Engine converts expression trees into grids.
// An Engine holds no per-call state and is safe for concurrent use.
type Engine struct {
	opts Options
}

// New creates an engine with the given options.
func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Process lays out the tree rooted at n.
func (e *Engine) Process(n *mathml.Node) (*grid.Grid, error) {
	if n == nil {
		return grid.Empty(), nil
	}
	return e.process(n)
}

func (e *Engine) process(n *mathml.Node) (*grid.Grid, error) {
	switch n.Kind() {
	case mathml.KindRow, mathml.KindStyle, mathml.KindPadded, mathml.KindPhantom,
		mathml.KindEnclose, mathml.KindTableCell:
		return e.row(n, true)
	case mathml.KindIdentifier, mathml.KindNumber, mathml.KindText:
		return e.text(n), nil
	case mathml.KindOperator:
		return grid.FromText(operatorText(n.Text)), nil
	case mathml.KindSup:
		return e.superscript(n)
	case mathml.KindSub:
		return e.subscript(n)
	case mathml.KindSubSup:
		return e.subsup(n)
	case mathml.KindFrac:
		return e.fraction(n)
	case mathml.KindSqrt:
		return e.sqrt(n)
	case mathml.KindRoot:
		return e.root(n)
	case mathml.KindOver:
		return e.over(n)
	case mathml.KindUnder:
		return e.under(n)
	case mathml.KindUnderOver:
		return e.underover(n)
	case mathml.KindTable:
		return e.table(n)
	case mathml.KindTableRow:
		return e.tableRow(n)
	case mathml.KindFenced:
		return e.fenced(n)
	case mathml.KindSpace:
		return grid.FromText(" "), nil
	case mathml.KindSemantics:
		return e.semantics(n)
	case mathml.KindAnnotation:
		return grid.Empty(), nil
	default:
		return e.row(n, true)
	}
}

// semantics renders the presentation branch and skips annotations.
func (e *Engine) semantics(n *mathml.Node) (*grid.Grid, error) {
	for _, c := range n.Children {
		if c.Kind() != mathml.KindAnnotation {
			return e.process(c)
		}
	}
	return grid.Empty(), nil
}

// script lays out a script or limit operand. Groups are laid out
// compactly so their characters stay adjacent.
func (e *Engine) script(n *mathml.Node) (*grid.Grid, error) {
	if n.Kind() == mathml.KindRow {
		return e.row(n, false)
	}
	return e.process(n)
}
