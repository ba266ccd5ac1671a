package typeset

import (
	"strings"

	"github.com/dshills/termmath/internal/grid"
	"github.com/dshills/termmath/internal/mathml"
	"github.com/dshills/termmath/internal/symbols"
)

func space() *grid.Grid {
	return grid.FromText(" ")
}

// row joins the children of n horizontally. With spacing enabled, a blank
// column separates neighbours when either spans several rows, and binary
// operators and relations get a blank on each side. The blank before an
// operator is dropped when a multi-row separator is already there.
func (e *Engine) row(n *mathml.Node, spacing bool) (*grid.Grid, error) {
	if len(n.Children) == 0 {
		if n.Text != "" {
			return grid.FromText(n.Text), nil
		}
		return grid.Empty(), nil
	}

	parts := make([]*grid.Grid, 0, 2*len(n.Children))
	prevMulti := false
	for i, child := range n.Children {
		g, err := e.process(child)
		if err != nil {
			return nil, err
		}
		multi := g.Height() > 1

		if spacing && i > 0 && (prevMulti || multi) {
			parts = append(parts, space())
		}

		if spacing && child.Kind() == mathml.KindOperator && spacedOperator(operatorText(child.Text), i == 0) {
			if !prevMulti && !multi {
				parts = append(parts, space())
			}
			parts = append(parts, g, space())
		} else {
			parts = append(parts, g)
		}
		prevMulti = multi
	}

	return grid.ConcatHorizontal(parts...), nil
}

// spacedOperator reports whether op is padded inside a row. Additive
// operators in leading position are signs and stay tight.
func spacedOperator(op string, first bool) bool {
	if symbols.IsRelation(op) {
		return true
	}
	return !first && symbols.IsBinaryOperator(op)
}

// text renders an identifier, number or text leaf. Identifiers spelled as
// a Greek letter name become the letter.
func (e *Engine) text(n *mathml.Node) *grid.Grid {
	if g, ok := symbols.Greek(n.Text); ok {
		return grid.FromText(g)
	}
	return grid.FromText(n.Text)
}

// operatorText resolves an operator's glyph. Big operators are kept as is;
// `\name` commands resolve through the symbol table, then the Greek table.
func operatorText(s string) string {
	if symbols.IsBigOperator(s) {
		return s
	}
	if name, ok := strings.CutPrefix(s, `\`); ok {
		if sym, ok := symbols.Symbol(name); ok {
			return sym
		}
		if g, ok := symbols.Greek(name); ok {
			return g
		}
	}
	return s
}
