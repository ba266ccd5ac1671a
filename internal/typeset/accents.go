package typeset

import (
	"strings"

	"github.com/dshills/termmath/internal/grid"
	"github.com/dshills/termmath/internal/mathml"
	"github.com/dshills/termmath/internal/symbols"
)

// over places an accent or limit above its base. Known accent marks on a
// single-row base become a combining character instead.
func (e *Engine) over(n *mathml.Node) (*grid.Grid, error) {
	if err := arity(n, 2); err != nil {
		return nil, err
	}
	base, err := e.process(n.Children[0])
	if err != nil {
		return nil, err
	}
	accent, err := e.script(n.Children[1])
	if err != nil {
		return nil, err
	}

	if base.Height() == 1 && accent.Height() == 1 {
		if mark, ok := symbols.CombiningAccent(strings.TrimSpace(accent.String())); ok {
			return grid.FromText(base.String() + mark), nil
		}
	}
	return grid.StackVertical(accent, base), nil
}

// under hangs a script below its base without moving the base's baseline.
// Limit-style names (lim, max, ...) keep their script inline.
func (e *Engine) under(n *mathml.Node) (*grid.Grid, error) {
	if err := arity(n, 2); err != nil {
		return nil, err
	}
	name := n.Children[0].Text
	base, err := e.process(n.Children[0])
	if err != nil {
		return nil, err
	}
	under, err := e.script(n.Children[1])
	if err != nil {
		return nil, err
	}

	if symbols.IsLimitName(name) && under.Height() == 1 {
		if sub, ok := e.inlineScript(under, symbols.Subscript); ok {
			return grid.FromText(name + sub), nil
		}
		return grid.FromText(name + "(" + strings.TrimSpace(under.String()) + ")"), nil
	}

	width := max(base.Width(), under.Width())
	g := grid.MustNew(width, base.Height()+under.Height(), base.Baseline())
	g.CopyInto(base, grid.CenterOffset(width, base.Width()), 0)
	g.CopyInto(under, grid.CenterOffset(width, under.Width()), base.Height())
	return g, nil
}

// underover stacks both limits around the base.
func (e *Engine) underover(n *mathml.Node) (*grid.Grid, error) {
	if err := arity(n, 3); err != nil {
		return nil, err
	}
	base, err := e.process(n.Children[0])
	if err != nil {
		return nil, err
	}
	under, err := e.script(n.Children[1])
	if err != nil {
		return nil, err
	}
	over, err := e.script(n.Children[2])
	if err != nil {
		return nil, err
	}
	return grid.StackVertical(over, base, under), nil
}
