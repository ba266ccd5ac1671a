package typeset

import (
	"strings"

	"github.com/dshills/termmath/internal/grid"
	"github.com/dshills/termmath/internal/mathml"
	"github.com/dshills/termmath/internal/symbols"
)

// inlineScript converts a single-row script to Unicode script characters.
func (e *Engine) inlineScript(g *grid.Grid, convert func(string) (string, bool)) (string, bool) {
	if !e.opts.UnicodeScripts || g.Height() != 1 {
		return "", false
	}
	return convert(strings.TrimSpace(g.String()))
}

func (e *Engine) superscript(n *mathml.Node) (*grid.Grid, error) {
	if err := arity(n, 2); err != nil {
		return nil, err
	}
	base, err := e.process(n.Children[0])
	if err != nil {
		return nil, err
	}
	sup, err := e.script(n.Children[1])
	if err != nil {
		return nil, err
	}

	if base.Height() == 1 {
		if s, ok := e.inlineScript(sup, symbols.Superscript); ok {
			return grid.FromText(base.String() + s), nil
		}
	}

	// One row above the base; a taller exponent is clipped to it.
	g := grid.MustNew(base.Width()+sup.Width(), base.Height()+1, base.Baseline()+1)
	g.CopyInto(base, 0, 1)
	g.CopyInto(sup, base.Width(), 0)
	return g, nil
}

func (e *Engine) subscript(n *mathml.Node) (*grid.Grid, error) {
	if err := arity(n, 2); err != nil {
		return nil, err
	}
	base, err := e.process(n.Children[0])
	if err != nil {
		return nil, err
	}
	sub, err := e.script(n.Children[1])
	if err != nil {
		return nil, err
	}

	if base.Height() == 1 {
		if s, ok := e.inlineScript(sub, symbols.Subscript); ok {
			return grid.FromText(base.String() + s), nil
		}
	}

	g := grid.MustNew(base.Width()+sub.Width(), base.Height()+1, base.Baseline())
	g.CopyInto(base, 0, 0)
	g.CopyInto(sub, base.Width(), base.Height())
	return g, nil
}

func (e *Engine) subsup(n *mathml.Node) (*grid.Grid, error) {
	if err := arity(n, 3); err != nil {
		return nil, err
	}
	base, err := e.process(n.Children[0])
	if err != nil {
		return nil, err
	}
	sub, err := e.script(n.Children[1])
	if err != nil {
		return nil, err
	}
	sup, err := e.script(n.Children[2])
	if err != nil {
		return nil, err
	}

	// Big operators carry their limits above and below.
	if symbols.IsBigOperator(operatorText(n.Children[0].Text)) {
		return grid.StackVertical(sup, base, sub), nil
	}

	if base.Height() == 1 {
		subText, subOK := e.inlineScript(sub, symbols.Subscript)
		supText, supOK := e.inlineScript(sup, symbols.Superscript)
		if subOK && supOK {
			return grid.FromText(base.String() + subText + supText), nil
		}
	}

	width := base.Width() + max(sub.Width(), sup.Width())
	g := grid.MustNew(width, base.Height()+2, base.Baseline()+1)
	g.CopyInto(sup, base.Width(), 0)
	g.CopyInto(base, 0, 1)
	g.CopyInto(sub, base.Width(), base.Height()+1)
	return g, nil
}
