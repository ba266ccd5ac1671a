// Package render wires the pipeline together: source text is converted or
// parsed into an expression tree, laid out by the typesetting engine and
// returned as a grid.
//
// Every failure is reported as an *Error whose Kind is one of three
// sentinels (ErrConversion, ErrParse, ErrInvalidStructure). Callers show
// ErrorText(err) in place of the formula.
package render

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/dshills/termmath/internal/convert"
	"github.com/dshills/termmath/internal/grid"
	"github.com/dshills/termmath/internal/logging"
	"github.com/dshills/termmath/internal/mathml"
	"github.com/dshills/termmath/internal/typeset"
)

// InputFormat names the serialized form of an expression tree.
type InputFormat string

// Input formats accepted by Render.
const (
	FormatAuto   InputFormat = "auto"
	FormatMathML InputFormat = "mathml"
	FormatJSON   InputFormat = "json"
)

// Renderer renders formulas. It is safe for concurrent use.
type Renderer struct {
	engine    *typeset.Engine
	converter convert.Converter
	logger    *logging.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithOptions sets the layout options.
func WithOptions(opts typeset.Options) Option {
	return func(r *Renderer) {
		r.engine = typeset.New(opts)
	}
}

// WithConverter sets the LaTeX converter.
func WithConverter(c convert.Converter) Option {
	return func(r *Renderer) {
		r.converter = c
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(r *Renderer) {
		r.logger = l
	}
}

// New creates a renderer. Without WithConverter, RenderLaTeX fails
// with ErrConversion.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		engine: typeset.New(typeset.DefaultOptions()),
		logger: logging.Null,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.WithComponent("render")
	return r
}

// ParseLaTeX converts LaTeX source to MathML and parses the result.
func (r *Renderer) ParseLaTeX(ctx context.Context, src string) (*mathml.Node, error) {
	if r.converter == nil {
		return nil, newError(ErrConversion, convert.ErrNoConverter)
	}

	start := time.Now()
	doc, err := r.converter.Convert(ctx, src)
	if err != nil {
		r.logger.Debug("conversion failed after %s: %v", time.Since(start), err)
		return nil, newError(ErrConversion, err)
	}
	r.logger.Debug("converted %d bytes of LaTeX in %s", len(src), time.Since(start))
	return r.Parse([]byte(doc), FormatMathML)
}

// Parse reads a serialized tree in the given format. FormatAuto picks
// JSON when the first non-blank byte is '{' and MathML otherwise.
func (r *Renderer) Parse(src []byte, format InputFormat) (*mathml.Node, error) {
	if format == FormatAuto {
		format = Detect(src)
	}

	var (
		n   *mathml.Node
		err error
	)
	if format == FormatJSON {
		n, err = mathml.ParseJSON(src)
	} else {
		n, err = mathml.ParseXMLString(string(src))
	}
	if err != nil {
		return nil, newError(ErrParse, err)
	}
	return n, nil
}

// RenderLaTeX converts LaTeX source to MathML and renders it.
func (r *Renderer) RenderLaTeX(ctx context.Context, src string) (*grid.Grid, error) {
	n, err := r.ParseLaTeX(ctx, src)
	if err != nil {
		return nil, err
	}
	return r.RenderTree(n)
}

// RenderMathML renders a MathML document.
func (r *Renderer) RenderMathML(src string) (*grid.Grid, error) {
	return r.Render([]byte(src), FormatMathML)
}

// RenderJSON renders a JSON-encoded expression tree.
func (r *Renderer) RenderJSON(src []byte) (*grid.Grid, error) {
	return r.Render(src, FormatJSON)
}

// Render renders a serialized tree in the given format.
func (r *Renderer) Render(src []byte, format InputFormat) (*grid.Grid, error) {
	n, err := r.Parse(src, format)
	if err != nil {
		return nil, err
	}
	return r.RenderTree(n)
}

// Detect guesses the serialized format of src.
func Detect(src []byte) InputFormat {
	if bytes.HasPrefix(bytes.TrimSpace(src), []byte("{")) {
		return FormatJSON
	}
	return FormatMathML
}

// RenderTree lays out an already parsed tree.
func (r *Renderer) RenderTree(n *mathml.Node) (*grid.Grid, error) {
	start := time.Now()
	g, err := r.engine.Process(n)
	if err != nil {
		r.logger.Debug("layout failed: %v", err)
		return nil, newError(ErrInvalidStructure, err)
	}
	if r.logger.Enabled(logging.LevelDebug) {
		nodes, leaves := treeSize(n)
		r.logger.WithFields(map[string]any{
			"nodes":    nodes,
			"leaves":   leaves,
			"width":    g.Width(),
			"height":   g.Height(),
			"baseline": g.Baseline(),
		}).Debug("laid out in %s", time.Since(start))
	}
	return g, nil
}

// treeSize counts the nodes of n and the leaves among them.
func treeSize(n *mathml.Node) (nodes, leaves int) {
	if n == nil {
		return 0, 0
	}
	n.Walk(func(c *mathml.Node) bool {
		nodes++
		if c.Kind().IsLeaf() {
			leaves++
		}
		return true
	})
	return nodes, leaves
}

// RenderLaTeXString renders LaTeX to a flattened string. Failures render as
// their visible error text.
func (r *Renderer) RenderLaTeXString(ctx context.Context, src string) string {
	g, err := r.RenderLaTeX(ctx, src)
	if err != nil {
		return ErrorText(err)
	}
	return g.String()
}

// RenderMathMLString renders MathML to a flattened string. Failures render
// as their visible error text.
func (r *Renderer) RenderMathMLString(src string) string {
	g, err := r.RenderMathML(src)
	if err != nil {
		return ErrorText(err)
	}
	return g.String()
}

// Kind returns the error category of err, or nil when err is not a
// render error.
func Kind(err error) error {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return nil
}
