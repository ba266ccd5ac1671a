// Package output writes rendered grids for the command line.
//
//	text   rows joined by newlines, trailing blanks trimmed
//	lines  every row at full width, for consumers that align columns
//	json   {"width","height","baseline","lines","text"}
//
// Failed renders are written in the same format: the visible error text
// for text and lines, an {"error":{"kind","message"}} object for json.
//
// WriteTree writes an expression tree instead of its layout, in the JSON
// encoding the json input format reads.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/sjson"

	"github.com/dshills/termmath/internal/grid"
	"github.com/dshills/termmath/internal/mathml"
	"github.com/dshills/termmath/internal/render"
)

// Format selects an encoding.
type Format string

// Supported formats.
const (
	Text  Format = "text"
	Lines Format = "lines"
	JSON  Format = "json"
)

// ErrUnknownFormat is returned for format names ParseFormat does not know.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, Lines, JSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
	}
}

// Encode returns g in format f, without a trailing newline.
func Encode(f Format, g *grid.Grid) (string, error) {
	switch f {
	case Text:
		return g.String(), nil
	case Lines:
		return strings.Join(g.Lines(), "\n"), nil
	case JSON:
		return encodeJSON(g)
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, f)
	}
}

// EncodeError returns the representation of a failed render in format f.
func EncodeError(f Format, err error) (string, error) {
	switch f {
	case Text, Lines:
		return render.ErrorText(err), nil
	case JSON:
		return encodeErrorJSON(err)
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, f)
	}
}

// Write encodes g and writes it to w followed by a newline.
func Write(w io.Writer, f Format, g *grid.Grid) error {
	s, err := Encode(f, g)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}

// WriteError encodes a failed render and writes it to w followed by a
// newline.
func WriteError(w io.Writer, f Format, renderErr error) error {
	s, err := EncodeError(f, renderErr)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}

// WriteTree writes n as one line of JSON.
func WriteTree(w io.Writer, n *mathml.Node) error {
	doc, err := mathml.EncodeJSON(n)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, doc+"\n")
	return err
}

func encodeJSON(g *grid.Grid) (string, error) {
	doc := "{}"
	var err error
	set := func(path string, v any) {
		if err == nil {
			doc, err = sjson.Set(doc, path, v)
		}
	}

	set("width", g.Width())
	set("height", g.Height())
	set("baseline", g.Baseline())
	set("lines", g.Lines())
	set("text", g.String())
	return doc, err
}

func encodeErrorJSON(renderErr error) (string, error) {
	kind := "error"
	switch render.Kind(renderErr) {
	case render.ErrConversion:
		kind = "conversion"
	case render.ErrParse:
		kind = "parse"
	case render.ErrInvalidStructure:
		kind = "invalid_structure"
	}

	doc, err := sjson.Set("{}", "error.kind", kind)
	if err != nil {
		return "", err
	}
	return sjson.Set(doc, "error.message", renderErr.Error())
}
