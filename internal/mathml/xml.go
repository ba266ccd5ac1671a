package mathml

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// mathEntities are the MathML named characters accepted on top of the
// HTML entity set.
var mathEntities = map[string]string{
	"InvisibleTimes":   "\u2062",
	"it":               "\u2062",
	"ApplyFunction":    "\u2061",
	"af":               "\u2061",
	"InvisibleComma":   "\u2063",
	"ic":               "\u2063",
	"PlusMinus":        "±",
	"MinusPlus":        "∓",
	"Integral":         "∫",
	"Sum":              "∑",
	"Product":          "∏",
	"PartialD":         "∂",
	"DifferentialD":    "ⅆ",
	"dd":               "ⅆ",
	"ExponentialE":     "ⅇ",
	"ee":               "ⅇ",
	"ImaginaryI":       "ⅈ",
	"ii":               "ⅈ",
	"Element":          "∈",
	"RightArrow":       "→",
	"rightarrow":       "→",
	"LeftArrow":        "←",
	"DoubleRightArrow": "⇒",
	"ThinSpace":        "\u2009",
	"NotEqual":         "≠",
	"LessEqual":        "≤",
	"GreaterEqual":     "≥",
	"Infinity":         "∞",
	"Sqrt":             "√",
	"OverBar":          "¯",
	"UnderBar":         "_",
	"Hat":              "^",
	"Tilde":            "∼",
}

var entities = func() map[string]string {
	m := make(map[string]string, len(xml.HTMLEntity)+len(mathEntities))
	for k, v := range xml.HTMLEntity {
		m[k] = v
	}
	for k, v := range mathEntities {
		m[k] = v
	}
	return m
}()

// ParseXMLString parses a MathML document held in a string.
func ParseXMLString(s string) (*Node, error) {
	return ParseXML(strings.NewReader(s))
}

// ParseXML reads a MathML document and returns its root element.
// The document must contain exactly one root element.
func ParseXML(r io.Reader) (*Node, error) {
	d := xml.NewDecoder(r)
	d.Entity = entities

	var (
		root  *Node
		stack []*Node
		texts []*strings.Builder
	)

	fail := func(msg string, err error) (*Node, error) {
		line, col := d.InputPos()
		var syn *xml.SyntaxError
		if errors.As(err, &syn) {
			line, col = syn.Line, 0
			msg = syn.Msg
		}
		return nil, &ParseError{Format: "xml", Line: line, Column: col, Message: msg, Err: err}
	}

	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fail(err.Error(), err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 && root != nil {
				return fail("multiple root elements", nil)
			}
			n := &Node{Tag: t.Name.Local}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				n.WithAttr(a.Name.Local, a.Value)
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			} else {
				root = n
			}
			stack = append(stack, n)
			texts = append(texts, &strings.Builder{})

		case xml.EndElement:
			top := len(stack) - 1
			stack[top].Text = normalizeText(texts[top].String())
			stack = stack[:top]
			texts = texts[:top]

		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(t)) != "" {
					return fail("text outside root element", nil)
				}
				continue
			}
			texts[len(texts)-1].Write(t)
		}
	}

	if root == nil {
		return fail("no root element", nil)
	}
	return root, nil
}

func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
