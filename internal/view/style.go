package view

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/termmath/internal/grid"
)

// Color is a true color or the terminal default.
type Color struct {
	c     colorful.Color
	valid bool
}

// ColorDefault is the terminal's default color.
var ColorDefault = Color{}

// ParseColor parses a "#rrggbb" or "#rgb" color. The empty string is the
// terminal default.
func ParseColor(hex string) (Color, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return ColorDefault, nil
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return ColorDefault, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return Color{c: c, valid: true}, nil
}

// IsDefault returns true if this is the terminal default color.
func (c Color) IsDefault() bool {
	return !c.valid
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if !c.valid {
		return ""
	}
	return c.c.Hex()
}

// Blend mixes c toward other by t in [0, 1]. Blending with a default
// color returns the other color unchanged.
func (c Color) Blend(other Color, t float64) Color {
	switch {
	case !c.valid:
		return other
	case !other.valid:
		return c
	}
	return Color{c: c.c.BlendLab(other.c, t).Clamped(), valid: true}
}

func (c Color) tcell() tcell.Color {
	if !c.valid {
		return tcell.ColorDefault
	}
	r, g, b := c.c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Style is the appearance of a cell.
type Style struct {
	Foreground Color
	Background Color
	Bold       bool
}

// StyleDefault uses the terminal defaults.
var StyleDefault = Style{}

func (s Style) tcell() tcell.Style {
	return tcell.StyleDefault.
		Foreground(s.Foreground.tcell()).
		Background(s.Background.tcell()).
		Bold(s.Bold)
}

// Theme groups the styles a Widget paints with.
type Theme struct {
	Text   Style
	Border Style
	Title  Style
	Error  Style
}

// NewTheme builds a theme from hex colors. When border is empty the
// border color is the foreground faded halfway into the background.
func NewTheme(foreground, background, border string) (Theme, error) {
	fg, err := ParseColor(foreground)
	if err != nil {
		return Theme{}, err
	}
	bg, err := ParseColor(background)
	if err != nil {
		return Theme{}, err
	}
	bc, err := ParseColor(border)
	if err != nil {
		return Theme{}, err
	}
	if bc.IsDefault() && !fg.IsDefault() && !bg.IsDefault() {
		bc = fg.Blend(bg, 0.5)
	}

	text := Style{Foreground: fg, Background: bg}
	return Theme{
		Text:   text,
		Border: Style{Foreground: bc, Background: bg},
		Title:  Style{Foreground: fg, Background: bg, Bold: true},
		Error:  Style{Foreground: errorColor, Background: bg, Bold: true},
	}, nil
}

var errorColor = Color{c: colorful.Color{R: 0.86, G: 0.2, B: 0.18}, valid: true}

// Cell is one screen position.
type Cell struct {
	// Text is the grapheme cluster to display. Empty for the second
	// column of a wide glyph.
	Text string

	// Width is the display width: 0, 1 or 2.
	Width int

	Style Style
}

// EmptyCell returns a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Text: " ", Width: 1}
}

// CellFromGrid converts a grid cell, giving it style s.
func CellFromGrid(c grid.Cell, s Style) Cell {
	return Cell{Text: c.Text, Width: c.Width, Style: s}
}

// splitCluster returns the main rune and the combining runes of a cluster
// in the shape tcell's SetContent expects.
func splitCluster(cluster string) (rune, []rune) {
	runes := []rune(cluster)
	if len(runes) == 0 {
		return ' ', nil
	}
	if len(runes) == 1 {
		return runes[0], nil
	}
	return runes[0], runes[1:]
}
