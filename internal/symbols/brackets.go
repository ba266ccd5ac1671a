package symbols

// BracketKind identifies a family of scalable fence glyphs.
type BracketKind int

const (
	Paren BracketKind = iota
	Square
	Brace
	Vert
)

// String returns the bracket kind name.
func (k BracketKind) String() string {
	switch k {
	case Paren:
		return "paren"
	case Square:
		return "square"
	case Brace:
		return "brace"
	case Vert:
		return "vert"
	default:
		return "unknown"
	}
}

// Glyphs is the set of glyphs used to draw one side of a fence at any height.
type Glyphs struct {
	Top    string
	Middle string
	Bottom string
	Single string
}

// Scale returns one glyph per row for a fence height rows tall.
func (g Glyphs) Scale(height int) []string {
	switch {
	case height <= 1:
		return []string{g.Single}
	case height == 2:
		return []string{g.Top, g.Bottom}
	}

	rows := make([]string, 0, height)
	rows = append(rows, g.Top)
	for i := 0; i < height-2; i++ {
		rows = append(rows, g.Middle)
	}
	return append(rows, g.Bottom)
}

var leftGlyphs = map[BracketKind]Glyphs{
	Paren:  {"⎛", "⎜", "⎝", "("},
	Square: {"⎡", "⎢", "⎣", "["},
	Brace:  {"⎧", "⎨", "⎩", "{"},
	Vert:   {"│", "│", "│", "|"},
}

var rightGlyphs = map[BracketKind]Glyphs{
	Paren:  {"⎞", "⎟", "⎠", ")"},
	Square: {"⎤", "⎥", "⎦", "]"},
	Brace:  {"⎫", "⎬", "⎭", "}"},
	Vert:   {"│", "│", "│", "|"},
}

var leftTokens = map[string]BracketKind{
	"(": Paren, `\left(`: Paren,
	"[": Square, `\left[`: Square,
	"{": Brace, `\{`: Brace, `\left{`: Brace, `\left\{`: Brace, `\lbrace`: Brace,
	"|": Vert, `\left|`: Vert, `\lvert`: Vert,
}

var rightTokens = map[string]BracketKind{
	")": Paren, `\right)`: Paren,
	"]": Square, `\right]`: Square,
	"}": Brace, `\}`: Brace, `\right}`: Brace, `\right\}`: Brace, `\rbrace`: Brace,
	"|": Vert, `\right|`: Vert, `\rvert`: Vert,
}

// LeftKind returns the bracket kind for an opening token.
// Unrecognised tokens fall back to Paren.
func LeftKind(token string) BracketKind {
	if k, ok := leftTokens[token]; ok {
		return k
	}
	return Paren
}

// RightKind returns the bracket kind for a closing token.
// Unrecognised tokens fall back to Paren.
func RightKind(token string) BracketKind {
	if k, ok := rightTokens[token]; ok {
		return k
	}
	return Paren
}

// LeftBracket returns the opening fence glyphs for token, scaled to height.
func LeftBracket(token string, height int) []string {
	return leftGlyphs[LeftKind(token)].Scale(height)
}

// RightBracket returns the closing fence glyphs for token, scaled to height.
func RightBracket(token string, height int) []string {
	return rightGlyphs[RightKind(token)].Scale(height)
}
