package grid

import "github.com/rivo/uniseg"

// Cell represents a single display unit of a Grid.
type Cell struct {
	// Text is the grapheme cluster to display.
	// An empty string indicates a continuation cell (for wide glyphs).
	Text string

	// Width is the display width of this cell.
	// 0 for continuation cells, 1 for normal glyphs, 2 for wide glyphs.
	Width int
}

const blank = " "

// BlankCell returns an unset cell.
func BlankCell() Cell {
	return Cell{Text: blank, Width: 1}
}

// ContinuationCell returns the filler cell that follows a wide glyph.
func ContinuationCell() Cell {
	return Cell{}
}

// NewCell creates a cell holding the given grapheme cluster.
// Clusters that report no width (control characters, lone combining
// marks) still occupy one column.
func NewCell(cluster string) Cell {
	if cluster == "" {
		return BlankCell()
	}
	return Cell{Text: cluster, Width: clusterWidth(uniseg.StringWidth(cluster))}
}

func clusterWidth(w int) int {
	switch {
	case w < 1:
		return 1
	case w > 2:
		return 2
	default:
		return w
	}
}

// IsBlank returns true if this is an unset (space) cell.
func (c Cell) IsBlank() bool {
	return c.Text == blank
}

// IsContinuation returns true if this is the second column of a wide glyph.
func (c Cell) IsContinuation() bool {
	return c.Text == "" && c.Width == 0
}

// CellsFromString splits s into grapheme clusters, inserting a
// continuation cell after every wide cluster.
func CellsFromString(s string) []Cell {
	cells := make([]Cell, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		c := Cell{Text: cluster, Width: clusterWidth(width)}
		cells = append(cells, c)
		if c.Width == 2 {
			cells = append(cells, ContinuationCell())
		}
	}
	return cells
}

// StringFromCells converts cells back to a string.
// Continuation cells contribute nothing.
func StringFromCells(cells []Cell) string {
	n := 0
	for _, c := range cells {
		n += len(c.Text)
	}
	buf := make([]byte, 0, n)
	for _, c := range cells {
		buf = append(buf, c.Text...)
	}
	return string(buf)
}

// DisplayWidth returns the number of grid columns s occupies.
func DisplayWidth(s string) int {
	return len(CellsFromString(s))
}
