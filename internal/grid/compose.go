package grid

// ConcatHorizontal joins grids left to right, aligning their baselines.
//
// The result baseline is the largest input baseline (the ascent) and the
// result height is ascent + 1 + the largest descent. An empty input yields
// Empty().
func ConcatHorizontal(grids ...*Grid) *Grid {
	if len(grids) == 0 {
		return Empty()
	}

	ascent, descent, width := 0, 0, 0
	for _, g := range grids {
		ascent = max(ascent, g.Ascent())
		descent = max(descent, g.Descent())
		width += g.width
	}

	result := MustNew(width, ascent+1+descent, ascent)
	x := 0
	for _, g := range grids {
		result.CopyInto(g, x, ascent-g.baseline)
		x += g.width
	}
	return result
}

// StackVertical stacks grids top to bottom, centring each horizontally.
// When the width difference is odd the extra blank column goes on the right.
//
// The baseline is placed at totalHeight/2. This approximates optical
// centring; stacked constructs (limits, accents, tables) depend on it.
func StackVertical(grids ...*Grid) *Grid {
	if len(grids) == 0 {
		return Empty()
	}

	width, height := 0, 0
	for _, g := range grids {
		width = max(width, g.width)
		height += g.height
	}

	result := MustNew(width, height, 0)
	y := 0
	for _, g := range grids {
		result.CopyInto(g, (width-g.width)/2, y)
		y += g.height
	}
	if height > 0 {
		result.baseline = height / 2
	}
	return result
}

// CenterOffset returns the column at which content of the given width is
// centred inside total columns.
func CenterOffset(total, width int) int {
	if width >= total {
		return 0
	}
	return (total - width) / 2
}
