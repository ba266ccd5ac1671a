package grid

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromTextSingleChar(t *testing.T) {
	for _, c := range []string{"x", "1", "+", "√", "∑", "α"} {
		g := FromText(c)
		if g.Width() != 1 || g.Height() != 1 || g.Baseline() != 0 {
			t.Errorf("FromText(%q): expected 1x1 baseline 0, got %dx%d baseline %d",
				c, g.Width(), g.Height(), g.Baseline())
		}
		if got := g.Get(0, 0); got != c {
			t.Errorf("FromText(%q).Get(0, 0) = %q", c, got)
		}
	}
}

func TestFromTextCombiningMark(t *testing.T) {
	g := FromText("x̂y")
	if g.Width() != 2 {
		t.Fatalf("expected width 2 for combining cluster, got %d", g.Width())
	}
	if got := g.Get(0, 0); got != "x̂" {
		t.Errorf("expected cluster x̂, got %q", got)
	}
}

func TestFromTextWideGlyph(t *testing.T) {
	g := FromText("a中b")
	if g.Width() != 4 {
		t.Fatalf("expected width 4, got %d", g.Width())
	}
	if !g.Cell(2, 0).IsContinuation() {
		t.Error("expected continuation cell after wide glyph")
	}
	if got := g.String(); got != "a中b" {
		t.Errorf("expected %q, got %q", "a中b", got)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name                    string
		width, height, baseline int
		want                    error
	}{
		{"valid", 3, 2, 1, nil},
		{"zero height", 0, 0, 0, nil},
		{"zero width", 0, 1, 0, nil},
		{"baseline at height", 3, 2, 2, ErrInvalidBaseline},
		{"negative baseline", 3, 2, -1, ErrInvalidBaseline},
		{"zero height nonzero baseline", 1, 0, 1, ErrInvalidBaseline},
		{"negative width", -1, 1, 0, ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.width, tt.height, tt.baseline)
			if !errors.Is(err, tt.want) {
				t.Errorf("New(%d, %d, %d) error = %v, want %v", tt.width, tt.height, tt.baseline, err, tt.want)
			}
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid baseline")
		}
	}()
	MustNew(1, 1, 1)
}

func TestGetSetClipping(t *testing.T) {
	g := MustNew(2, 2, 0)
	g.Set(-1, 0, "x")
	g.Set(2, 0, "x")
	g.Set(0, 5, "x")

	if got := g.Get(-1, 0); got != " " {
		t.Errorf("out of range read should be blank, got %q", got)
	}
	if got := g.String(); got != "\n" {
		t.Errorf("out of range writes should be ignored, got %q", got)
	}

	g.Set(1, 1, "z")
	if got := g.Get(1, 1); got != "z" {
		t.Errorf("expected z, got %q", got)
	}
}

func TestSetOverWideGlyph(t *testing.T) {
	g := FromText("中")
	g.Set(1, 0, "x")
	if got := g.Lines()[0]; got != " x" {
		t.Errorf("overwriting continuation should clear the lead, got %q", got)
	}
}

func TestCopyIntoOverlay(t *testing.T) {
	g := FromText("abc")
	g.CopyInto(FromText(" Z "), 0, 0)
	if got := g.String(); got != "aZc" {
		t.Errorf("blank source cells must not overwrite, got %q", got)
	}

	g.CopyInto(FromText("XY"), 2, 0)
	if got := g.String(); got != "aZX" {
		t.Errorf("copy should clip at the right edge, got %q", got)
	}
}

func TestConcatHorizontal(t *testing.T) {
	got := ConcatHorizontal(FromText("x"), FromText("+"), FromText("y"))
	if got.String() != "x+y" {
		t.Errorf("expected x+y, got %q", got.String())
	}
}

func TestConcatHorizontalBaselineAlignment(t *testing.T) {
	tall, _ := FromLines([]string{"a", "b", "c"}, 1) // ascent 1, descent 1
	low, _ := FromLines([]string{"d", "e"}, 0)       // ascent 0, descent 1
	high, _ := FromLines([]string{"f", "g"}, 1)      // ascent 1, descent 0

	got := ConcatHorizontal(tall, low, high)
	if got.Height() != 3 || got.Baseline() != 1 {
		t.Fatalf("expected height 3 baseline 1, got %d/%d", got.Height(), got.Baseline())
	}

	want := []string{"a f", "bdg", "ce "}
	if diff := cmp.Diff(want, got.Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyCompositions(t *testing.T) {
	for name, g := range map[string]*Grid{
		"concat": ConcatHorizontal(),
		"stack":  StackVertical(),
	} {
		if g.Width() != 0 || g.Height() != 1 || g.Baseline() != 0 {
			t.Errorf("%s of nothing: expected 0x1 baseline 0, got %dx%d baseline %d",
				name, g.Width(), g.Height(), g.Baseline())
		}
	}
}

func TestStackVertical(t *testing.T) {
	got := StackVertical(FromText("n"), FromText("∑"), FromText("i=1"))
	want := []string{" n ", " ∑ ", "i=1"}
	if diff := cmp.Diff(want, got.Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if got.Baseline() != 1 {
		t.Errorf("expected baseline 1, got %d", got.Baseline())
	}
}

func TestStackVerticalOddDifference(t *testing.T) {
	got := StackVertical(FromText("ab"), FromText("abcde"))
	if got.Lines()[0] != " ab  " {
		t.Errorf("expected left margin rounded down, got %q", got.Lines()[0])
	}
	if got.Baseline() != 1 {
		t.Errorf("expected baseline 2/2 = 1, got %d", got.Baseline())
	}
}

func TestFillRowCol(t *testing.T) {
	g := MustNew(3, 3, 1)
	g.FillRow(1, "─")
	g.FillCol(0, "│")
	want := []string{"│  ", "│──", "│  "}
	if diff := cmp.Diff(want, g.Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}

	g.FillRow(7, "x")
	g.FillCol(-1, "x")
	if diff := cmp.Diff(want, g.Lines()); diff != "" {
		t.Errorf("out of range fills should be ignored (-want +got):\n%s", diff)
	}
}

func TestStringTrimsTrailingBlanks(t *testing.T) {
	g, err := FromLines([]string{"a  ", " b"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.String(); got != "a\n b" {
		t.Errorf("expected trimmed rows, got %q", got)
	}
	if diff := cmp.Diff([]string{"a  ", " b "}, g.Lines()); diff != "" {
		t.Errorf("Lines must keep full width (-want +got):\n%s", diff)
	}
}

func TestLinesRoundTrip(t *testing.T) {
	num := FromText("x̂+中")
	den := FromText("y")
	frac := MustNew(max(num.Width(), den.Width()), 3, 1)
	frac.CopyInto(num, 0, 0)
	frac.FillRow(1, "─")
	frac.CopyInto(den, CenterOffset(frac.Width(), 1), 2)

	again, err := FromLines(frac.Lines(), frac.Baseline())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(frac.Lines(), again.Lines()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if again.Width() != frac.Width() || again.Baseline() != frac.Baseline() {
		t.Errorf("round trip changed geometry: %dx%d/%d vs %dx%d/%d",
			again.Width(), again.Height(), again.Baseline(),
			frac.Width(), frac.Height(), frac.Baseline())
	}
}

func TestCompositionBaselineInvariant(t *testing.T) {
	a, _ := FromLines([]string{"1", "2", "3", "4"}, 3)
	b, _ := FromLines([]string{"5"}, 0)
	c := MustNew(0, 0, 0)

	for _, g := range []*Grid{
		ConcatHorizontal(a, b, c),
		StackVertical(a, b, c),
		StackVertical(c),
		ConcatHorizontal(c),
	} {
		if g.Height() > 0 && (g.Baseline() < 0 || g.Baseline() >= g.Height()) {
			t.Errorf("baseline %d outside height %d", g.Baseline(), g.Height())
		}
		if g.Height() == 0 && g.Baseline() != 0 {
			t.Errorf("zero-height grid must carry baseline 0, got %d", g.Baseline())
		}
	}
}
