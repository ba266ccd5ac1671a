package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"

	"github.com/dshills/termmath/internal/grid"
	"github.com/dshills/termmath/internal/mathml"
	"github.com/dshills/termmath/internal/render"
)

func sampleGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.FromLines([]string{" n ", " ∑ ", "i=1"}, 1)
	if err != nil {
		t.Fatalf("FromLines() error = %v", err)
	}
	return g
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"text", Text, false},
		{"LINES", Lines, false},
		{" json ", JSON, false},
		{"html", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.input, got, err)
		}
		if err != nil && !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("ParseFormat(%q) error %v does not wrap ErrUnknownFormat", tt.input, err)
		}
	}
}

func TestEncode_TextAndLines(t *testing.T) {
	g := sampleGrid(t)

	text, err := Encode(Text, g)
	if err != nil {
		t.Fatal(err)
	}
	if text != " n\n ∑\ni=1" {
		t.Errorf("Encode(Text) = %q", text)
	}

	lines, err := Encode(Lines, g)
	if err != nil {
		t.Fatal(err)
	}
	if lines != " n \n ∑ \ni=1" {
		t.Errorf("Encode(Lines) = %q", lines)
	}
}

func TestEncode_JSON(t *testing.T) {
	doc, err := Encode(JSON, sampleGrid(t))
	if err != nil {
		t.Fatal(err)
	}
	if !gjson.Valid(doc) {
		t.Fatalf("invalid JSON: %s", doc)
	}

	if w := gjson.Get(doc, "width").Int(); w != 3 {
		t.Errorf("width = %d", w)
	}
	if h := gjson.Get(doc, "height").Int(); h != 3 {
		t.Errorf("height = %d", h)
	}
	if b := gjson.Get(doc, "baseline").Int(); b != 1 {
		t.Errorf("baseline = %d", b)
	}

	var lines []string
	for _, l := range gjson.Get(doc, "lines").Array() {
		lines = append(lines, l.String())
	}
	if diff := cmp.Diff([]string{" n ", " ∑ ", "i=1"}, lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if txt := gjson.Get(doc, "text").String(); txt != " n\n ∑\ni=1" {
		t.Errorf("text = %q", txt)
	}
}

func TestEncodeError(t *testing.T) {
	_, renderErr := render.New().RenderMathML("<math><mfrac><mi>a</mi></mfrac></math>")
	if renderErr == nil {
		t.Fatal("expected a render error")
	}

	text, err := EncodeError(Text, renderErr)
	if err != nil {
		t.Fatal(err)
	}
	if text != render.ErrorText(renderErr) {
		t.Errorf("EncodeError(Text) = %q", text)
	}

	doc, err := EncodeError(JSON, renderErr)
	if err != nil {
		t.Fatal(err)
	}
	if kind := gjson.Get(doc, "error.kind").String(); kind != "invalid_structure" {
		t.Errorf("error.kind = %q", kind)
	}
	if msg := gjson.Get(doc, "error.message").String(); msg != renderErr.Error() {
		t.Errorf("error.message = %q", msg)
	}

	doc, err = EncodeError(JSON, errors.New("disk full"))
	if err != nil {
		t.Fatal(err)
	}
	if kind := gjson.Get(doc, "error.kind").String(); kind != "error" {
		t.Errorf("error.kind for a foreign error = %q", kind)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Text, grid.FromText("x²")); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "x²\n" {
		t.Errorf("Write() wrote %q", buf.String())
	}

	buf.Reset()
	if err := WriteError(&buf, Lines, errors.New("boom")); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Error: boom\n" {
		t.Errorf("WriteError() wrote %q", buf.String())
	}

	if err := Write(&buf, Format("pdf"), grid.FromText("x")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Write(pdf) error = %v", err)
	}
}

func TestWriteTree(t *testing.T) {
	tree := mathml.Element("math",
		mathml.Element("mfenced", mathml.Leaf("mi", "x")).WithAttr("open", "["),
	)

	var buf bytes.Buffer
	if err := WriteTree(&buf, tree); err != nil {
		t.Fatalf("WriteTree() error = %v", err)
	}
	out := buf.String()
	if bytes.Count(buf.Bytes(), []byte("\n")) != 1 {
		t.Errorf("tree should be written on one line: %q", out)
	}
	for path, want := range map[string]string{
		"tag":                        "math",
		"children.0.tag":             "mfenced",
		"children.0.attrs.open":      "[",
		"children.0.children.0.text": "x",
	} {
		if got := gjson.Get(out, path).String(); got != want {
			t.Errorf("%s = %q, want %q", path, got, want)
		}
	}

	back, err := mathml.ParseJSON(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if back.String() != tree.String() {
		t.Errorf("read back %s, want %s", back, tree)
	}
}
