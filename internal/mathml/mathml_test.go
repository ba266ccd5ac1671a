package mathml

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const fractionDoc = `<math xmlns="http://www.w3.org/1998/Math/MathML" display="inline">
  <mfrac>
    <mrow><mi>a</mi><mo>+</mo><mn>1</mn></mrow>
    <mi>b</mi>
  </mfrac>
</math>`

func TestParseXML(t *testing.T) {
	root, err := ParseXMLString(fractionDoc)
	if err != nil {
		t.Fatalf("ParseXMLString: %v", err)
	}

	want := `(math (mfrac (mrow (mi "a") (mo "+") (mn "1")) (mi "b")))`
	if got := root.String(); got != want {
		t.Errorf("tree mismatch:\n got %s\nwant %s", got, want)
	}

	if v, ok := root.Attr("display"); !ok || v != "inline" {
		t.Errorf("expected display=inline, got %q, %v", v, ok)
	}
	if _, ok := root.Attr("xmlns"); ok {
		t.Error("namespace declarations should not be kept as attributes")
	}
}

func TestParseXMLEntities(t *testing.T) {
	root, err := ParseXMLString(`<mrow><mo>&PlusMinus;</mo><mi>&alpha;</mi><mo>&lt;</mo></mrow>`)
	if err != nil {
		t.Fatalf("ParseXMLString: %v", err)
	}

	var texts []string
	for _, c := range root.Children {
		texts = append(texts, c.Text)
	}
	if diff := cmp.Diff([]string{"±", "α", "<"}, texts); diff != "" {
		t.Errorf("entity decoding mismatch (-want +got):\n%s", diff)
	}
}

func TestParseXMLDirectTextOnly(t *testing.T) {
	root, err := ParseXMLString(`<mo> lim <mi>x</mi> </mo>`)
	if err != nil {
		t.Fatal(err)
	}
	if root.Text != "lim" {
		t.Errorf("expected trimmed direct text %q, got %q", "lim", root.Text)
	}
	if len(root.Children) != 1 || root.Children[0].Text != "x" {
		t.Errorf("unexpected children: %s", root)
	}
}

func TestParseXMLNormalizesText(t *testing.T) {
	root, err := ParseXMLString("<mi>e\u0301</mi>")
	if err != nil {
		t.Fatal(err)
	}
	if root.Text != "\u00e9" {
		t.Errorf("expected NFC text, got %q", root.Text)
	}
}

func TestParseXMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"unclosed", "<math><mi>x</mi>"},
		{"mismatched", "<math><mi>x</mo></math>"},
		{"two roots", "<mi>x</mi><mi>y</mi>"},
		{"stray text", "<mi>x</mi> y"},
		{"unknown entity", "<mi>&bogus;</mi>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseXMLString(tt.doc)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) || pe.Format != "xml" {
				t.Errorf("expected xml ParseError, got %T", err)
			}
		})
	}
}

func TestParseJSON(t *testing.T) {
	doc := `{"tag":"mfenced","attrs":{"open":"[","close":"]"},"children":[
		{"tag":"mi","text":"x"},
		{"tag":"mn","text":2}
	]}`

	root, err := ParseJSON([]byte(doc))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if got := root.String(); got != `(mfenced (mi "x") (mn "2"))` {
		t.Errorf("unexpected tree %s", got)
	}
	if root.AttrOr("open", "(") != "[" || root.AttrOr("separators", ",") != "," {
		t.Errorf("unexpected attrs %v", root.Attrs)
	}
}

func TestParseJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"invalid", `{"tag":`},
		{"not object", `[1,2]`},
		{"missing tag", `{"text":"x"}`},
		{"bad children", `{"tag":"mrow","children":{}}`},
		{"bad child", `{"tag":"mrow","children":[{"tag":""}]}`},
		{"bad attrs", `{"tag":"mrow","attrs":[]}`},
		{"bad text", `{"tag":"mi","text":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.doc))
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestEncodeJSONRoundTrip(t *testing.T) {
	orig := Element("math",
		Element("msup", Leaf("mi", "x"), Leaf("mn", "2")),
		Element("mfenced", Leaf("mi", "y")).WithAttr("open", "{").WithAttr("data.x", "1"),
	)

	doc, err := EncodeJSON(orig)
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	back, err := ParseJSON([]byte(doc))
	if err != nil {
		t.Fatalf("ParseJSON(%s): %v", doc, err)
	}
	if diff := cmp.Diff(orig, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestKindOf(t *testing.T) {
	tests := map[string]Kind{
		"math":       KindRow,
		"mfrac":      KindFrac,
		"mi":         KindIdentifier,
		"mtd":        KindTableCell,
		"annotation": KindAnnotation,
		"merror":     KindUnknown,
	}
	for tag, want := range tests {
		if got := KindOf(tag); got != want {
			t.Errorf("KindOf(%q) = %v, want %v", tag, got, want)
		}
	}
	if !KindOperator.IsLeaf() || KindFrac.IsLeaf() {
		t.Error("IsLeaf misclassified")
	}
	if KindSup.String() != "superscript" || Kind(999).String() != "unknown" {
		t.Error("unexpected kind names")
	}
}

func TestWalk(t *testing.T) {
	tree := Element("mrow", Element("mfrac", Leaf("mi", "a"), Leaf("mi", "b")), Leaf("mo", "+"))

	var tags []string
	tree.Walk(func(n *Node) bool {
		tags = append(tags, n.Tag)
		return n.Tag != "mfrac"
	})
	if diff := cmp.Diff([]string{"mrow", "mfrac", "mo"}, tags); diff != "" {
		t.Errorf("walk order mismatch (-want +got):\n%s", diff)
	}
}
