package mathml

import (
	"fmt"
	"sort"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ParseJSON reads the JSON encoding of a tree:
//
//	{"tag": "mfrac", "children": [{"tag": "mi", "text": "a"}, {"tag": "mn", "text": "2"}]}
//
// Each object carries a required "tag" and optional "text", "attrs"
// (string values) and "children".
func ParseJSON(data []byte) (*Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Format: "json", Message: "invalid JSON document"}
	}
	return nodeFromJSON(gjson.ParseBytes(data), "$")
}

func nodeFromJSON(v gjson.Result, path string) (*Node, error) {
	if !v.IsObject() {
		return nil, jsonError(path, "expected object, got %s", v.Type)
	}

	tag := v.Get("tag")
	if tag.Type != gjson.String || tag.Str == "" {
		return nil, jsonError(path, "missing tag")
	}
	n := &Node{Tag: tag.Str}

	if text := v.Get("text"); text.Exists() {
		if text.Type != gjson.String && text.Type != gjson.Number {
			return nil, jsonError(path, "text must be a string")
		}
		n.Text = normalizeText(text.String())
	}

	if attrs := v.Get("attrs"); attrs.Exists() {
		if !attrs.IsObject() {
			return nil, jsonError(path, "attrs must be an object")
		}
		attrs.ForEach(func(k, val gjson.Result) bool {
			n.WithAttr(k.String(), val.String())
			return true
		})
	}

	if children := v.Get("children"); children.Exists() {
		if !children.IsArray() {
			return nil, jsonError(path, "children must be an array")
		}
		for i, c := range children.Array() {
			child, err := nodeFromJSON(c, fmt.Sprintf("%s.children[%d]", path, i))
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		}
	}

	return n, nil
}

func jsonError(path, format string, args ...any) error {
	return &ParseError{Format: "json", Message: path + ": " + fmt.Sprintf(format, args...)}
}

// EncodeJSON writes n in the encoding read by ParseJSON.
func EncodeJSON(n *Node) (string, error) {
	doc, err := sjson.Set("{}", "tag", n.Tag)
	if err != nil {
		return "", err
	}
	if n.Text != "" {
		if doc, err = sjson.Set(doc, "text", n.Text); err != nil {
			return "", err
		}
	}

	if len(n.Attrs) > 0 {
		names := make([]string, 0, len(n.Attrs))
		for k := range n.Attrs {
			names = append(names, k)
		}
		sort.Strings(names)

		attrs := "{}"
		for _, k := range names {
			if attrs, err = sjson.Set(attrs, escapeKey(k), n.Attrs[k]); err != nil {
				return "", err
			}
		}
		if doc, err = sjson.SetRaw(doc, "attrs", attrs); err != nil {
			return "", err
		}
	}

	if len(n.Children) > 0 {
		children := "[]"
		for _, c := range n.Children {
			raw, err := EncodeJSON(c)
			if err != nil {
				return "", err
			}
			if children, err = sjson.SetRaw(children, "-1", raw); err != nil {
				return "", err
			}
		}
		if doc, err = sjson.SetRaw(doc, "children", children); err != nil {
			return "", err
		}
	}

	return doc, nil
}

// escapeKey protects sjson path metacharacters in an attribute name.
func escapeKey(k string) string {
	buf := make([]byte, 0, len(k))
	for i := 0; i < len(k); i++ {
		switch k[i] {
		case '.', '*', '?', '|', '#', '@', '\\', ':', '!', '=', '<', '>', '%':
			buf = append(buf, '\\')
		}
		buf = append(buf, k[i])
	}
	return string(buf)
}
