package mathml

// Kind is the layout category of a node.
type Kind int

// Node kinds. KindUnknown covers every tag without a dedicated layout rule.
const (
	KindUnknown Kind = iota
	KindRow
	KindStyle
	KindPadded
	KindPhantom
	KindEnclose
	KindIdentifier
	KindNumber
	KindText
	KindOperator
	KindSup
	KindSub
	KindSubSup
	KindFrac
	KindSqrt
	KindRoot
	KindOver
	KindUnder
	KindUnderOver
	KindTable
	KindTableRow
	KindTableCell
	KindFenced
	KindSpace
	KindSemantics
	KindAnnotation
)

var kindsByTag = map[string]Kind{
	"math":           KindRow,
	"mrow":           KindRow,
	"mstyle":         KindStyle,
	"mpadded":        KindPadded,
	"mphantom":       KindPhantom,
	"menclose":       KindEnclose,
	"mi":             KindIdentifier,
	"mn":             KindNumber,
	"mtext":          KindText,
	"ms":             KindText,
	"mo":             KindOperator,
	"msup":           KindSup,
	"msub":           KindSub,
	"msubsup":        KindSubSup,
	"mfrac":          KindFrac,
	"msqrt":          KindSqrt,
	"mroot":          KindRoot,
	"mover":          KindOver,
	"munder":         KindUnder,
	"munderover":     KindUnderOver,
	"mtable":         KindTable,
	"mtr":            KindTableRow,
	"mlabeledtr":     KindTableRow,
	"mtd":            KindTableCell,
	"mfenced":        KindFenced,
	"mspace":         KindSpace,
	"semantics":      KindSemantics,
	"annotation":     KindAnnotation,
	"annotation-xml": KindAnnotation,
}

// KindOf returns the kind for a tag name.
func KindOf(tag string) Kind {
	return kindsByTag[tag]
}

var kindNames = [...]string{
	KindUnknown:    "unknown",
	KindRow:        "row",
	KindStyle:      "style",
	KindPadded:     "padded",
	KindPhantom:    "phantom",
	KindEnclose:    "enclose",
	KindIdentifier: "identifier",
	KindNumber:     "number",
	KindText:       "text",
	KindOperator:   "operator",
	KindSup:        "superscript",
	KindSub:        "subscript",
	KindSubSup:     "subsup",
	KindFrac:       "fraction",
	KindSqrt:       "sqrt",
	KindRoot:       "root",
	KindOver:       "over",
	KindUnder:      "under",
	KindUnderOver:  "underover",
	KindTable:      "table",
	KindTableRow:   "table-row",
	KindTableCell:  "table-cell",
	KindFenced:     "fenced",
	KindSpace:      "space",
	KindSemantics:  "semantics",
	KindAnnotation: "annotation",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsLeaf reports whether the kind renders its own text rather than
// its children.
func (k Kind) IsLeaf() bool {
	switch k {
	case KindIdentifier, KindNumber, KindText, KindOperator, KindSpace:
		return true
	default:
		return false
	}
}
