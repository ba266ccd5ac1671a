package render

import "errors"

// Error categories. Every error returned by a Renderer matches exactly one
// of these with errors.Is.
var (
	// ErrConversion indicates the LaTeX converter failed.
	ErrConversion = errors.New("LaTeX conversion error")

	// ErrParse indicates the serialized tree could not be read.
	ErrParse = errors.New("MathML parse error")

	// ErrInvalidStructure indicates a construct with the wrong number of
	// children.
	ErrInvalidStructure = errors.New("Invalid math structure") //nolint:staticcheck // shown to users as is
)

// Error is a failed render.
type Error struct {
	// Kind is ErrConversion, ErrParse or ErrInvalidStructure.
	Kind error
	// Msg is the underlying message, passed through verbatim.
	Msg string
	// Err is the underlying error.
	Err error
}

func newError(kind, err error) *Error {
	return &Error{Kind: kind, Msg: err.Error(), Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Kind.Error() + ": " + e.Msg
}

// Unwrap returns the kind and the underlying error.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// ErrorText returns the visible text shown in place of a failed formula.
func ErrorText(err error) string {
	if err == nil {
		return ""
	}
	return "Error: " + err.Error()
}
