// Package convert is the boundary to the external LaTeX to MathML
// conversion service.
//
// termmath does not parse LaTeX itself. A Converter turns LaTeX source
// into a MathML document; the usual implementation is Command, which runs
// a configured program (for example latexmlmath or a small pandoc
// wrapper) with the source on stdin and reads MathML from stdout.
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	osexec "os/exec"
	"strings"
	"time"
)

// Errors returned by converters.
var (
	// ErrNoConverter indicates LaTeX input was given but no converter is configured.
	ErrNoConverter = errors.New("no LaTeX converter configured")

	// ErrEmptyOutput indicates the converter succeeded but produced nothing.
	ErrEmptyOutput = errors.New("converter produced no output")
)

// Converter converts LaTeX source to a MathML document.
type Converter interface {
	Convert(ctx context.Context, latex string) (string, error)
}

// Func adapts an ordinary function to the Converter interface.
type Func func(ctx context.Context, latex string) (string, error)

// Convert calls f.
func (f Func) Convert(ctx context.Context, latex string) (string, error) {
	return f(ctx, latex)
}

// DefaultTimeout bounds a conversion when Command.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// Command runs an external program for every conversion.
type Command struct {
	// Path is the program to run.
	Path string
	// Args are passed to the program.
	Args []string
	// Timeout bounds one conversion. Zero means DefaultTimeout.
	Timeout time.Duration
	// Env, when non-nil, replaces the program's environment.
	Env []string
}

// NewCommand returns a Command for path and args.
func NewCommand(path string, args ...string) *Command {
	return &Command{Path: path, Args: args}
}

// Convert runs the program with latex on stdin and returns its stdout.
func (c *Command) Convert(ctx context.Context, latex string) (string, error) {
	if c == nil || c.Path == "" {
		return "", ErrNoConverter
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := osexec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Stdin = strings.NewReader(latex)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if c.Env != nil {
		cmd.Env = c.Env
	}

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", &Error{Program: c.Path, Err: ctx.Err()}
		}
		return "", &Error{Program: c.Path, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" {
		return "", &Error{Program: c.Path, Stderr: strings.TrimSpace(stderr.String()), Err: ErrEmptyOutput}
	}
	return out, nil
}

// Error describes a failed conversion.
type Error struct {
	// Program is the converter that failed.
	Program string
	// Stderr is the program's diagnostic output, passed through verbatim.
	Stderr string
	// Err is the underlying failure.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %s", e.Program, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", e.Program, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
