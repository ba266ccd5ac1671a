package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"
)

// TestHelperProcess is not a real test. Command tests re-run the test
// binary with GO_WANT_HELPER_PROCESS set so it acts as a converter.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	in, _ := io.ReadAll(os.Stdin)
	src := strings.TrimSpace(string(in))

	switch os.Getenv("HELPER_MODE") {
	case "echo":
		fmt.Printf("<math><mi>%s</mi></math>\n", src)
	case "fail":
		fmt.Fprintf(os.Stderr, "undefined control sequence %s\n", src)
		os.Exit(2)
	case "empty":
	case "sleep":
		time.Sleep(5 * time.Second)
	}
	os.Exit(0)
}

func helperCommand(mode string) *Command {
	c := NewCommand(os.Args[0], "-test.run=TestHelperProcess")
	c.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "HELPER_MODE="+mode)
	return c
}

func TestCommand_Convert(t *testing.T) {
	got, err := helperCommand("echo").Convert(context.Background(), "x")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got != "<math><mi>x</mi></math>" {
		t.Errorf("Convert() = %q", got)
	}
}

func TestCommand_Failure(t *testing.T) {
	_, err := helperCommand("fail").Convert(context.Background(), `\foo`)

	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("Convert() error = %T %v, want *Error", err, err)
	}
	if ce.Stderr != `undefined control sequence \foo` {
		t.Errorf("Stderr = %q", ce.Stderr)
	}
	if !strings.Contains(err.Error(), "undefined control sequence") {
		t.Errorf("Error() = %q, want the program's stderr", err.Error())
	}
}

func TestCommand_EmptyOutput(t *testing.T) {
	_, err := helperCommand("empty").Convert(context.Background(), "x")
	if !errors.Is(err, ErrEmptyOutput) {
		t.Errorf("Convert() error = %v, want ErrEmptyOutput", err)
	}
}

func TestCommand_Timeout(t *testing.T) {
	c := helperCommand("sleep")
	c.Timeout = 50 * time.Millisecond

	_, err := c.Convert(context.Background(), "x")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Convert() error = %v, want deadline exceeded", err)
	}
}

func TestCommand_NotConfigured(t *testing.T) {
	var nilCmd *Command
	for _, c := range []*Command{nilCmd, {}} {
		if _, err := c.Convert(context.Background(), "x"); !errors.Is(err, ErrNoConverter) {
			t.Errorf("Convert() error = %v, want ErrNoConverter", err)
		}
	}
}

func TestFunc(t *testing.T) {
	var c Converter = Func(func(_ context.Context, latex string) (string, error) {
		return "<math><mn>" + latex + "</mn></math>", nil
	})

	got, err := c.Convert(context.Background(), "1")
	if err != nil || got != "<math><mn>1</mn></math>" {
		t.Errorf("Convert() = %q, %v", got, err)
	}
}
