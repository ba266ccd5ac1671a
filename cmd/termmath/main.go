// Package main is the entry point for termmath, which typesets MathML (or
// LaTeX, through an external converter) as plain text.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/termmath/internal/config"
	"github.com/dshills/termmath/internal/logging"
	"github.com/dshills/termmath/internal/output"
	"github.com/dshills/termmath/internal/render"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	configPath       string
	inputFormat      string
	format           string
	logLevel         string
	latex            bool
	noUnicodeScripts bool
	view             bool
	watch            bool
	emitTree         bool
	showVersion      bool
	files            []string
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "termmath %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return exitOK
	}

	cfg, err := config.Load(config.WithFile(opts.configPath))
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load configuration: %v\n", err)
		return exitFailed
	}
	if err := applyFlags(cfg, opts); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel(),
		Output: stderr,
		Prefix: "termmath",
	})

	s := newSession(cfg, opts, logger)

	switch {
	case opts.emitTree:
		err = s.runTree(ctx, stdin, stdout)
	case opts.view:
		err = s.runView(ctx, stdin)
	case opts.watch:
		err = s.runWatch(ctx, stdout)
	default:
		err = s.runOnce(ctx, stdin, stdout)
	}

	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return exitOK
	case errors.Is(err, errRenderFailed):
		return exitFailed
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailed
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("termmath", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.inputFormat, "input-format", "", "Input format (auto, mathml, json)")
	fs.StringVar(&opts.format, "format", "", "Output format (text, lines, json)")
	fs.StringVar(&opts.format, "f", "", "Output format (shorthand)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&opts.latex, "latex", false, "Treat input as LaTeX and convert it first")
	fs.BoolVar(&opts.noUnicodeScripts, "no-unicode-scripts", false, "Always draw scripts on their own rows")
	fs.BoolVar(&opts.view, "view", false, "Show the formulas in a full-screen viewer")
	fs.BoolVar(&opts.watch, "watch", false, "Render again whenever the input file changes")
	fs.BoolVar(&opts.watch, "w", false, "Render again whenever the input file changes (shorthand)")
	fs.BoolVar(&opts.emitTree, "emit-tree", false, "Write the parsed expression tree as JSON instead of rendering it")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "termmath - typeset math for the terminal\n\n")
		fmt.Fprintf(stderr, "Usage: termmath [options] [files...]\n\n")
		fmt.Fprintf(stderr, "Reads standard input when no files are given.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  termmath formula.mml              Render a MathML file\n")
		fmt.Fprintf(stderr, "  echo 'x^2' | termmath -latex      Render LaTeX via the configured converter\n")
		fmt.Fprintf(stderr, "  termmath -format json tree.json   Render a JSON tree as a JSON document\n")
		fmt.Fprintf(stderr, "  termmath -watch formula.mml       Render on every save\n")
		fmt.Fprintf(stderr, "  termmath -latex -emit-tree f.tex  Convert LaTeX once into a reusable JSON tree\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.files = fs.Args()

	if opts.watch && len(opts.files) != 1 {
		return opts, errors.New("-watch needs exactly one input file")
	}
	if opts.emitTree && (opts.view || opts.watch) {
		return opts, errors.New("-emit-tree cannot be combined with -view or -watch")
	}
	return opts, nil
}

// applyFlags overrides configuration with the flags that were given.
func applyFlags(cfg *config.Config, opts options) error {
	if opts.inputFormat != "" {
		cfg.Input.Format = opts.inputFormat
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.noUnicodeScripts {
		cfg.Render.UnicodeScripts = false
	}
	return cfg.Validate()
}

// outputFormat returns the validated output format.
func outputFormat(cfg *config.Config) output.Format {
	f, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return output.Text
	}
	return f
}

func inputFormat(cfg *config.Config) render.InputFormat {
	return render.InputFormat(cfg.Input.Format)
}
