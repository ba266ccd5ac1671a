// Package config provides typed termmath configuration.
//
// Settings come from four layers, lowest precedence first: built-in
// defaults, a TOML or YAML file, TERMMATH_* environment variables, and
// command-line flags. The first three are merged as generic maps by the
// loader package and decoded here; flags are applied by the command on the
// returned Config.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dshills/termmath/internal/config/loader"
)

// Config is the complete termmath configuration.
type Config struct {
	Render    RenderConfig
	Input     InputConfig
	Output    OutputConfig
	View      ViewConfig
	Converter ConverterConfig
	Watch     WatchConfig
	Logging   LoggingConfig
}

// RenderConfig controls the typesetting engine.
type RenderConfig struct {
	// UnicodeScripts renders single-row scripts with Unicode superscript
	// and subscript characters.
	UnicodeScripts bool
}

// InputConfig controls how input documents are read.
type InputConfig struct {
	// Format is "auto", "mathml" or "json".
	Format string
}

// OutputConfig controls how results are written.
type OutputConfig struct {
	// Format is "text", "lines" or "json".
	Format string
}

// ViewConfig controls the interactive viewer.
type ViewConfig struct {
	// Foreground and Background are hex colours; empty means the
	// terminal default.
	Foreground string
	Background string

	// BorderColor is a hex colour. When empty the border blends the
	// foreground into the background.
	BorderColor string

	// Border draws a box around each formula.
	Border bool
}

// ConverterConfig describes the external LaTeX to MathML program.
type ConverterConfig struct {
	// Command is the program to run. Empty disables LaTeX input.
	Command string
	// Args are passed to Command. The LaTeX source arrives on stdin.
	Args []string
	// Timeout bounds a single conversion.
	Timeout time.Duration
}

// WatchConfig controls -watch mode.
type WatchConfig struct {
	// DebounceMs is how long a file must be quiet before re-rendering.
	DebounceMs int
}

// LoggingConfig controls diagnostics.
type LoggingConfig struct {
	// Level is debug, info, warn or error.
	Level string
}

// Default returns the built-in configuration.
func Default() *Config {
	c, err := decode(defaultSettings())
	if err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return c
}

func defaultSettings() map[string]any {
	return map[string]any{
		"render": map[string]any{
			"unicodeScripts": true,
		},
		"input": map[string]any{
			"format": "auto",
		},
		"output": map[string]any{
			"format": "text",
		},
		"view": map[string]any{
			"foreground":  "",
			"background":  "",
			"borderColor": "",
			"border":      true,
		},
		"converter": map[string]any{
			"command": "",
			"args":    []any{},
			"timeout": "10s",
		},
		"watch": map[string]any{
			"debounceMs": int64(100),
		},
		"logging": map[string]any{
			"level": "warn",
		},
	}
}

// Option configures Load.
type Option func(*options)

type options struct {
	path      string
	fs        loader.FileSystem
	env       bool
	envPrefix string
}

// WithFile loads settings from path. The format follows the extension.
func WithFile(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithFS reads configuration files from fsys instead of the OS.
func WithFS(fsys loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithEnv enables or disables the environment layer.
func WithEnv(enable bool) Option {
	return func(o *options) {
		o.env = enable
	}
}

// WithEnvPrefix changes the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// Load merges defaults, the configured file and the environment, then
// decodes and validates the result.
func Load(opts ...Option) (*Config, error) {
	o := options{
		fs:        loader.DefaultFS(),
		env:       true,
		envPrefix: loader.DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(&o)
	}

	settings := defaultSettings()

	if o.path != "" {
		l, err := loader.ForPath(o.fs, o.path)
		if err != nil {
			return nil, err
		}
		file, err := l.Load()
		if err != nil {
			return nil, err
		}
		settings = loader.DeepMerge(settings, file)
	}

	if o.env {
		env, err := loader.NewEnvLoader(o.envPrefix).Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		settings = loader.DeepMerge(settings, env)
	}

	c, err := decode(settings)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// decoder reads typed values out of a merged settings map, collecting
// every type error instead of stopping at the first.
type decoder struct {
	settings map[string]any
	errs     []error
}

func decode(settings map[string]any) (*Config, error) {
	d := &decoder{settings: settings}
	c := &Config{}

	d.boolean("render.unicodeScripts", &c.Render.UnicodeScripts)
	d.str("input.format", &c.Input.Format)
	d.str("output.format", &c.Output.Format)
	d.str("view.foreground", &c.View.Foreground)
	d.str("view.background", &c.View.Background)
	d.str("view.borderColor", &c.View.BorderColor)
	d.boolean("view.border", &c.View.Border)
	d.str("converter.command", &c.Converter.Command)
	d.stringSlice("converter.args", &c.Converter.Args)
	d.duration("converter.timeout", &c.Converter.Timeout)
	d.integer("watch.debounceMs", &c.Watch.DebounceMs)
	d.str("logging.level", &c.Logging.Level)

	if len(d.errs) > 0 {
		return nil, errors.Join(d.errs...)
	}
	return c, nil
}

func (d *decoder) lookup(path string) (any, bool) {
	return loader.Lookup(d.settings, path)
}

func (d *decoder) fail(path, expected string, v any) {
	d.errs = append(d.errs, &TypeError{Path: path, Expected: expected, Actual: typeName(v)})
}

func (d *decoder) str(path string, dst *string) {
	v, ok := d.lookup(path)
	if !ok {
		return
	}
	s, ok := v.(string)
	if !ok {
		d.fail(path, "string", v)
		return
	}
	*dst = s
}

func (d *decoder) boolean(path string, dst *bool) {
	v, ok := d.lookup(path)
	if !ok {
		return
	}
	b, ok := v.(bool)
	if !ok {
		d.fail(path, "bool", v)
		return
	}
	*dst = b
}

func (d *decoder) integer(path string, dst *int) {
	v, ok := d.lookup(path)
	if !ok {
		return
	}
	switch val := v.(type) {
	case int:
		*dst = val
	case int64:
		*dst = int(val)
	default:
		d.fail(path, "int", v)
	}
}

func (d *decoder) stringSlice(path string, dst *[]string) {
	v, ok := d.lookup(path)
	if !ok {
		return
	}
	switch val := v.(type) {
	case []string:
		*dst = append([]string(nil), val...)
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				d.fail(path, "array of strings", v)
				return
			}
			out = append(out, s)
		}
		*dst = out
	default:
		d.fail(path, "array of strings", v)
	}
}

// duration accepts Go duration strings ("5s") and whole seconds.
func (d *decoder) duration(path string, dst *time.Duration) {
	v, ok := d.lookup(path)
	if !ok {
		return
	}
	switch val := v.(type) {
	case string:
		parsed, err := time.ParseDuration(val)
		if err != nil {
			d.errs = append(d.errs, &ValidationError{Path: path, Message: "invalid duration", Value: val})
			return
		}
		*dst = parsed
	case int64:
		*dst = time.Duration(val) * time.Second
	case int:
		*dst = time.Duration(val) * time.Second
	case time.Duration:
		*dst = val
	default:
		d.fail(path, "duration", v)
	}
}
