package config

import (
	"errors"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/termmath/internal/logging"
)

var (
	inputFormats  = []string{"auto", "mathml", "json"}
	outputFormats = []string{"text", "lines", "json"}
)

// Validate checks every setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(path, msg string, v any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: v})
	}

	if !slices.Contains(inputFormats, c.Input.Format) {
		invalid("input.format", "must be one of auto, mathml, json", c.Input.Format)
	}
	if !slices.Contains(outputFormats, c.Output.Format) {
		invalid("output.format", "must be one of text, lines, json", c.Output.Format)
	}

	for path, v := range map[string]string{
		"view.foreground":  c.View.Foreground,
		"view.background":  c.View.Background,
		"view.borderColor": c.View.BorderColor,
	} {
		if v == "" {
			continue
		}
		if _, err := colorful.Hex(v); err != nil {
			invalid(path, "must be a hex colour like #rrggbb", v)
		}
	}

	if c.Converter.Timeout <= 0 {
		invalid("converter.timeout", "must be positive", c.Converter.Timeout)
	}
	if c.Watch.DebounceMs < 0 {
		invalid("watch.debounceMs", "must not be negative", c.Watch.DebounceMs)
	}
	if _, ok := logging.ParseLevel(c.Logging.Level); !ok {
		invalid("logging.level", "must be one of debug, info, warn, error", c.Logging.Level)
	}

	return errors.Join(errs...)
}

// LogLevel returns the configured logging level.
func (c *Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Logging.Level)
	return level
}
