package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/dshills/termmath/internal/config"
	"github.com/dshills/termmath/internal/convert"
	"github.com/dshills/termmath/internal/grid"
	"github.com/dshills/termmath/internal/logging"
	"github.com/dshills/termmath/internal/mathml"
	"github.com/dshills/termmath/internal/output"
	"github.com/dshills/termmath/internal/render"
	"github.com/dshills/termmath/internal/typeset"
	"github.com/dshills/termmath/internal/view"
	"github.com/dshills/termmath/internal/watcher"
)

// errRenderFailed reports that at least one input failed. The failure has
// already been written in place of its output.
var errRenderFailed = errors.New("render failed")

// stdinName names standard input in titles and log fields.
const stdinName = "-"

type source struct {
	name string
	data []byte
}

// session holds everything needed to render the inputs of one invocation.
type session struct {
	cfg      *config.Config
	opts     options
	logger   *logging.Logger
	renderer *render.Renderer
	format   output.Format
}

func newSession(cfg *config.Config, opts options, logger *logging.Logger) *session {
	renderOpts := []render.Option{
		render.WithOptions(typeset.Options{UnicodeScripts: cfg.Render.UnicodeScripts}),
		render.WithLogger(logger),
	}
	if cfg.Converter.Command != "" {
		c := convert.NewCommand(cfg.Converter.Command, cfg.Converter.Args...)
		c.Timeout = cfg.Converter.Timeout
		renderOpts = append(renderOpts, render.WithConverter(c))
	}
	if opts.latex && cfg.Converter.Command == "" {
		logger.Warn("no converter.command configured; LaTeX input will fail")
	}

	return &session{
		cfg:      cfg,
		opts:     opts,
		logger:   logger,
		renderer: render.New(renderOpts...),
		format:   outputFormat(cfg),
	}
}

// readSources reads every input file, or standard input when there are
// none.
func (s *session) readSources(stdin io.Reader) ([]source, error) {
	if len(s.opts.files) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
		return []source{{name: stdinName, data: data}}, nil
	}

	sources := make([]source, 0, len(s.opts.files))
	for _, name := range s.opts.files {
		src, err := s.readSource(name, stdin)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func (s *session) readSource(name string, stdin io.Reader) (source, error) {
	if name == stdinName {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return source{}, fmt.Errorf("reading standard input: %w", err)
		}
		return source{name: name, data: data}, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return source{}, err
	}
	return source{name: name, data: data}, nil
}

func (s *session) parse(ctx context.Context, src source) (*mathml.Node, error) {
	if s.opts.latex {
		return s.renderer.ParseLaTeX(ctx, strings.TrimSpace(string(src.data)))
	}
	return s.renderer.Parse(src.data, inputFormat(s.cfg))
}

func (s *session) render(ctx context.Context, src source) (*grid.Grid, error) {
	n, err := s.parse(ctx, src)
	if err != nil {
		return nil, err
	}
	return s.renderer.RenderTree(n)
}

// emit renders one source to w. Failures are written in place of the
// output and reported as errRenderFailed.
func (s *session) emit(ctx context.Context, src source, w io.Writer) error {
	g, err := s.render(ctx, src)
	if err != nil {
		s.logger.WithField("input", src.name).Info("render failed: %v", err)
		if werr := output.WriteError(w, s.format, err); werr != nil {
			return werr
		}
		return errRenderFailed
	}

	if width, ok := terminalWidth(w); ok && g.Width() > width {
		s.logger.Warn("%s is %d columns wide but the terminal has %d", src.name, g.Width(), width)
	}
	return output.Write(w, s.format, g)
}

// runOnce renders every input once.
func (s *session) runOnce(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	sources, err := s.readSources(stdin)
	if err != nil {
		return err
	}

	var failed bool
	for _, src := range sources {
		err := s.emit(ctx, src, stdout)
		if errors.Is(err, errRenderFailed) {
			failed = true
			continue
		}
		if err != nil {
			return err
		}
	}
	if failed {
		return errRenderFailed
	}
	return nil
}

// runTree writes the expression tree of every input as one line of JSON.
// Failures are written as JSON error objects in place of the tree.
func (s *session) runTree(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	sources, err := s.readSources(stdin)
	if err != nil {
		return err
	}

	var failed bool
	for _, src := range sources {
		n, err := s.parse(ctx, src)
		if err != nil {
			s.logger.WithField("input", src.name).Info("parse failed: %v", err)
			if werr := output.WriteError(stdout, output.JSON, err); werr != nil {
				return werr
			}
			failed = true
			continue
		}
		if err := output.WriteTree(stdout, n); err != nil {
			return err
		}
	}
	if failed {
		return errRenderFailed
	}
	return nil
}

// runWatch renders the single input file, then again after every change
// until ctx is cancelled.
func (s *session) runWatch(ctx context.Context, stdout io.Writer) error {
	path := s.opts.files[0]
	w, err := watcher.WatchFile(path, s.debounce())
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	defer w.Close()

	s.emitFile(ctx, path, stdout)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-w.Events():
			if !ok {
				return nil
			}
			s.logger.Debug("%s changed (%s)", e.Path, e.Op)
			s.emitFile(ctx, path, stdout)
		case err, ok := <-w.Errors():
			if ok {
				s.logger.Warn("watch error: %v", err)
			}
		}
	}
}

func (s *session) emitFile(ctx context.Context, path string, stdout io.Writer) {
	src, err := s.readSource(path, nil)
	if err != nil {
		s.logger.Warn("reading %s: %v", path, err)
		return
	}
	if err := s.emit(ctx, src, stdout); err != nil && !errors.Is(err, errRenderFailed) {
		s.logger.Error("writing output: %v", err)
	}
}

// runView shows every input in the full-screen viewer. With -watch the
// widget is refreshed on every change.
func (s *session) runView(ctx context.Context, stdin io.Reader) error {
	theme, err := view.NewTheme(s.cfg.View.Foreground, s.cfg.View.Background, s.cfg.View.BorderColor)
	if err != nil {
		return err
	}

	sources, err := s.readSources(stdin)
	if err != nil {
		return err
	}

	backend, err := view.NewTerminal()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	v := view.NewViewer(backend, view.WithTheme(theme), view.WithLogger(s.logger))
	v.SetWidgets(s.widgets(ctx, sources)...)

	if s.opts.watch {
		path := s.opts.files[0]
		w, err := watcher.WatchFile(path, s.debounce())
		if err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		defer w.Close()

		go func() {
			for range w.Events() {
				src, err := s.readSource(path, nil)
				if err != nil {
					s.logger.Warn("reading %s: %v", path, err)
					continue
				}
				v.SetWidgets(s.widgets(ctx, []source{src})...)
			}
		}()
	}

	return v.Run(ctx)
}

func (s *session) widgets(ctx context.Context, sources []source) []*view.Widget {
	widgets := make([]*view.Widget, len(sources))
	for i, src := range sources {
		g, err := s.render(ctx, src)
		title := src.name
		if title == stdinName {
			title = ""
		}
		widgets[i] = view.NewWidget(title, g, err)
		widgets[i].Border = s.cfg.View.Border
	}
	return widgets
}

func (s *session) debounce() time.Duration {
	return time.Duration(s.cfg.Watch.DebounceMs) * time.Millisecond
}

// terminalWidth returns the width of the terminal w writes to, if any.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}
