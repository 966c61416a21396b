// Package parameditor edits the string values of a fixed list of product
// parameters and hands the resulting model back on demand. The editor state
// lives in pkg/editor; renderers in pkg/renderers present it as HTML, survey
// prompts or a bubbletea form.
package parameditor

import (
	"context"
	"fmt"
	"os"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-parameditor/pkg/document"
	"github.com/goliatone/go-parameditor/pkg/editor"
	"github.com/goliatone/go-parameditor/pkg/model"
	"github.com/goliatone/go-parameditor/pkg/render"
	"github.com/goliatone/go-parameditor/pkg/renderers/terminal"
	"github.com/goliatone/go-parameditor/pkg/renderers/tui"
	"github.com/goliatone/go-parameditor/pkg/renderers/vanilla"
)

// RenderOptions aliases render.RenderOptions for callers of the root package.
type RenderOptions = render.RenderOptions

// Option configures the registry and render helpers.
type Option func(*config)

type config struct {
	logger       *zap.Logger
	registry     *render.Registry
	selector     theme.ThemeSelector
	themeName    string
	themeVariant string
	tuiOptions   []tui.Option
}

// WithLogger routes editor and renderer logging to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithRegistry renders through registry instead of the default one.
func WithRegistry(registry *render.Registry) Option {
	return func(cfg *config) {
		cfg.registry = registry
	}
}

// WithThemeSelector passes a go-theme selector to the HTML renderer.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		cfg.selector = selector
		cfg.themeName = name
		cfg.themeVariant = variant
	}
}

// WithTUIOptions forwards options to the prompt renderer of the default
// registry.
func WithTUIOptions(options ...tui.Option) Option {
	return func(cfg *config) {
		cfg.tuiOptions = append(cfg.tuiOptions, options...)
	}
}

func newConfig(options []Option) *config {
	cfg := &config{logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	return cfg
}

// NewEditor constructs an editor over params seeded from model.
func NewEditor(params []model.Param, seed model.Model, options ...Option) *editor.Editor {
	cfg := newConfig(options)
	return editor.New(params, seed, editor.WithLogger(cfg.logger))
}

// DefaultRegistry returns a registry holding the vanilla, tui and terminal
// renderers. The terminal form draws on stderr so stdout carries only the
// serialized model.
func DefaultRegistry(options ...Option) (*render.Registry, error) {
	cfg := newConfig(options)

	var vanillaOptions []vanilla.Option
	if cfg.selector != nil {
		vanillaOptions = append(vanillaOptions, vanilla.WithThemeSelector(cfg.selector, cfg.themeName, cfg.themeVariant))
	}
	html, err := vanilla.New(vanillaOptions...)
	if err != nil {
		return nil, fmt.Errorf("parameditor: %w", err)
	}

	tuiOptions := append([]tui.Option{tui.WithLogger(cfg.logger)}, cfg.tuiOptions...)
	prompts, err := tui.New(tuiOptions...)
	if err != nil {
		return nil, fmt.Errorf("parameditor: %w", err)
	}

	form, err := terminal.New(terminal.WithOutput(os.Stderr), terminal.WithLogger(cfg.logger))
	if err != nil {
		return nil, fmt.Errorf("parameditor: %w", err)
	}

	return render.NewRegistry(html, prompts, form), nil
}

// Render runs the named renderer over ed.
func Render(ctx context.Context, ed render.Editor, rendererName string, opts RenderOptions, options ...Option) ([]byte, error) {
	cfg := newConfig(options)
	registry := cfg.registry
	if registry == nil {
		var err error
		registry, err = DefaultRegistry(options...)
		if err != nil {
			return nil, err
		}
	}

	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, fmt.Errorf("parameditor: %w", err)
	}
	out, err := renderer.Render(ctx, ed, opts)
	if err != nil {
		return nil, fmt.Errorf("parameditor: render %s: %w", rendererName, err)
	}
	return out, nil
}

// RenderHTML builds an editor from doc and renders it with the vanilla
// renderer.
func RenderHTML(ctx context.Context, doc document.Document, opts RenderOptions, options ...Option) ([]byte, error) {
	cfg := newConfig(options)
	ed := doc.Editor(editor.WithLogger(cfg.logger))
	return Render(ctx, ed, "vanilla", opts, options...)
}
