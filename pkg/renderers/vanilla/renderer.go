package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-parameditor/pkg/render"
	rendertemplate "github.com/goliatone/go-parameditor/pkg/render/template"
	gotemplate "github.com/goliatone/go-parameditor/pkg/render/template/gotemplate"
)

const (
	editorTemplate = "templates/param_editor.tmpl"
	pageTemplate   = "templates/page.tmpl"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	themeSelector    theme.ThemeSelector
	themeName        string
	themeVariant     string
}

// WithTemplatesFS supplies an alternate template bundle. It must provide the
// same template paths as TemplatesFS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithThemeSelector resolves name/variant through selector on every render
// and applies the manifest tokens and stylesheet asset.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		cfg.themeSelector = selector
		cfg.themeName = name
		cfg.themeVariant = variant
	}
}

// Renderer produces the HTML markup of a parameter editor: one labelled text
// input per param, displaying the editor's current value.
type Renderer struct {
	templates     rendertemplate.TemplateRenderer
	themeSelector theme.ThemeSelector
	themeName     string
	themeVariant  string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:     renderer,
		themeSelector: cfg.themeSelector,
		themeName:     cfg.themeName,
		themeVariant:  cfg.themeVariant,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes the editor fragment, or a full page when opts.Standalone is
// set. It never mutates the editor.
func (r *Renderer) Render(ctx context.Context, ed render.Editor, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if ed == nil {
		return nil, fmt.Errorf("vanilla renderer: editor is required")
	}

	themeCtx, err := r.resolveTheme()
	if err != nil {
		return nil, err
	}

	data := map[string]any{
		"rows":    buildRows(ed),
		"theme":   themeCtx,
		"classes": chromeClasses(),
	}
	fragment, err := r.templates.RenderTemplate(editorTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render editor: %w", err)
	}
	if !opts.Standalone {
		return []byte(fragment), nil
	}

	page, err := r.templates.RenderTemplate(pageTemplate, map[string]any{
		"title":       opts.Title,
		"actionLabel": opts.ActionLabel,
		"editor":      fragment,
		"stylesheet":  defaultStylesheet(),
		"theme":       themeCtx,
		"classes":     chromeClasses(),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render page: %w", err)
	}
	return []byte(page), nil
}

type rowView struct {
	ID      string `json:"id"`
	InputID string `json:"inputId"`
	Label   string `json:"label"`
	Value   string `json:"value"`
}

func buildRows(ed render.Editor) []rowView {
	params := ed.Params()
	rows := make([]rowView, 0, len(params))
	for _, param := range params {
		rows = append(rows, rowView{
			ID:      strconv.Itoa(param.ID),
			InputID: inputID(param.ID),
			Label:   labelHTML(param.Name),
			Value:   ed.Value(param.ID),
		})
	}
	return rows
}
