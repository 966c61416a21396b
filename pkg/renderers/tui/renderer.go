package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-parameditor/pkg/model"
	"github.com/goliatone/go-parameditor/pkg/render"
)

// Renderer runs a prompt session over the editor: one text prompt per param
// showing the current value. Answers other than the keep marker or the
// current value are applied as input changes, the empty answer included; the
// resulting model is serialized.
type Renderer struct {
	driver         PromptDriver
	outputFormat   OutputFormat
	confirmMessage string
	notice         string
	keepMarker     string
	logger         *zap.Logger
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
		keepMarker:   DefaultKeepMarker,
		logger:       zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}
	switch r.outputFormat {
	case OutputFormatJSON, OutputFormatPrettyText:
	default:
		return nil, fmt.Errorf("tui: unsupported output format %q", r.outputFormat)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPrettyText {
		return "text/plain; charset=utf-8"
	}
	return "application/json"
}

// Render prompts for every param in order and returns the serialized model.
func (r *Renderer) Render(ctx context.Context, ed render.Editor, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ed == nil {
		return nil, errors.New("tui: editor is required")
	}

	if opts.Title != "" {
		if err := r.driver.Info(ctx, opts.Title); err != nil {
			return nil, err
		}
	}

	params := ed.Params()
	for _, param := range params {
		if err := r.promptParam(ctx, ed, param); err != nil {
			return nil, err
		}
	}

	if r.confirmMessage != "" {
		ok, err := r.driver.Confirm(ctx, ConfirmConfig{Message: r.confirmMessage, Default: true})
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrAborted
		}
	}

	snapshot := ed.Snapshot()
	out, err := r.serialize(params, snapshot)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("prompt session finished",
		zap.Int("param_count", len(params)),
		zap.Int("value_count", len(snapshot.ParamValues)))

	if r.notice != "" {
		if err := r.driver.Info(ctx, r.notice); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// promptParam never passes the current value as the prompt default: survey
// substitutes the default for an empty line, which would make clearing a
// value impossible. The keep marker (or retyping the value) leaves it as is.
func (r *Renderer) promptParam(ctx context.Context, ed render.Editor, param model.Param) error {
	current := ed.Value(param.ID)
	answer, err := r.driver.Input(ctx, r.inputConfig(param, current))
	if err != nil {
		return err
	}
	// Unchanged answers are not input changes; untouched params must not
	// gain an empty entry.
	if answer == r.keepMarker || answer == current {
		return nil
	}
	ed.SetValue(param.ID, answer)
	return nil
}

func (r *Renderer) inputConfig(param model.Param, current string) InputConfig {
	cfg := InputConfig{Message: param.Name}
	if current == "" {
		return cfg
	}
	cfg.Message = fmt.Sprintf("%s [%s]", param.Name, current)
	cfg.Help = fmt.Sprintf("Enter %s to keep %q; an empty answer clears the value.", r.keepMarker, current)
	return cfg
}

func (r *Renderer) serialize(params []model.Param, snapshot model.Model) ([]byte, error) {
	if r.outputFormat == OutputFormatPrettyText {
		return prettyText(params, snapshot), nil
	}
	out, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("tui: encode model: %w", err)
	}
	return append(out, '\n'), nil
}

func prettyText(params []model.Param, snapshot model.Model) []byte {
	names := make(map[int]string, len(params))
	for _, param := range params {
		names[param.ID] = param.Name
	}

	var buf bytes.Buffer
	for _, pv := range snapshot.ParamValues {
		name, ok := names[pv.ParamID]
		if !ok {
			name = fmt.Sprintf("#%d", pv.ParamID)
		}
		fmt.Fprintf(&buf, "%s: %s\n", name, pv.Value)
	}
	for _, color := range snapshot.Colors {
		fmt.Fprintf(&buf, "color %d: %s\n", color.ID, color.Name)
	}
	return buf.Bytes()
}
