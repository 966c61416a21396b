package parameditor

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-parameditor/pkg/document"
	"github.com/goliatone/go-parameditor/pkg/model"
	"github.com/goliatone/go-parameditor/pkg/render"
	"github.com/goliatone/go-parameditor/pkg/renderers/tui"
)

type scriptedDriver struct {
	answers []string
}

func (d *scriptedDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	if len(d.answers) == 0 {
		return cfg.Default, nil
	}
	answer := d.answers[0]
	d.answers = d.answers[1:]
	return answer, nil
}

func (d *scriptedDriver) Confirm(context.Context, tui.ConfirmConfig) (bool, error) {
	return true, nil
}

func (d *scriptedDriver) Info(context.Context, string) error {
	return nil
}

func demoDocument(t *testing.T) document.Document {
	t.Helper()
	doc, err := document.Normalize(document.Document{
		Params: []model.Param{
			{ID: 1, Name: "Purpose"},
			{ID: 2, Name: "Length"},
		},
		Model: model.Model{ParamValues: []model.ParamValue{{ParamID: 1, Value: "casual"}}},
	})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	return doc
}

func TestRenderHTML(t *testing.T) {
	out, err := RenderHTML(context.Background(), demoDocument(t), RenderOptions{Title: "Parameters"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	for _, want := range []string{`value="casual"`, "Purpose", "Length"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
}

func TestRender_PromptRendererUpdatesEditor(t *testing.T) {
	doc := demoDocument(t)
	ed := NewEditor(doc.Params, doc.Model)

	out, err := Render(context.Background(), ed, "tui", RenderOptions{},
		WithTUIOptions(tui.WithPromptDriver(&scriptedDriver{answers: []string{"casual", "maxi"}})))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var got model.Model
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := model.Model{
		ParamValues: []model.ParamValue{{ParamID: 1, Value: "casual"}, {ParamID: 2, Value: "maxi"}},
		Colors:      []model.Color{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_UnknownRenderer(t *testing.T) {
	ed := NewEditor(nil, model.Model{})
	_, err := Render(context.Background(), ed, "preact", RenderOptions{}, WithRegistry(render.NewRegistry()))
	if !errors.Is(err, render.ErrUnknownRenderer) {
		t.Fatalf("expected ErrUnknownRenderer, got %v", err)
	}
}

func TestDefaultRegistryNames(t *testing.T) {
	registry, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if diff := cmp.Diff([]string{"terminal", "tui", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestEmbeddedFilesystems(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedAssets(), "parameditor.css"); err != nil {
		t.Fatalf("expected stylesheet: %v", err)
	}
	if _, err := fs.ReadFile(EmbeddedTemplates(), "templates/param_editor.tmpl"); err != nil {
		t.Fatalf("expected template: %v", err)
	}
}
