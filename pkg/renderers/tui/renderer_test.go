package tui

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-parameditor/pkg/editor"
	"github.com/goliatone/go-parameditor/pkg/model"
	"github.com/goliatone/go-parameditor/pkg/render"
	"github.com/goliatone/go-parameditor/pkg/testsupport"
)

type stubDriver struct {
	inputs       []string
	confirm      []bool
	prompts      []InputConfig
	infoMessages []string
	inputPos     int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func demoEditor() *editor.Editor {
	return editor.New([]model.Param{
		{ID: 1, Name: "Purpose", Type: model.ParamTypeString},
		{ID: 2, Name: "Length", Type: model.ParamTypeString},
	}, model.Model{
		ParamValues: []model.ParamValue{{ParamID: 1, Value: "casual"}},
		Colors:      []model.Color{{ID: 9, Name: "red"}},
	})
}

func decodeModel(t *testing.T, out []byte) model.Model {
	t.Helper()
	var got model.Model
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	return got
}

func TestRender_AppliesChangedAnswers(t *testing.T) {
	driver := &stubDriver{inputs: []string{"formal", "maxi"}}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ed := demoEditor()

	out, err := r.Render(context.Background(), ed, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := model.Model{
		ParamValues: []model.ParamValue{
			{ParamID: 1, Value: "formal"},
			{ParamID: 2, Value: "maxi"},
		},
		Colors: []model.Color{{ID: 9, Name: "red"}},
	}
	if diff := cmp.Diff(want, decodeModel(t, out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, ed.Snapshot()); diff != "" {
		t.Fatalf("editor mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_PromptsShowCurrentValues(t *testing.T) {
	driver := &stubDriver{inputs: []string{"casual", ""}}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	if _, err := r.Render(context.Background(), demoEditor(), render.RenderOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}

	want := []InputConfig{
		{Message: "Purpose [casual]", Help: `Enter = to keep "casual"; an empty answer clears the value.`},
		{Message: "Length"},
	}
	if diff := cmp.Diff(want, driver.prompts); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_UnchangedAnswersAddNoEntries(t *testing.T) {
	driver := &stubDriver{inputs: []string{"casual", ""}}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ed := demoEditor()

	out, err := r.Render(context.Background(), ed, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := []model.ParamValue{{ParamID: 1, Value: "casual"}}
	if diff := cmp.Diff(want, decodeModel(t, out).ParamValues); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_EmptyAnswerClearsSeededValue(t *testing.T) {
	driver := &stubDriver{inputs: []string{"", ""}}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ed := demoEditor()

	if _, err := r.Render(context.Background(), ed, render.RenderOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}

	want := []model.ParamValue{{ParamID: 1, Value: ""}}
	if diff := cmp.Diff(want, ed.Snapshot().ParamValues); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_KeepMarkerLeavesValue(t *testing.T) {
	driver := &stubDriver{inputs: []string{"~", "~"}}
	r, err := New(WithPromptDriver(driver), WithKeepMarker("~"))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ed := demoEditor()

	if _, err := r.Render(context.Background(), ed, render.RenderOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}

	want := []model.ParamValue{{ParamID: 1, Value: "casual"}}
	if diff := cmp.Diff(want, ed.Snapshot().ParamValues); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_ConfirmDeclinedAborts(t *testing.T) {
	driver := &stubDriver{inputs: []string{"formal", ""}, confirm: []bool{false}}
	r, err := New(WithPromptDriver(driver), WithConfirm("Get model?"))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	_, err = r.Render(context.Background(), demoEditor(), render.RenderOptions{})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestRender_TitleAndNotice(t *testing.T) {
	driver := &stubDriver{inputs: []string{"casual", ""}, confirm: []bool{true}}
	r, err := New(
		WithPromptDriver(driver),
		WithConfirm("Get model?"),
		WithNotice("Model data logged to console"),
	)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	if _, err := r.Render(context.Background(), demoEditor(), render.RenderOptions{Title: "Parameters"}); err != nil {
		t.Fatalf("render: %v", err)
	}

	want := []string{"Parameters", "Model data logged to console"}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_PrettyText(t *testing.T) {
	driver := &stubDriver{inputs: []string{"formal", "maxi"}}
	r, err := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatPrettyText))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(testsupport.Context(), demoEditor(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	golden := filepath.Join("testdata", "pretty.golden")
	if testsupport.WriteMaybeGolden(t, golden, out) {
		return
	}
	want := testsupport.MustReadGoldenString(t, golden)
	if diff := testsupport.CompareGolden(want, string(out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if r.ContentType() != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}
}

func TestRender_DriverErrorStopsSession(t *testing.T) {
	driver := &stubDriver{inputs: []string{"formal"}}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ed := demoEditor()

	if _, err := r.Render(context.Background(), ed, render.RenderOptions{}); err == nil {
		t.Fatalf("expected error when the driver runs out of answers")
	}
	if got := ed.Value(1); got != "formal" {
		t.Fatalf("answers before the failure stay applied, got %q", got)
	}
}

func TestRender_CanceledContext(t *testing.T) {
	r, err := New(WithPromptDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Render(ctx, demoEditor(), render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	if _, err := New(WithPromptDriver(&stubDriver{}), WithOutputFormat("xml")); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
