package render

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Render(context.Context, Editor, RenderOptions) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry(namedRenderer("vanilla"), namedRenderer("tui"))

	renderer, err := reg.Get("tui")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "tui" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}
	if !reg.Has("vanilla") {
		t.Fatalf("expected vanilla to be registered")
	}
	if diff := cmp.Diff([]string{"tui", "vanilla"}, reg.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_RejectsDuplicatesAndEmptyNames(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(namedRenderer("vanilla")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(namedRenderer("vanilla")); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := reg.Register(namedRenderer("")); err == nil {
		t.Fatalf("expected empty name error")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	reg := NewRegistry(namedRenderer("vanilla"))

	_, err := reg.Get("preact")
	if !errors.Is(err, ErrUnknownRenderer) {
		t.Fatalf("expected ErrUnknownRenderer, got %v", err)
	}
}

func TestRegistry_MustRegisterPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	NewRegistry(namedRenderer("tui"), namedRenderer("tui"))
}

func TestRegistry_MustGet(t *testing.T) {
	reg := NewRegistry(namedRenderer("vanilla"))
	if got := reg.MustGet("vanilla").Name(); got != "vanilla" {
		t.Fatalf("unexpected renderer %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown renderer")
		}
	}()
	reg.MustGet("preact")
}
