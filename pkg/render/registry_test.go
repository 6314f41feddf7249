package render

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-compare/pkg/model"
)

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, model.ComparisonModel, RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "vanilla"})
	registry.MustRegister(stubRenderer{name: "json"})

	if err := registry.Register(stubRenderer{name: "json"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected unnamed renderer error")
	}

	if diff := cmp.Diff([]string{"json", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("vanilla") || registry.Has("pdf") {
		t.Fatalf("unexpected Has results")
	}
	if _, err := registry.Get("pdf"); !errors.Is(err, ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestRenderOptions_Controller(t *testing.T) {
	form := model.ComparisonModel{Specs: []model.SpecEntry{
		{ID: "engine", Label: "Engine"},
		{ID: "power", Label: "Power"},
	}}

	controller := RenderOptions{ActiveTab: "power"}.Controller(form)
	if active, _ := controller.Active(); active != "power" {
		t.Fatalf("expected requested tab active, got %q", active)
	}

	core, logs := observer.New(zapcore.DebugLevel)
	controller = RenderOptions{ActiveTab: "missing", Logger: zap.New(core)}.Controller(form)
	if active, _ := controller.Active(); active != "engine" {
		t.Fatalf("expected first tab to stay active, got %q", active)
	}
	if logs.FilterMessage("ignoring requested tab").Len() != 1 {
		t.Fatalf("expected ignored tab to be logged")
	}

	existing := RenderOptions{ActiveTab: "power"}.Controller(form)
	if got := (RenderOptions{Tabs: existing, ActiveTab: "engine"}).Controller(form); got != existing {
		t.Fatalf("expected supplied controller to be reused")
	}
}
