package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-compare/pkg/specs"
)

func TestBuilder_StructuredSource(t *testing.T) {
	source := map[string]any{
		"title":       "Splendor vs Passion",
		"description": "<p>Two commuters.</p>",
		"leftTitle":   "Splendor Plus",
		"leftImage":   map[string]any{"_path": "/content/dam/splendor.png"},
		"rightTitle":  "Passion Pro",
		"rightImage":  []any{"/content/dam/passion.png"},
		"rightAlt":    "Passion side view",
		"brochureUrl": "/docs/brochure.pdf",
		"specs": []any{
			map[string]any{"label": "Height (mm)", "leftValue": "1052", "rightValue": "1045"},
		},
	}

	got := New(Options{}).Build(source, Fallback{})
	want := ComparisonModel{
		Title:       "Splendor vs Passion",
		Description: "<p>Two commuters.</p>",
		Left:        Vehicle{Title: "Splendor Plus", ImageRef: "/content/dam/splendor.png", Alt: "Splendor Plus"},
		Right:       Vehicle{Title: "Passion Pro", ImageRef: "/content/dam/passion.png", Alt: "Passion side view"},
		Specs:       []SpecEntry{{ID: "height-mm", Label: "Height (mm)", LeftValue: "1052", RightValue: "1045"}},
		BrochureURL: "/docs/brochure.pdf",
		SpecShape:   specs.ShapeStructured,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_EmptyInputUsesDefaults(t *testing.T) {
	got := New(Options{}).Build(map[string]any{}, Fallback{})
	want := ComparisonModel{
		Title: DefaultTitle,
		Left:  Vehicle{Alt: DefaultLeftAlt},
		Right: Vehicle{Alt: DefaultRightAlt},
		Specs: []SpecEntry{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_NilBuilderAndNilSource(t *testing.T) {
	var builder *Builder
	got := builder.Build(nil, Fallback{})
	if got.Title != DefaultTitle || got.Specs == nil {
		t.Fatalf("unexpected model: %+v", got)
	}
}

func TestBuilder_Idempotent(t *testing.T) {
	source := map[string]any{
		"compare-title": "Legacy",
		"specs": []any{
			map[string]any{"label": "Colour", "leftValue": "Red"},
			map[string]any{"label": "Colour", "leftValue": "Blue"},
		},
	}
	builder := New(Options{})
	first := builder.Build(source, Fallback{})
	second := builder.Build(source, Fallback{})
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("expected identical models (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"colour", "colour-2"}, first.SpecIDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_StructuredValuesOutrankFallback(t *testing.T) {
	source := map[string]any{
		"title":     "Authored",
		"leftImage": "/authored.png",
	}
	fallback := Fallback{
		Heading:         "Rendered heading",
		DescriptionHTML: "Rendered <b>copy</b>",
		Images: []FallbackImage{
			{Src: "/rendered-left.png", Alt: "Rendered left"},
			{Src: "/rendered-right.png", Alt: "Rendered right"},
		},
		Rows: [][]string{{"1052", "Height (mm)", "1045"}},
	}

	got := New(Options{}).Build(source, fallback)
	if got.Title != "Authored" {
		t.Fatalf("expected authored title, got %q", got.Title)
	}
	if got.Description != "Rendered <b>copy</b>" {
		t.Fatalf("expected rendered description, got %q", got.Description)
	}
	if got.Left.ImageRef != "/authored.png" || got.Left.Alt != DefaultLeftAlt {
		t.Fatalf("unexpected left vehicle: %+v", got.Left)
	}
	if got.Right.ImageRef != "/rendered-right.png" || got.Right.Alt != "Rendered right" {
		t.Fatalf("unexpected right vehicle: %+v", got.Right)
	}
	if got.SpecShape != specs.ShapeTabular || len(got.Specs) != 1 || got.Specs[0].ID != "height-mm" {
		t.Fatalf("unexpected specs: %+v (%s)", got.Specs, got.SpecShape)
	}
}

func TestBuilder_SingleFallbackImageServesBothSides(t *testing.T) {
	fallback := Fallback{Images: []FallbackImage{{Src: "/only.png"}}}

	got := New(Options{}).Build(nil, fallback)
	if got.Left.ImageRef != "/only.png" || got.Right.ImageRef != "/only.png" {
		t.Fatalf("expected single image on both sides: %+v / %+v", got.Left, got.Right)
	}
	if got.Left.Alt != DefaultLeftAlt || got.Right.Alt != DefaultRightAlt {
		t.Fatalf("expected default alts: %q / %q", got.Left.Alt, got.Right.Alt)
	}
}

func TestBuilder_DocumentAndFieldLayers(t *testing.T) {
	fallback := Fallback{
		Heading: "Rendered",
		Document: map[string]any{
			"title": "From document",
			"spec-groups": []any{
				map[string]any{"title": "Engine", "items": []any{
					map[string]any{"label": "Power", "leftValue": "8 bhp", "rightValue": "9 bhp"},
				}},
			},
		},
		Fields: map[string]any{
			"title":     "From fields",
			"leftTitle": "Field left",
		},
	}

	got := New(Options{}).Build(map[string]any{"rightTitle": "Source right"}, fallback)
	if got.Title != "From document" {
		t.Fatalf("expected document title, got %q", got.Title)
	}
	if got.Left.Title != "Field left" || got.Right.Title != "Source right" {
		t.Fatalf("unexpected titles: %q / %q", got.Left.Title, got.Right.Title)
	}
	if got.SpecShape != specs.ShapeGrouped || got.Specs[0].ID != "power" {
		t.Fatalf("unexpected specs: %+v", got.Specs)
	}
}

func TestBuilder_FlatAttributesAcrossLayers(t *testing.T) {
	source := map[string]any{"leftEngine": "97.2cc"}
	fallback := Fallback{Fields: map[string]any{"leftEngine": "ignored", "right-engine": "97cc"}}

	got := New(Options{}).Build(source, fallback)
	want := []SpecEntry{{ID: "engine", Label: "Engine", LeftValue: "97.2cc", RightValue: "97cc"}}
	if diff := cmp.Diff(want, got.Specs); diff != "" {
		t.Fatalf("specs mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_CustomDefaultsAndLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	builder := New(Options{
		DefaultTitle: "Side by side",
		Logger:       zap.New(core),
	})

	got := builder.Build(map[string]any{"leftImage": 42}, Fallback{})
	if got.Title != "Side by side" {
		t.Fatalf("expected custom default title, got %q", got.Title)
	}
	if logs.FilterMessage("comparison model built").Len() != 1 {
		t.Fatalf("expected build to be logged once")
	}
	if logs.FilterMessage("unresolvable image reference").Len() == 0 {
		t.Fatalf("expected unresolvable image to be logged")
	}
}

func TestComparisonModel_CloneAndLookup(t *testing.T) {
	original := New(Options{}).Build(map[string]any{
		"specs": []any{map[string]any{"label": "Weight", "leftValue": "112 kg"}},
	}, Fallback{})

	clone := original.Clone()
	clone.Specs[0].LeftValue = "changed"
	if original.Specs[0].LeftValue != "112 kg" {
		t.Fatalf("clone shares specs with original")
	}
	if _, ok := original.Spec("weight"); !ok {
		t.Fatalf("expected weight spec")
	}
	if _, ok := original.Spec("missing"); ok {
		t.Fatalf("unexpected spec lookup hit")
	}
}
