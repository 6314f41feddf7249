package specs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNormalize_ExplicitListWinsOverTable(t *testing.T) {
	section := Section{
		Items: []any{
			map[string]any{"label": "Height (mm)", "leftValue": "1052", "rightValue": "1045"},
		},
		Rows: []any{
			[]any{"1", "Ignored", "2"},
		},
	}

	got, shape := New().NormalizeShape(section)
	want := []Entry{{ID: "height-mm", Label: "Height (mm)", LeftValue: "1052", RightValue: "1045"}}
	if shape != ShapeStructured {
		t.Fatalf("expected structured shape, got %q", shape)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_LegacyKeySpellings(t *testing.T) {
	section := Section{
		Items: []any{
			map[string]any{"spec-label": "Engine", "left-bike-value": "97.2cc", "right-bike-value": "97cc"},
			map[string]any{"spec_label": "Power", "left_bike_value": "8 bhp", "right_bike_value": float64(8)},
			map[string]any{"specLabel": "Torque", "leftBikeValue": "8.05 Nm"},
			map[string]any{"unrelated": "row"},
			"not an object",
		},
	}

	got := New().Normalize(section)
	want := []Entry{
		{ID: "engine", Label: "Engine", LeftValue: "97.2cc", RightValue: "97cc"},
		{ID: "power", Label: "Power", LeftValue: "8 bhp", RightValue: "8"},
		{ID: "torque", Label: "Torque", LeftValue: "8.05 Nm"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_GroupedListFlattensInOrder(t *testing.T) {
	section := Section{
		Groups: []any{
			map[string]any{
				"title": "Engine",
				"specs": []any{
					map[string]any{"label": "Displacement", "leftValue": "97.2cc", "rightValue": "97.2cc"},
					map[string]any{"label": "Power", "leftValue": "8.02 PS", "rightValue": "8.02 PS"},
				},
			},
			map[string]any{
				"title": "Dimensions",
				"items": []map[string]any{
					{"label": "Weight", "leftValue": "112 kg", "rightValue": "110 kg"},
				},
			},
		},
	}

	got, shape := New().NormalizeShape(section)
	if shape != ShapeGrouped {
		t.Fatalf("expected grouped shape, got %q", shape)
	}
	want := []Entry{
		{ID: "displacement", Label: "Displacement", LeftValue: "97.2cc", RightValue: "97.2cc"},
		{ID: "power", Label: "Power", LeftValue: "8.02 PS", RightValue: "8.02 PS"},
		{ID: "weight", Label: "Weight", LeftValue: "112 kg", RightValue: "110 kg"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_GroupWrappersInsideExplicitList(t *testing.T) {
	section := Section{
		Items: []any{
			map[string]any{
				"title":    "Engine",
				"children": []any{map[string]any{"label": "Power", "leftValue": "8", "rightValue": "7"}},
			},
		},
	}

	got, shape := New().NormalizeShape(section)
	if shape != ShapeGrouped {
		t.Fatalf("expected wrappers to be treated as groups, got %q", shape)
	}
	if len(got) != 1 || got[0].Label != "Power" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestNormalize_TableRows(t *testing.T) {
	section := Section{
		Rows: [][]string{
			{"1052", "Height (mm)", "1045"},
			{"Colour", "Red"},
			{"lonely"},
			{"", "", ""},
			{" 2000 ", " Length (mm) ", " 1980 ", "extra"},
		},
	}

	got, shape := New().NormalizeShape(section)
	if shape != ShapeTabular {
		t.Fatalf("expected tabular shape, got %q", shape)
	}
	want := []Entry{
		{ID: "height-mm", Label: "Height (mm)", LeftValue: "1052", RightValue: "1045"},
		{ID: "colour", Label: "Colour", LeftValue: "Red"},
		{ID: "length-mm", Label: "Length (mm)", LeftValue: "2000", RightValue: "1980"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_DelimitedLines(t *testing.T) {
	section := Section{
		Lines: []any{
			"Weight - 112 kg - 110 kg",
			"Colour: Red",
			"Mileage – 70 kmpl — 65 kmpl",
			"Seat height:790 mm:785 mm",
		},
	}

	got, shape := New().NormalizeShape(section)
	if shape != ShapeDelimited {
		t.Fatalf("expected delimited shape, got %q", shape)
	}
	want := []Entry{
		{ID: "weight", Label: "Weight", LeftValue: "112 kg", RightValue: "110 kg"},
		{ID: "mileage", Label: "Mileage", LeftValue: "70 kmpl", RightValue: "65 kmpl"},
		{ID: "seat-height", Label: "Seat height", LeftValue: "790 mm", RightValue: "785 mm"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_DelimitedText(t *testing.T) {
	section := Section{Lines: "Weight - 112 kg - 110 kg\nColour - Red - Black"}

	got := New().Normalize(section)
	if len(got) != 2 || got[1].ID != "colour" || got[1].RightValue != "Black" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}

func TestNormalize_FlatAttributes(t *testing.T) {
	section := Section{
		Flat: map[string]any{
			"title":              "Compare",
			"leftEngine":         "97.2cc",
			"right-engine":       "97cc",
			"left_fuel_capacity": "9.8 L",
			"leftPrice":          "",
		},
	}

	got, shape := New().NormalizeShape(section)
	if shape != ShapeFlat {
		t.Fatalf("expected flat shape, got %q", shape)
	}
	want := []Entry{
		{ID: "engine", Label: "Engine", LeftValue: "97.2cc", RightValue: "97cc"},
		{ID: "fuel-capacity", Label: "Fuel capacity", LeftValue: "9.8 L"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_CustomAttributes(t *testing.T) {
	normalizer := New(WithAttributes(Attribute{Stem: "groundClearance", Label: "Ground clearance (mm)"}))
	got := normalizer.Normalize(Section{Flat: map[string]any{
		"leftGroundClearance": "165",
		"leftEngine":          "ignored: not in table",
	}})

	want := []Entry{{ID: "ground-clearance-mm", Label: "Ground clearance (mm)", LeftValue: "165"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_MalformedEmbeddedDocumentFallsThrough(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	normalizer := New(WithLogger(zap.New(core)))

	section := Section{
		Items: `[{"label": "Height", "leftValue": `,
		Rows:  []any{[]any{"Colour", "Red"}},
	}

	got, shape := normalizer.NormalizeShape(section)
	if shape != ShapeTabular {
		t.Fatalf("expected fall through to tabular, got %q", shape)
	}
	if len(got) != 1 || got[0].Label != "Colour" {
		t.Fatalf("unexpected entries: %+v", got)
	}
	if logs.FilterMessage("malformed structured spec data").Len() == 0 {
		t.Fatalf("expected malformed document to be logged")
	}
}

func TestNormalize_EmbeddedDocument(t *testing.T) {
	section := Section{
		Items: `{"specs": [{"label": "Height", "leftValue": "1052", "rightValue": "1045"}]}`,
	}

	got := New().Normalize(section)
	want := []Entry{{ID: "height", Label: "Height", LeftValue: "1052", RightValue: "1045"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_EmptySection(t *testing.T) {
	got, shape := New().NormalizeShape(Section{})
	if shape != ShapeNone {
		t.Fatalf("expected no shape, got %q", shape)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestSectionFrom(t *testing.T) {
	source := map[string]any{
		"comparison_items": []any{map[string]any{"label": "A"}},
		"table":            []any{[]any{"a", "b"}},
		"list":             "x - y - z",
	}

	section := SectionFrom(source)
	if section.Items == nil || section.Rows == nil || section.Lines == nil {
		t.Fatalf("expected representations to be collected: %+v", section)
	}
	if section.Groups != nil {
		t.Fatalf("expected no groups, got %#v", section.Groups)
	}
	if !SectionFrom(nil).Empty() {
		t.Fatalf("expected nil source to produce an empty section")
	}
}
