package specs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Height (mm)":      "height-mm",
		"Colour":           "colour",
		"  Top   Speed  ":  "top-speed",
		"Fuel_Tank--Size":  "fuel-tank-size",
		"Kerb weight (kg)": "kerb-weight-kg",
		"Fuel & Oil":       "fuel-oil",
		"Price @ launch":   "price-launch",
		"50% off":          "50-off",
		"Crème brûlée":     "creme-brulee",
		"!!!":              "",
		"":                 "",
	}
	for label, want := range cases {
		if got := Slugify(label); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", label, got, want)
		}
	}
}

func TestAssignIDs_DisambiguatesCollisions(t *testing.T) {
	entries := []Entry{
		{Label: "Colour", LeftValue: "Red"},
		{Label: "Colour", LeftValue: "Blue"},
		{Label: "colour 2"},
		{Label: "COLOUR"},
		{Label: ""},
		{Label: "???", LeftValue: "x"},
	}

	got := AssignIDs(entries)
	var ids []string
	for _, entry := range got {
		ids = append(ids, entry.ID)
	}
	want := []string{"colour", "colour-2", "colour-2-2", "colour-3", "spec", "spec-2"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	if entries[0].ID != "" {
		t.Fatalf("expected input entries to be left untouched")
	}
}

func TestAssignIDs_Deterministic(t *testing.T) {
	entries := []Entry{{Label: "A"}, {Label: "B"}, {Label: "A"}}
	if diff := cmp.Diff(AssignIDs(entries), AssignIDs(entries)); diff != "" {
		t.Fatalf("expected identical ids across runs (-first +second):\n%s", diff)
	}
	if got := AssignIDs(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
}

func TestLabelize(t *testing.T) {
	cases := map[string]string{
		"fuelCapacity": "Fuel capacity",
		"topSpeed":     "Top speed",
		"engine":       "Engine",
		"seat_height":  "Seat height",
		"":             "",
	}
	for stem, want := range cases {
		if got := Labelize(stem); got != want {
			t.Fatalf("Labelize(%q) = %q, want %q", stem, got, want)
		}
	}
}
