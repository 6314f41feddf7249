package testsupport

import pkgmodel "github.com/goliatone/go-compare/pkg/model"

// SampleModel returns a small, fully populated comparison used by renderer
// tests.
func SampleModel() pkgmodel.ComparisonModel {
	return pkgmodel.ComparisonModel{
		Title:       "Splendor+ vs HF Deluxe",
		Description: "Two <strong>commuters</strong> compared.",
		Left: pkgmodel.Vehicle{
			Title:    "Splendor+",
			ImageRef: "/media/splendor.png",
			Alt:      "Splendor+",
		},
		Right: pkgmodel.Vehicle{
			Title:    "HF Deluxe",
			ImageRef: "/media/deluxe.png",
			Alt:      "HF Deluxe side view",
		},
		Specs: []pkgmodel.SpecEntry{
			{ID: "height-mm", Label: "Height (mm)", LeftValue: "1052", RightValue: "1045"},
			{ID: "weight", Label: "Weight", LeftValue: "112 kg", RightValue: "110 kg"},
			{ID: "colour", Label: "Colour", LeftValue: "Red"},
		},
		BrochureURL: "/docs/brochure.pdf",
		SpecShape:   "structured",
	}
}
