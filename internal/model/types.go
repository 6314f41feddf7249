package model

import "github.com/goliatone/go-compare/pkg/specs"

// SpecEntry is one labelled left/right row of the comparison.
type SpecEntry = specs.Entry

// Vehicle is one of the two compared entities.
type Vehicle struct {
	Title    string `json:"title"`
	ImageRef string `json:"imageRef"`
	Alt      string `json:"alt"`
}

// ComparisonModel is the canonical representation every authoring shape
// converges to. String fields are never absent, only empty, and Specs is
// never nil. Builders return a fresh value per call; callers treat it as
// read-only and rebuild instead of mutating.
type ComparisonModel struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Left        Vehicle     `json:"left"`
	Right       Vehicle     `json:"right"`
	Specs       []SpecEntry `json:"specs"`
	// BrochureURL links the downloadable brochure shown beside the
	// specification panels.
	BrochureURL string `json:"brochureUrl"`
	// SpecShape records which authored representation produced Specs.
	SpecShape specs.Shape `json:"specShape"`
}

// SpecIDs lists the spec identifiers in authoring order.
func (m ComparisonModel) SpecIDs() []string {
	ids := make([]string, len(m.Specs))
	for idx, spec := range m.Specs {
		ids[idx] = spec.ID
	}
	return ids
}

// Spec returns the entry with the given id.
func (m ComparisonModel) Spec(id string) (SpecEntry, bool) {
	for _, spec := range m.Specs {
		if spec.ID == id {
			return spec, true
		}
	}
	return SpecEntry{}, false
}

// Clone returns a copy that shares no mutable state with m.
func (m ComparisonModel) Clone() ComparisonModel {
	out := m
	out.Specs = append(make([]SpecEntry, 0, len(m.Specs)), m.Specs...)
	return out
}

// FallbackImage is an image found in previously rendered content.
type FallbackImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Fallback carries content derived from an earlier rendering of the widget.
// It is consulted only where no structured value was authored.
type Fallback struct {
	Heading         string          `json:"heading"`
	DescriptionHTML string          `json:"descriptionHtml"`
	Images          []FallbackImage `json:"images"`
	Rows            [][]string      `json:"rows"`
	Lines           []string        `json:"lines"`
	// Document is structured data embedded in the rendered content (for
	// example a JSON script payload). It ranks below the caller's source.
	Document map[string]any `json:"document"`
	// Fields are individually keyed authored values found in the rendered
	// content. They rank below Document.
	Fields map[string]any `json:"fields"`
}

// Image returns the fallback image at idx.
func (f Fallback) Image(idx int) (FallbackImage, bool) {
	if idx < 0 || idx >= len(f.Images) || f.Images[idx].Src == "" {
		return FallbackImage{}, false
	}
	return f.Images[idx], true
}
