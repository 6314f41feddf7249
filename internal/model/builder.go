package model

import (
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-compare/pkg/fields"
	"github.com/goliatone/go-compare/pkg/specs"
)

// Builder converts authored content into comparison models.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	return &Builder{opts: options.withDefaults()}
}

// Build resolves source and the content derived fallback into one model.
// Every scalar follows the same chain: structured value (source, then the
// fallback's embedded document, then its keyed fields), then the value derived
// from rendered content, then the built-in default. Build performs no I/O and
// identical input always yields an equal model.
func (b *Builder) Build(source map[string]any, fallback Fallback) ComparisonModel {
	if b == nil {
		b = New(Options{})
	}
	layers := structuredLayers(source, fallback)

	left, right := b.vehicles(layers, fallback)
	entries, shape := b.opts.Normalizer.NormalizeShape(b.section(layers, fallback))

	form := ComparisonModel{
		Title: firstNonEmpty(
			resolveText(layers, TitleKeys),
			strings.TrimSpace(fallback.Heading),
			b.opts.DefaultTitle,
		),
		Description: firstNonEmpty(
			resolveText(layers, DescriptionKeys),
			strings.TrimSpace(fallback.DescriptionHTML),
		),
		Left:        left,
		Right:       right,
		Specs:       entries,
		BrochureURL: b.resolveImage(layers, BrochureKeys),
		SpecShape:   shape,
	}

	b.opts.Logger.Debug("comparison model built",
		zap.String("title", form.Title),
		zap.Int("specs", len(form.Specs)),
		zap.String("spec_shape", string(shape)),
	)
	return form
}

func (b *Builder) vehicles(layers []map[string]any, fallback Fallback) (Vehicle, Vehicle) {
	left := Vehicle{Title: resolveText(layers, LeftTitleKeys)}
	right := Vehicle{Title: resolveText(layers, RightTitleKeys)}

	var leftFallbackAlt, rightFallbackAlt string
	left.ImageRef = b.resolveImage(layers, LeftImageKeys)
	if left.ImageRef == "" {
		if img, ok := fallback.Image(0); ok {
			left.ImageRef, leftFallbackAlt = img.Src, img.Alt
		}
	}
	right.ImageRef = b.resolveImage(layers, RightImageKeys)
	if right.ImageRef == "" {
		img, ok := fallback.Image(1)
		if !ok {
			img, ok = fallback.Image(0)
		}
		if ok {
			right.ImageRef, rightFallbackAlt = img.Src, img.Alt
		}
	}

	left.Alt = firstNonEmpty(resolveText(layers, LeftAltKeys), leftFallbackAlt, left.Title, b.opts.DefaultLeftAlt)
	right.Alt = firstNonEmpty(resolveText(layers, RightAltKeys), rightFallbackAlt, right.Title, b.opts.DefaultRightAlt)
	return left, right
}

// section picks each spec representation from the highest ranked layer that
// carries it. Table rows and list lines scraped from rendered content are
// used only when no layer authored them.
func (b *Builder) section(layers []map[string]any, fallback Fallback) specs.Section {
	var section specs.Section
	flat := make(map[string]any)
	for idx := len(layers) - 1; idx >= 0; idx-- {
		for key, value := range layers[idx] {
			flat[key] = value
		}
	}
	section.Flat = flat

	for _, layer := range layers {
		found := specs.SectionFrom(layer)
		if section.Items == nil {
			section.Items = found.Items
		}
		if section.Groups == nil {
			section.Groups = found.Groups
		}
		if section.Rows == nil {
			section.Rows = found.Rows
		}
		if section.Lines == nil {
			section.Lines = found.Lines
		}
	}
	if section.Rows == nil && len(fallback.Rows) > 0 {
		section.Rows = fallback.Rows
	}
	if section.Lines == nil && len(fallback.Lines) > 0 {
		section.Lines = fallback.Lines
	}
	return section
}

func (b *Builder) resolveImage(layers []map[string]any, keys fields.Keys) string {
	for _, layer := range layers {
		for _, key := range keys {
			value, ok := fields.Lookup(layer, fields.Keys{key})
			if !ok {
				continue
			}
			if ref := strings.TrimSpace(b.opts.Images.Resolve(value)); ref != "" {
				return ref
			}
		}
	}
	return ""
}

func structuredLayers(source map[string]any, fallback Fallback) []map[string]any {
	layers := make([]map[string]any, 0, 3)
	for _, layer := range []map[string]any{source, fallback.Document, fallback.Fields} {
		if len(layer) > 0 {
			layers = append(layers, layer)
		}
	}
	return layers
}

func resolveText(layers []map[string]any, keys fields.Keys) string {
	for _, layer := range layers {
		if text := strings.TrimSpace(fields.String(layer, keys, "")); text != "" {
			return text
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
