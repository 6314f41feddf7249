// Package compare renders side-by-side comparisons of two entities (typically
// vehicles) from loosely structured authored content.
//
// The root package re-exports the most common entry points; see
// pkg/orchestrator for the full pipeline and pkg/tabs for the panel state
// machine.
package compare

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-compare/pkg/model"
	"github.com/goliatone/go-compare/pkg/orchestrator"
	"github.com/goliatone/go-compare/pkg/render"
)

// ComparisonModel is the canonical model every authoring shape converges to.
type ComparisonModel = model.ComparisonModel

// Fallback carries values scraped from previously rendered markup.
type Fallback = model.Fallback

// Request describes one resolve/render call.
type Request = orchestrator.Request

// Result pairs a resolved model with its tab controller.
type Result = orchestrator.Result

// RenderOptions describes per-request overrides passed to renderers.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// BuildModel converts authored content and an optional fallback into a
// comparison model using the default builder.
func BuildModel(source map[string]any, fallback Fallback) ComparisonModel {
	return model.NewBuilder().Build(source, fallback)
}

// Resolve builds the comparison model for source and fragment (previously
// rendered markup, may be empty) without rendering it.
func Resolve(ctx context.Context, source map[string]any, fragment string, options ...orchestrator.Option) (Result, error) {
	return orchestrator.New(options...).Resolve(ctx, Request{
		Source:   source,
		Fragment: fragment,
	})
}

// GenerateHTML renders source with the named renderer ("vanilla" when
// empty). It is the simplest entry point for callers that just want markup.
func GenerateHTML(ctx context.Context, source map[string]any, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// GenerateFile renders the JSON or YAML content file at path.
func GenerateFile(ctx context.Context, path, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, Request{
		Path:     path,
		Renderer: rendererName,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeManifests registers in-memory theme manifests with the
// orchestrator.
func WithThemeManifests(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) orchestrator.Option {
	return orchestrator.WithThemeManifests(defaultTheme, defaultVariant, manifests...)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
