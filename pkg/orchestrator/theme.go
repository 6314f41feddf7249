package orchestrator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// WithThemeSelector resolves theme/variant choices through selector ahead of
// rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeManifests registers an in-memory selector over manifests. The
// first manifest becomes the default theme unless defaultTheme is set.
func WithThemeManifests(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) Option {
	return func(o *Orchestrator) {
		o.themeSelector = NewManifestSelector(manifests...)
		o.defaultTheme = defaultTheme
		o.defaultVariant = defaultVariant
	}
}

// WithThemeDefaults sets the theme and variant used when a request names none.
func WithThemeDefaults(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = name
		o.defaultVariant = variant
	}
}

// WithThemeFallbacks supplies partials used when the selected theme does not
// override them.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = copyStrings(fallbacks)
	}
}

func (o *Orchestrator) themeConfig(req Request) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}
	name := firstNonEmpty(req.ThemeName, o.defaultTheme)
	variant := firstNonEmpty(req.ThemeVariant, o.defaultVariant)

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	if selection == nil {
		return nil, nil
	}
	return rendererConfig(selection, o.themeFallbacks), nil
}

// rendererConfig flattens a selection into the renderer-facing config:
// fallbacks, then manifest values, then variant overrides. Tokens are also
// exposed as CSS custom properties.
func rendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	partials := copyStrings(fallbacks)
	tokens := map[string]string{}
	files := map[string]string{}
	prefix := ""

	if manifest := selection.Manifest; manifest != nil {
		mergeStrings(partials, manifest.Templates)
		mergeStrings(tokens, manifest.Tokens)
		mergeStrings(files, manifest.Assets.Files)
		prefix = manifest.Assets.Prefix

		if variant, ok := manifest.Variants[selection.Variant]; ok {
			mergeStrings(partials, variant.Templates)
			mergeStrings(tokens, variant.Tokens)
			mergeStrings(files, variant.Assets.Files)
			if variant.Assets.Prefix != "" {
				prefix = variant.Assets.Prefix
			}
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+strings.TrimPrefix(key, "--")] = value
	}

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: assetResolver(prefix, files),
	}
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file := strings.TrimSpace(files[key])
		if file == "" {
			return ""
		}
		if prefix == "" || strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
			return file
		}
		return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(file, "/")
	}
}

// ErrThemeNotFound reports a selection for a theme that was never registered.
var ErrThemeNotFound = errors.New("orchestrator: theme not found")

// ManifestSelector is an in-memory theme.ThemeSelector over a fixed set of
// manifests.
type ManifestSelector struct {
	manifests map[string]*theme.Manifest
	fallback  string
}

var _ theme.ThemeSelector = (*ManifestSelector)(nil)

// NewManifestSelector indexes manifests by name, ignoring nil and unnamed
// ones.
func NewManifestSelector(manifests ...*theme.Manifest) *ManifestSelector {
	s := &ManifestSelector{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, manifest := range manifests {
		if manifest == nil || manifest.Name == "" {
			continue
		}
		if s.fallback == "" {
			s.fallback = manifest.Name
		}
		s.manifests[manifest.Name] = manifest
	}
	return s
}

// Names lists registered theme names.
func (s *ManifestSelector) Names() []string {
	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select returns the named theme, or the first registered one when name is
// empty. Unknown variants select the base manifest.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if name == "" {
		name = s.fallback
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	if _, ok := manifest.Variants[variant]; !ok {
		variant = ""
	}
	return &theme.Selection{Theme: manifest.Name, Variant: variant, Manifest: manifest}, nil
}

func copyStrings(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	mergeStrings(out, in)
	return out
}

func mergeStrings(dst, src map[string]string) {
	for key, value := range src {
		dst[key] = value
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
