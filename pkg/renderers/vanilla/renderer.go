package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-compare/pkg/model"
	"github.com/goliatone/go-compare/pkg/render"
	rendertemplate "github.com/goliatone/go-compare/pkg/render/template"
	gotemplate "github.com/goliatone/go-compare/pkg/render/template/gotemplate"
)

const (
	// DefaultBrochureLabel is the anchor text of the brochure download link.
	DefaultBrochureLabel = "Download Brochure"
	// DefaultEmptyLabel is shown in place of the specification panels when
	// the comparison has no spec rows.
	DefaultEmptyLabel = "No specifications available"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	inlineStyles     bool
	stylesheets      []string
	sanitizer        *bluemonday.Policy
	brochureLabel    string
	emptyLabel       string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithDefaultStyles inlines the embedded stylesheet ahead of the markup.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = true
	}
}

// WithStylesheet links an external stylesheet ahead of the markup.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(href); trimmed != "" {
			cfg.stylesheets = append(cfg.stylesheets, trimmed)
		}
	}
}

// WithSanitizer replaces the policy applied to description markup.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.sanitizer = policy
		}
	}
}

// WithBrochureLabel overrides the brochure link text.
func WithBrochureLabel(label string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			cfg.brochureLabel = trimmed
		}
	}
}

// WithEmptyLabel overrides the placeholder row shown when there are no specs.
func WithEmptyLabel(label string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			cfg.emptyLabel = trimmed
		}
	}
}

// Renderer emits the comparison widget as server-rendered HTML: vehicle
// images and titles, the sanitised description, and one tab plus panel per
// spec entry with the controller's active tab marked.
type Renderer struct {
	templates   rendertemplate.TemplateRenderer
	sanitizer   *bluemonday.Policy
	inlineCSS   string
	stylesheets []string
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:    TemplatesFS(),
		brochureLabel: DefaultBrochureLabel,
		emptyLabel:    DefaultEmptyLabel,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.sanitizer == nil {
		cfg.sanitizer = bluemonday.UGCPolicy()
	}

	globals := map[string]any{
		"brochureLabel": cfg.brochureLabel,
		"emptyLabel":    cfg.emptyLabel,
	}
	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithGlobalData(globals),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	} else if err := renderer.GlobalContext(globals); err != nil {
		return nil, fmt.Errorf("vanilla renderer: apply global data: %w", err)
	}

	out := &Renderer{
		templates:   renderer,
		sanitizer:   cfg.sanitizer,
		stylesheets: cfg.stylesheets,
	}
	if cfg.inlineStyles {
		out.inlineCSS = defaultStylesheet()
	}
	return out, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, form model.ComparisonModel, options render.RenderOptions) ([]byte, error) {
	if r == nil || r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := r.view(form, options)
	result, err := r.templates.RenderTemplate(comparisonTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}
