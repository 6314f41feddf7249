package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-compare/pkg/fragment"
	"github.com/goliatone/go-compare/pkg/loader"
	"github.com/goliatone/go-compare/pkg/model"
	"github.com/goliatone/go-compare/pkg/render"
	"github.com/goliatone/go-compare/pkg/renderers/jsonview"
	"github.com/goliatone/go-compare/pkg/renderers/markdown"
	"github.com/goliatone/go-compare/pkg/renderers/vanilla"
	"github.com/goliatone/go-compare/pkg/specs"
	"github.com/goliatone/go-compare/pkg/tabs"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom content loader.
func WithLoader(l *loader.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = l
	}
}

// WithFragmentParser injects a custom parser for previously rendered markup.
func WithFragmentParser(parser *fragment.Parser) Option {
	return func(o *Orchestrator) {
		o.fragments = parser
	}
}

// WithModelBuilder injects a custom comparison model builder.
func WithModelBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithDecorators registers decorators that run against the built model
// before rendering.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithLogger routes pipeline diagnostics (and those of the default builder,
// parser and tab controllers) to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates the full pipeline from authored content to
// rendered output. It applies sensible defaults (vanilla, markdown and json
// renderers, embedded templates) while remaining open to dependency
// injection for advanced callers.
type Orchestrator struct {
	loader          *loader.Loader
	fragments       *fragment.Parser
	builder         model.Builder
	registry        *render.Registry
	defaultRenderer string
	decorators      []model.Decorator
	logger          *zap.Logger
	initialiseErr   error
	defaultsApplied bool

	themeSelector  theme.ThemeSelector
	defaultTheme   string
	defaultVariant string
	themeFallbacks map[string]string
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers can
// start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to resolve and render a comparison.
type Request struct {
	// Source is already decoded authored content. Takes precedence over Path.
	Source map[string]any

	// Path names a JSON or YAML content file read through the loader.
	Path string

	// Fragment is previously rendered block markup consulted for fallbacks.
	Fragment string

	// FragmentPath names a file holding Fragment. Ignored when Fragment is set.
	FragmentPath string

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// ActiveTab selects the initially active specification panel.
	ActiveTab string

	// ThemeName and ThemeVariant select a theme through the configured
	// selector; empty values fall back to the configured defaults.
	ThemeName    string
	ThemeVariant string
}

// Result is a resolved comparison: the immutable model plus the live tab
// state handle owned by the caller.
type Result struct {
	Model model.ComparisonModel
	Tabs  *tabs.Controller
}

// Resolve loads and builds the comparison model without rendering it.
func (o *Orchestrator) Resolve(ctx context.Context, req Request) (Result, error) {
	if err := o.ready(ctx); err != nil {
		return Result{}, err
	}

	source, err := o.resolveSource(ctx, req)
	if err != nil {
		return Result{}, err
	}
	fallback, err := o.resolveFallback(ctx, req)
	if err != nil {
		return Result{}, err
	}

	form := o.builder.Build(source, fallback)
	if err := o.applyDecorators(&form); err != nil {
		return Result{}, err
	}

	controller := tabs.New(form.Specs, tabs.WithLogger(o.logger))
	if req.ActiveTab != "" {
		if _, err := controller.Activate(req.ActiveTab); err != nil {
			o.logger.Info("ignoring requested tab", zap.String("tab", req.ActiveTab), zap.Error(err))
		}
	}
	return Result{Model: form, Tabs: controller}, nil
}

// Generate executes the loader → builder → renderer sequence and returns the
// rendered bytes (HTML for the default vanilla renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	result, err := o.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	themeConfig, err := o.themeConfig(req)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, result.Model, render.RenderOptions{
		Tabs:   result.Tabs,
		Theme:  themeConfig,
		Logger: o.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

func (o *Orchestrator) ready(ctx context.Context) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
	}
	return o.initialiseErr
}

func (o *Orchestrator) resolveSource(ctx context.Context, req Request) (map[string]any, error) {
	if req.Source != nil {
		return req.Source, nil
	}
	if req.Path == "" {
		return map[string]any{}, nil
	}
	source, err := o.loader.Load(ctx, req.Path)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load content: %w", err)
	}
	return source, nil
}

func (o *Orchestrator) resolveFallback(ctx context.Context, req Request) (model.Fallback, error) {
	html := req.Fragment
	if html == "" && req.FragmentPath != "" {
		var err error
		html, err = o.loader.LoadFragment(ctx, req.FragmentPath)
		if err != nil {
			return model.Fallback{}, fmt.Errorf("orchestrator: load fragment: %w", err)
		}
	}
	if html == "" {
		return model.Fallback{}, nil
	}
	fallback, err := o.fragments.Parse(html)
	if err != nil {
		return model.Fallback{}, fmt.Errorf("orchestrator: parse fragment: %w", err)
	}
	return fallback, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

// applyDecorators runs the configured decorators and then re-derives spec ids
// from the (possibly edited) labels so they stay unique for the tab controller.
func (o *Orchestrator) applyDecorators(form *model.ComparisonModel) error {
	if len(o.decorators) == 0 {
		return nil
	}
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(form); err != nil {
			return fmt.Errorf("orchestrator: decorate model: %w", err)
		}
	}
	form.Specs = specs.AssignIDs(form.Specs)
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.loader == nil {
		o.loader = loader.New()
	}
	if o.fragments == nil {
		o.fragments = fragment.New(fragment.WithLogger(o.logger))
	}
	if o.builder == nil {
		o.builder = model.NewBuilder(model.WithLogger(o.logger))
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
		o.registry.MustRegister(markdown.New())
		o.registry.MustRegister(jsonview.New("  "))
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
