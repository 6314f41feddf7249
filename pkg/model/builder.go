package model

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-compare/internal/model"
	"github.com/goliatone/go-compare/pkg/imageref"
	"github.com/goliatone/go-compare/pkg/specs"
)

// Builder converts authored block data and rendered-content fallbacks into
// comparison models.
type Builder interface {
	Build(source map[string]any, fallback Fallback) ComparisonModel
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	defaultTitle    string
	defaultLeftAlt  string
	defaultRightAlt string
	logger          *zap.Logger
	attributes      []specs.Attribute
}

// WithDefaultTitle overrides the title used when nothing was authored.
func WithDefaultTitle(title string) BuilderOption {
	return func(opts *builderOptions) {
		opts.defaultTitle = title
	}
}

// WithDefaultAlts overrides the alt texts used as the last resort for each
// side's image.
func WithDefaultAlts(left, right string) BuilderOption {
	return func(opts *builderOptions) {
		opts.defaultLeftAlt = left
		opts.defaultRightAlt = right
	}
}

// WithLogger routes soft-failure diagnostics to logger.
func WithLogger(logger *zap.Logger) BuilderOption {
	return func(opts *builderOptions) {
		opts.logger = logger
	}
}

// WithAttributes replaces the fixed attribute table consulted when a block
// carries neither spec lists nor tables.
func WithAttributes(attributes ...specs.Attribute) BuilderOption {
	return func(opts *builderOptions) {
		opts.attributes = append([]specs.Attribute(nil), attributes...)
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	normalizerOpts := []specs.Option{specs.WithLogger(logger)}
	if cfg.attributes != nil {
		normalizerOpts = append(normalizerOpts, specs.WithAttributes(cfg.attributes...))
	}

	return model.New(model.Options{
		DefaultTitle:    cfg.defaultTitle,
		DefaultLeftAlt:  cfg.defaultLeftAlt,
		DefaultRightAlt: cfg.defaultRightAlt,
		Logger:          logger,
		Normalizer:      specs.New(normalizerOpts...),
		Images:          imageref.New(imageref.WithLogger(logger)),
	})
}
