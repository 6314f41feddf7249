package model

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-compare/pkg/imageref"
	"github.com/goliatone/go-compare/pkg/specs"
)

const (
	DefaultTitle    = "Compare models"
	DefaultLeftAlt  = "Left image"
	DefaultRightAlt = "Right image"
)

// Options configures the behaviour of the Builder. Options are constructed by
// the public adapter in pkg/model and passed into New.
type Options struct {
	DefaultTitle    string
	DefaultLeftAlt  string
	DefaultRightAlt string
	Logger          *zap.Logger
	Normalizer      *specs.Normalizer
	Images          *imageref.Resolver
}

func (o Options) withDefaults() Options {
	if o.DefaultTitle == "" {
		o.DefaultTitle = DefaultTitle
	}
	if o.DefaultLeftAlt == "" {
		o.DefaultLeftAlt = DefaultLeftAlt
	}
	if o.DefaultRightAlt == "" {
		o.DefaultRightAlt = DefaultRightAlt
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Normalizer == nil {
		o.Normalizer = specs.New(specs.WithLogger(o.Logger))
	}
	if o.Images == nil {
		o.Images = imageref.New(imageref.WithLogger(o.Logger))
	}
	return o
}
