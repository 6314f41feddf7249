package model

import internalmodel "github.com/goliatone/go-compare/internal/model"

type SpecEntry = internalmodel.SpecEntry
type Vehicle = internalmodel.Vehicle
type ComparisonModel = internalmodel.ComparisonModel
type Fallback = internalmodel.Fallback
type FallbackImage = internalmodel.FallbackImage

const (
	DefaultTitle    = internalmodel.DefaultTitle
	DefaultLeftAlt  = internalmodel.DefaultLeftAlt
	DefaultRightAlt = internalmodel.DefaultRightAlt
)
