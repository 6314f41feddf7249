// Package model defines the canonical comparison model consumed by renderers.
// Builders reside in internal/model but return the types defined here. Every
// authoring shape (current structured fields, legacy key spellings, grouped
// or tabular spec data, flat attributes, previously rendered markup) converges
// to one ComparisonModel whose Specs carry stable, unique identifiers so tab
// controllers and renderers can address rows without re-deriving them.
package model
