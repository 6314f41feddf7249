// Package template defines the renderer-agnostic template seam used by the
// markup renderers, with a pongo2-backed implementation in gotemplate.
package template
