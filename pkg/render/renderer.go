package render

import (
	"context"

	"github.com/goliatone/go-compare/pkg/model"
)

// Renderer converts a ComparisonModel into a byte representation (HTML,
// Markdown, JSON, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.ComparisonModel, options RenderOptions) ([]byte, error)
}
