// Package markdown renders a comparison as a Markdown document: heading,
// vehicle images, the description converted from HTML, and a specification
// table with the active tab's row emphasised.
package markdown

import (
	"context"
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/goliatone/go-compare/pkg/model"
	"github.com/goliatone/go-compare/pkg/render"
)

// Option configures the renderer.
type Option func(*Renderer)

// WithBrochureLabel overrides the brochure link text.
func WithBrochureLabel(label string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			r.brochureLabel = trimmed
		}
	}
}

// WithEmptyLabel overrides the placeholder row used when there are no specs.
func WithEmptyLabel(label string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			r.emptyLabel = trimmed
		}
	}
}

// Renderer implements render.Renderer for Markdown output.
type Renderer struct {
	brochureLabel string
	emptyLabel    string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a Markdown renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{
		brochureLabel: "Download Brochure",
		emptyLabel:    "No specifications available",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return "markdown"
}

func (r *Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, form model.ComparisonModel, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", form.Title)

	for _, vehicle := range []model.Vehicle{form.Left, form.Right} {
		if vehicle.ImageRef == "" {
			continue
		}
		fmt.Fprintf(&b, "\n![%s](%s)\n", escapeText(vehicle.Alt), vehicle.ImageRef)
	}

	if html := strings.TrimSpace(form.Description); html != "" {
		description, err := htmltomarkdown.ConvertString(html)
		if err != nil {
			return nil, fmt.Errorf("markdown renderer: convert description: %w", err)
		}
		if description = strings.TrimSpace(description); description != "" {
			fmt.Fprintf(&b, "\n%s\n", description)
		}
	}

	active, _ := options.Controller(form).Active()
	fmt.Fprintf(&b, "\n| Specification | %s | %s |\n", cell(columnTitle(form.Left.Title, "Left")), cell(columnTitle(form.Right.Title, "Right")))
	b.WriteString("| --- | --- | --- |\n")
	if len(form.Specs) == 0 {
		fmt.Fprintf(&b, "| %s |  |  |\n", cell(r.emptyLabel))
	}
	for _, spec := range form.Specs {
		label := cell(spec.Label)
		if spec.ID == active {
			label = "**" + label + "**"
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", label, cell(spec.LeftValue), cell(spec.RightValue))
	}

	if form.BrochureURL != "" {
		fmt.Fprintf(&b, "\n[%s](%s)\n", escapeText(r.brochureLabel), form.BrochureURL)
	}
	return []byte(b.String()), nil
}

func columnTitle(title, fallback string) string {
	if strings.TrimSpace(title) == "" {
		return fallback
	}
	return title
}

var cellReplacer = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

func cell(value string) string {
	return cellReplacer.Replace(strings.TrimSpace(value))
}

var textReplacer = strings.NewReplacer("[", `\[`, "]", `\]`)

func escapeText(value string) string {
	return textReplacer.Replace(value)
}
