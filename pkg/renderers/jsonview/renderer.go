// Package jsonview renders the canonical model together with the tab state as
// an indented JSON document, for hosts that build their own presentation.
package jsonview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-compare/pkg/model"
	"github.com/goliatone/go-compare/pkg/render"
	"github.com/goliatone/go-compare/pkg/tabs"
)

// Payload is the document emitted by the renderer.
type Payload struct {
	Model  model.ComparisonModel `json:"model"`
	State  tabs.State            `json:"state"`
	Panels []tabs.Panel          `json:"panels"`
}

// Renderer implements render.Renderer for JSON output.
type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a JSON renderer. An empty indent produces compact output.
func New(indent string) *Renderer {
	return &Renderer{indent: indent}
}

func (r *Renderer) Name() string {
	return "json"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

func (r *Renderer) Render(ctx context.Context, form model.ComparisonModel, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	controller := options.Controller(form)
	payload := Payload{
		Model:  form,
		State:  controller.State(),
		Panels: controller.Panels(),
	}

	var (
		data []byte
		err  error
	)
	if r.indent == "" {
		data, err = json.Marshal(payload)
	} else {
		data, err = json.MarshalIndent(payload, "", r.indent)
	}
	if err != nil {
		return nil, fmt.Errorf("json renderer: marshal: %w", err)
	}
	return append(data, '\n'), nil
}
