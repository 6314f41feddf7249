package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-compare/pkg/model"
	"github.com/goliatone/go-compare/pkg/render"
	"github.com/goliatone/go-compare/pkg/tabs"
)

const doneOption = "Done"

// Renderer implements render.Renderer as an interactive terminal session:
// the active specification panel is printed and the user picks the next tab
// until they choose Done or abort. The rendered output is the panel that was
// active when the session ended.
type Renderer struct {
	driver   PromptDriver
	theme    Theme
	pageSize int
}

// New constructs a TUI renderer backed by survey prompts.
func New(options ...Option) *Renderer {
	r := &Renderer{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the format of the final panel summary.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render runs the browsing session against the controller derived from
// options, so the caller observes every accepted transition.
func (r *Renderer) Render(ctx context.Context, form model.ComparisonModel, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	controller := options.Controller(form)
	if err := r.info(ctx, header(form)); err != nil {
		return nil, err
	}
	if _, ok := controller.Active(); !ok {
		if err := r.info(ctx, "No specifications to compare."); err != nil {
			return nil, err
		}
		return []byte(header(form) + "\n"), nil
	}

	if err := r.browse(ctx, form, controller); err != nil {
		return nil, err
	}
	return []byte(panelText(form, controller) + "\n"), nil
}

func (r *Renderer) browse(ctx context.Context, form model.ComparisonModel, controller *tabs.Controller) error {
	panels := controller.Panels()
	labels := optionLabels(panels)

	for {
		if err := r.info(ctx, panelText(form, controller)); err != nil {
			return err
		}

		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      r.theme.PromptPrefix + "Specification",
			Options:      labels,
			DefaultIndex: activeIndex(controller),
			PageSize:     r.pageSize,
		})
		if errors.Is(err, ErrAborted) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("tui: select tab: %w", err)
		}
		if idx < 0 || idx >= len(panels) {
			return nil
		}
		if _, err := controller.ActivateIndex(idx); err != nil {
			return fmt.Errorf("tui: activate tab: %w", err)
		}
	}
}

// optionLabels lists one prompt option per panel followed by doneOption.
// Labels that repeat, or that read as doneOption, carry the panel id so every
// option is distinct.
func optionLabels(panels []tabs.Panel) []string {
	counts := map[string]int{doneOption: 1}
	for _, panel := range panels {
		counts[panel.Label]++
	}
	labels := make([]string, 0, len(panels)+1)
	for _, panel := range panels {
		label := panel.Label
		switch {
		case label == "":
			label = panel.ID
		case counts[label] > 1:
			label = fmt.Sprintf("%s (%s)", label, panel.ID)
		}
		labels = append(labels, label)
	}
	return append(labels, doneOption)
}

func (r *Renderer) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

func activeIndex(controller *tabs.Controller) int {
	for idx, panel := range controller.Panels() {
		if panel.Active {
			return idx
		}
	}
	return 0
}

func header(form model.ComparisonModel) string {
	left, right := sideNames(form)
	return fmt.Sprintf("%s (%s vs %s)", form.Title, left, right)
}

func sideNames(form model.ComparisonModel) (string, string) {
	left, right := form.Left.Title, form.Right.Title
	if left == "" {
		left = "Left"
	}
	if right == "" {
		right = "Right"
	}
	return left, right
}

func panelText(form model.ComparisonModel, controller *tabs.Controller) string {
	active, _ := controller.Active()
	spec, _ := form.Spec(active)
	left, right := sideNames(form)

	var b strings.Builder
	b.WriteString(spec.Label)
	fmt.Fprintf(&b, "\n  %s: %s", left, valueOrDash(spec.LeftValue))
	fmt.Fprintf(&b, "\n  %s: %s", right, valueOrDash(spec.RightValue))
	return b.String()
}

func valueOrDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
