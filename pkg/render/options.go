package render

import (
	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-compare/pkg/model"
	"github.com/goliatone/go-compare/pkg/tabs"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the comparison model.
type RenderOptions struct {
	// ActiveTab selects the initially active specification panel. Unknown ids
	// are ignored and the first panel stays active.
	ActiveTab string
	// Tabs supplies a live controller whose state should be reflected in the
	// output. When nil renderers create one from the model's specs.
	Tabs *tabs.Controller
	// Theme carries the resolved theme selection (tokens, CSS variables and
	// asset resolver).
	Theme *theme.RendererConfig
	// Logger receives soft rendering diagnostics. Nil means no logging.
	Logger *zap.Logger
}

// Controller returns the tab controller renderers should read panel state
// from, applying ActiveTab to a freshly created controller.
func (o RenderOptions) Controller(form model.ComparisonModel) *tabs.Controller {
	if o.Tabs != nil {
		return o.Tabs
	}
	logger := o.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	controller := tabs.New(form.Specs, tabs.WithLogger(logger))
	if o.ActiveTab != "" {
		if _, err := controller.Activate(o.ActiveTab); err != nil {
			logger.Info("ignoring requested tab", zap.String("tab", o.ActiveTab), zap.Error(err))
		}
	}
	return controller
}
