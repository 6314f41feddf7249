package tabs

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-compare/pkg/specs"
)

// Change is one accepted transition.
type Change struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Panel describes one tab for renderers.
type Panel struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// Listener is notified after every accepted transition.
type Listener func(Change)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger reports rejected activations at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithListener registers a listener at construction time.
func WithListener(listener Listener) Option {
	return func(c *Controller) {
		if listener != nil {
			c.listeners = append(c.listeners, listener)
		}
	}
}

// Controller drives the selection state of one widget instance. Events are
// processed synchronously in the order received; a Controller is owned by a
// single widget and is not safe for concurrent use.
type Controller struct {
	ids         []string
	labels      []string
	state       State
	transitions []Change
	listeners   []Listener
	logger      *zap.Logger
}

// New creates a controller over entries with the first entry active.
func New(entries []specs.Entry, options ...Option) *Controller {
	c := &Controller{
		ids:    make([]string, len(entries)),
		labels: make([]string, len(entries)),
		logger: zap.NewNop(),
	}
	for idx, entry := range entries {
		c.ids[idx] = entry.ID
		c.labels[idx] = entry.Label
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.state = Initial(c.ids)
	return c
}

// State returns the current selection state.
func (c *Controller) State() State {
	if c == nil {
		return State{}
	}
	return c.state
}

// Active returns the active id and whether one exists.
func (c *Controller) Active() (string, bool) {
	state := c.State()
	return state.ActiveID, !state.Empty()
}

// IDs returns the tab ids in order.
func (c *Controller) IDs() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.ids...)
}

// Activate makes id the active tab. Activating the active tab is a no-op.
// Unknown ids are rejected with ErrUnknownTab and leave the state unchanged.
func (c *Controller) Activate(id string) (bool, error) {
	if c == nil {
		return false, ErrNoTabs
	}
	next, changed, err := Transition(c.state, c.ids, id)
	if err != nil {
		c.logger.Debug("tab activation rejected",
			zap.String("id", id),
			zap.String("active", c.state.ActiveID),
			zap.Error(err),
		)
		return false, err
	}
	if !changed {
		return false, nil
	}

	change := Change{From: c.state.ActiveID, To: next.ActiveID}
	c.state = next
	c.transitions = append(c.transitions, change)
	for _, listener := range c.listeners {
		listener(change)
	}
	return true, nil
}

// ActivateIndex activates the tab at position idx.
func (c *Controller) ActivateIndex(idx int) (bool, error) {
	if c == nil || len(c.ids) == 0 {
		return false, ErrNoTabs
	}
	if idx < 0 || idx >= len(c.ids) {
		err := fmt.Errorf("%w: index %d", ErrUnknownTab, idx)
		c.logger.Debug("tab activation rejected", zap.Int("index", idx), zap.Error(err))
		return false, err
	}
	return c.Activate(c.ids[idx])
}

// OnChange registers listener for subsequent accepted transitions.
func (c *Controller) OnChange(listener Listener) {
	if c == nil || listener == nil {
		return
	}
	c.listeners = append(c.listeners, listener)
}

// Transitions returns the accepted transitions in order.
func (c *Controller) Transitions() []Change {
	if c == nil {
		return nil
	}
	return append([]Change(nil), c.transitions...)
}

// Panels lists every tab in order with the active one flagged.
func (c *Controller) Panels() []Panel {
	if c == nil {
		return nil
	}
	panels := make([]Panel, len(c.ids))
	for idx, id := range c.ids {
		panels[idx] = Panel{ID: id, Label: c.labels[idx], Active: id == c.state.ActiveID}
	}
	return panels
}

// IsRejection reports whether err is an activation rejection rather than an
// unexpected failure.
func IsRejection(err error) bool {
	return errors.Is(err, ErrUnknownTab) || errors.Is(err, ErrNoTabs)
}
