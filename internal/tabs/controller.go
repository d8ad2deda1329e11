package tabs

import "github.com/hadar/tabfilter/internal/editor"

// State identifies where a filter session is in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateActive
	StateConfirmed
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateConfirmed:
		return "confirmed"
	case StateCancelled:
		return "cancelled"
	default:
		return "idle"
	}
}

// WidgetEvents are the callbacks a selection widget fires back into the
// controller. All callbacks arrive on the host UI loop; there is no
// concurrent delivery.
type WidgetEvents struct {
	OnHighlight func(index int)
	OnConfirm   func(index int)
	OnCancel    func()
}

// SelectionWidget is the host's modal filterable list. Show hands over the
// ordered captions with the index to pre-highlight; the widget reports the
// outcome through the event callbacks.
type SelectionWidget interface {
	Show(captions []string, preselect int, events WidgetEvents)
}

// SessionOptions configure one filter session.
type SessionOptions struct {
	Options
	// PreviewTab focuses the highlighted view live. Suppressed in split
	// layouts unless the session is scoped to the active group, since
	// focusing a view in another group would disrupt the layout.
	PreviewTab bool
}

// Controller runs one filter session over a window: snapshot the active
// view, present the collected descriptors, then focus the confirmed view or
// restore the original on cancel. One controller per invocation; terminal
// states discard all session state.
type Controller struct {
	win     editor.Window
	opts    SessionOptions
	state   State
	session *sessionState
}

// sessionState lives from Start until the session reaches a terminal state.
type sessionState struct {
	originalView     editor.View
	originalViewport editor.Viewport
	descriptors      []Descriptor
}

// NewController creates an idle controller for the given window.
func NewController(win editor.Window, opts SessionOptions) *Controller {
	return &Controller{win: win, opts: opts}
}

// State returns the controller's current lifecycle state.
func (c *Controller) State() State { return c.state }

// Start snapshots the active view, collects the window's tabs and presents
// them on the widget. Returns false, staying idle, when the window has no
// open views or a session already ran on this controller.
func (c *Controller) Start(widget SelectionWidget) bool {
	if c.state != StateIdle {
		return false
	}

	descriptors := NewCollector(c.win).Collect(c.opts.Options)
	if len(descriptors) == 0 {
		return false
	}

	session := &sessionState{descriptors: descriptors}
	if active := c.win.ActiveView(); active != nil {
		session.originalView = active
		session.originalViewport = active.Viewport()
	}

	preselect := 0
	captions := make([]string, len(descriptors))
	for i, d := range descriptors {
		captions[i] = d.Caption
		if d.IsCurrent {
			preselect = i
		}
	}

	c.session = session
	c.state = StateActive

	widget.Show(captions, preselect, WidgetEvents{
		OnHighlight: c.highlighted,
		OnConfirm:   c.confirmed,
		OnCancel:    c.cancelled,
	})
	return true
}

// previewEnabled reports whether highlight events may move focus.
func (c *Controller) previewEnabled() bool {
	if !c.opts.PreviewTab {
		return false
	}
	if c.opts.ActiveGroupOnly {
		return true
	}
	return c.win.GroupCount() == 1
}

// highlighted previews the highlighted view when preview is enabled. The
// original view snapshot is left untouched so cancel still restores it.
func (c *Controller) highlighted(index int) {
	if c.state != StateActive || !c.previewEnabled() {
		return
	}
	if index < 0 || index >= len(c.session.descriptors) {
		return
	}
	// A view closed mid-session is skipped; cancel or confirm will deal
	// with the stale reference.
	_ = c.win.FocusView(c.session.descriptors[index].View)
}

// confirmed focuses the selected view and ends the session.
func (c *Controller) confirmed(index int) {
	if c.state != StateActive {
		return
	}
	if index < 0 || index >= len(c.session.descriptors) {
		c.cancelled()
		return
	}
	if err := c.win.FocusView(c.session.descriptors[index].View); err != nil {
		c.abort()
		return
	}
	c.state = StateConfirmed
	c.session = nil
}

// cancelled restores focus and viewport to the view that was active when the
// session started.
func (c *Controller) cancelled() {
	if c.state != StateActive {
		return
	}
	session := c.session
	if session.originalView != nil {
		if err := c.win.FocusView(session.originalView); err != nil {
			c.abort()
			return
		}
		_ = c.win.RestoreViewport(session.originalView, session.originalViewport)
	}
	c.state = StateCancelled
	c.session = nil
}

// abort drops the session after a stale view reference; the condition is
// not surfaced as an error.
func (c *Controller) abort() {
	c.state = StateIdle
	c.session = nil
}
