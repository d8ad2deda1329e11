package editor

import "errors"

// ErrViewClosed is returned when an operation targets a view that is no
// longer open in the window.
var ErrViewClosed = errors.New("editor: view is no longer open")

// Viewport captures a view's scroll position and selection so it can be
// restored verbatim later.
type Viewport struct {
	ScrollRow int
	ScrollCol int
	SelStart  int
	SelEnd    int
}

// View is one open document or buffer inside a window. The tab filter only
// reads view state; it never owns a view and never mutates document content.
type View interface {
	// ID returns a stable identity for the view, valid for its lifetime.
	ID() string
	// FilePath returns the backing file path, or "" for unsaved buffers.
	FilePath() string
	IsDirty() bool
	IsReadOnly() bool
	IsScratch() bool
	// FirstLineText returns the first line of the buffer content, used as a
	// display placeholder for unsaved buffers.
	FirstLineText() string
	// Viewport returns a snapshot of the current scroll/selection state.
	Viewport() Viewport
}

// Window is a host-level container holding an ordered set of views, possibly
// split into multiple groups. View references held across callbacks may go
// stale; FocusView and RestoreViewport re-validate by identity and return
// ErrViewClosed for views that were closed in the meantime.
type Window interface {
	// Views returns all open views in window tab order, across all groups.
	Views() []View
	// ViewsInGroup returns the views of one group in tab order.
	ViewsInGroup(group int) []View
	// ActiveView returns the currently focused view, or nil for an empty
	// window.
	ActiveView() View
	// ActiveGroup returns the index of the group holding the active view.
	ActiveGroup() int
	// GroupCount returns the number of groups in the window layout.
	GroupCount() int
	FocusView(v View) error
	RestoreViewport(v View, vp Viewport) error
}
