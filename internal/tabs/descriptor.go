package tabs

import "github.com/hadar/tabfilter/internal/editor"

// Descriptor captures one open view for the duration of a filter session.
// The View field is an identity reference only; the view may be closed by
// the host at any time, so every action re-validates through the window.
type Descriptor struct {
	View      editor.View
	Caption   string
	IsCurrent bool
}
