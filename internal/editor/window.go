package editor

// Workspace is the in-memory Window implementation. Buffers live in ordered
// groups; the active buffer is tracked explicitly. All lookups go through
// view identity so stale View references are detected rather than acted on.
type Workspace struct {
	groups [][]*Buffer
	active *Buffer
}

// NewWorkspace creates a workspace with a single empty group.
func NewWorkspace() *Workspace {
	return &Workspace{groups: make([][]*Buffer, 1)}
}

// Append adds a buffer at the end of the given group, growing the layout if
// the group does not exist yet. The first appended buffer becomes active.
func (w *Workspace) Append(group int, b *Buffer) {
	for len(w.groups) <= group {
		w.groups = append(w.groups, nil)
	}
	w.groups[group] = append(w.groups[group], b)
	if w.active == nil {
		w.active = b
	}
}

// Views returns all open buffers in window tab order, group by group.
func (w *Workspace) Views() []View {
	var views []View
	for _, group := range w.groups {
		for _, b := range group {
			views = append(views, b)
		}
	}
	return views
}

// ViewsInGroup returns one group's buffers in tab order.
func (w *Workspace) ViewsInGroup(group int) []View {
	if group < 0 || group >= len(w.groups) {
		return nil
	}
	views := make([]View, 0, len(w.groups[group]))
	for _, b := range w.groups[group] {
		views = append(views, b)
	}
	return views
}

// ActiveView returns the focused buffer, or nil for an empty workspace.
func (w *Workspace) ActiveView() View {
	if w.active == nil {
		return nil
	}
	return w.active
}

// ActiveGroup returns the group index of the active buffer.
func (w *Workspace) ActiveGroup() int {
	if w.active == nil {
		return 0
	}
	group, _, ok := w.locate(w.active.id)
	if !ok {
		return 0
	}
	return group
}

// GroupCount returns the number of groups in the layout.
func (w *Workspace) GroupCount() int { return len(w.groups) }

// FocusView makes the given view active. Returns ErrViewClosed if the view
// is no longer open.
func (w *Workspace) FocusView(v View) error {
	b, err := w.lookup(v)
	if err != nil {
		return err
	}
	w.active = b
	return nil
}

// RestoreViewport re-applies a previously captured viewport snapshot.
func (w *Workspace) RestoreViewport(v View, vp Viewport) error {
	b, err := w.lookup(v)
	if err != nil {
		return err
	}
	b.viewport = vp
	return nil
}

// Close removes a buffer from the workspace. Closing the active buffer moves
// focus to the first remaining one.
func (w *Workspace) Close(v View) {
	group, idx, ok := w.locate(v.ID())
	if !ok {
		return
	}
	w.groups[group] = append(w.groups[group][:idx], w.groups[group][idx+1:]...)
	if w.active != nil && w.active.id == v.ID() {
		w.active = nil
		for _, g := range w.groups {
			if len(g) > 0 {
				w.active = g[0]
				break
			}
		}
	}
}

func (w *Workspace) lookup(v View) (*Buffer, error) {
	if v == nil {
		return nil, ErrViewClosed
	}
	group, idx, ok := w.locate(v.ID())
	if !ok {
		return nil, ErrViewClosed
	}
	return w.groups[group][idx], nil
}

func (w *Workspace) locate(id string) (group, idx int, ok bool) {
	for g, buffers := range w.groups {
		for i, b := range buffers {
			if b.id == id {
				return g, i, true
			}
		}
	}
	return 0, 0, false
}
