package tabs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hadar/tabfilter/internal/editor"
)

// Status captions, appended in this order.
const (
	captionCurrent        = "Current File"
	captionUnsavedFile    = "Unsaved File"
	captionUnsavedChanges = "Unsaved Changes"
	captionReadOnly       = "Read Only"
)

// untitledLabel is the placeholder for unsaved buffers with no content.
const untitledLabel = "untitled"

// Options control how captions are built for one collection pass.
type Options struct {
	// ShowCaptions appends bracketed status captions to each label.
	ShowCaptions bool
	// IncludePath shows the shortest disambiguating path suffix instead of
	// the bare basename for saved files.
	IncludePath bool
	// ShowGroupCaption appends a "Group: N" caption in split layouts.
	ShowGroupCaption bool
	// ActiveGroupOnly restricts collection to the active group.
	ActiveGroupOnly bool
}

// Collector builds the descriptor list for one window.
type Collector struct {
	win editor.Window
}

// NewCollector creates a collector for the given window.
func NewCollector(win editor.Window) *Collector {
	return &Collector{win: win}
}

// Collect enumerates the window's open views in tab order and produces one
// descriptor per view. Returns an empty slice for an empty window; callers
// decline to open the panel in that case.
func (c *Collector) Collect(opts Options) []Descriptor {
	type entry struct {
		view  editor.View
		label string
		group int
	}

	var entries []entry
	if opts.ActiveGroupOnly {
		group := c.win.ActiveGroup()
		for _, v := range c.win.ViewsInGroup(group) {
			entries = append(entries, entry{view: v, group: group})
		}
	} else {
		for group := 0; group < c.win.GroupCount(); group++ {
			for _, v := range c.win.ViewsInGroup(group) {
				entries = append(entries, entry{view: v, group: group})
			}
		}
	}
	if len(entries) == 0 {
		return nil
	}

	active := c.win.ActiveView()

	// Base labels: basename for saved files, first-line placeholder for
	// unsaved buffers.
	for i := range entries {
		entries[i].label = baseLabel(entries[i].view)
	}

	// In path mode, saved files collapse to their shortest unique suffix
	// across everything collected in this pass.
	if opts.IncludePath {
		var paths []string
		for _, e := range entries {
			if p := e.view.FilePath(); p != "" {
				paths = append(paths, p)
			}
		}
		labels := Collapse(paths)
		for i := range entries {
			if p := entries[i].view.FilePath(); p != "" {
				entries[i].label = labels[p]
			}
		}
	}

	descriptors := make([]Descriptor, 0, len(entries))
	for _, e := range entries {
		isCurrent := active != nil && active.ID() == e.view.ID()
		caption := e.label
		if opts.ShowCaptions {
			captions := statusCaptions(e.view, isCurrent)
			if opts.ShowGroupCaption && c.win.GroupCount() > 1 {
				captions = append(captions, fmt.Sprintf("Group: %d", e.group+1))
			}
			if len(captions) > 0 {
				caption += " (" + strings.Join(captions, ", ") + ")"
			}
		}
		descriptors = append(descriptors, Descriptor{
			View:      e.view,
			Caption:   caption,
			IsCurrent: isCurrent,
		})
	}
	return descriptors
}

// baseLabel derives the undecorated display label for a view.
func baseLabel(v editor.View) string {
	if path := v.FilePath(); path != "" {
		return filepath.Base(path)
	}
	if line := strings.TrimSpace(v.FirstLineText()); line != "" {
		return line
	}
	return untitledLabel
}

// statusCaptions returns the applicable status captions in fixed order.
func statusCaptions(v editor.View, isCurrent bool) []string {
	var captions []string
	if isCurrent {
		captions = append(captions, captionCurrent)
	}
	if v.FilePath() == "" {
		captions = append(captions, captionUnsavedFile)
	} else if v.IsDirty() {
		captions = append(captions, captionUnsavedChanges)
	}
	if v.IsReadOnly() {
		captions = append(captions, captionReadOnly)
	}
	return captions
}
