package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hadar/tabfilter/internal/tabs"
)

// Panel is the quick selection panel: a filter line over the session's tab
// captions. It implements tabs.SelectionWidget; outcome is reported through
// the controller's event callbacks, after which Done reports true.
type Panel struct {
	input  textinput.Model
	keys   PanelKeyMap
	width  int
	height int

	captions []string
	events   tabs.WidgetEvents
	matches  []int // indexes into captions matching the filter
	cursor   int   // position within matches
	done     bool
}

// NewPanel creates an inactive panel sized to the given dimensions.
func NewPanel(width, height int) *Panel {
	ti := textinput.New()
	ti.Placeholder = "Filter tabs..."
	ti.CharLimit = 100
	ti.Focus()

	return &Panel{
		input:  ti,
		keys:   DefaultPanelKeyMap(),
		width:  width,
		height: height,
	}
}

// Show implements tabs.SelectionWidget.
func (p *Panel) Show(captions []string, preselect int, events tabs.WidgetEvents) {
	p.captions = captions
	p.events = events
	p.input.SetValue("")
	p.applyFilter()
	if preselect >= 0 && preselect < len(p.matches) {
		p.cursor = preselect
	}
}

// Done reports whether the session behind the panel has ended.
func (p *Panel) Done() bool { return p.done }

// SetSize updates the panel dimensions.
func (p *Panel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// applyFilter recomputes the matching caption indexes for the current query.
// Matching is plain case-insensitive substring; fuzzy ranking is the quick
// panel's concern in hosts that have one, not ours.
func (p *Panel) applyFilter() {
	query := strings.ToLower(p.input.Value())
	p.matches = p.matches[:0]
	for i, caption := range p.captions {
		if query == "" || strings.Contains(strings.ToLower(caption), query) {
			p.matches = append(p.matches, i)
		}
	}
	if p.cursor >= len(p.matches) {
		p.cursor = max(0, len(p.matches)-1)
	}
}

// notifyHighlight reports the highlighted caption index to the session.
func (p *Panel) notifyHighlight() {
	if len(p.matches) == 0 || p.events.OnHighlight == nil {
		return
	}
	p.events.OnHighlight(p.matches[p.cursor])
}

// Update handles key input while the panel is open.
func (p *Panel) Update(msg tea.Msg) (*Panel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || p.done {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.Cancel):
		p.done = true
		if p.events.OnCancel != nil {
			p.events.OnCancel()
		}
		return p, nil

	case key.Matches(keyMsg, p.keys.Confirm):
		p.done = true
		if len(p.matches) == 0 {
			if p.events.OnCancel != nil {
				p.events.OnCancel()
			}
			return p, nil
		}
		if p.events.OnConfirm != nil {
			p.events.OnConfirm(p.matches[p.cursor])
		}
		return p, nil

	case key.Matches(keyMsg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
			p.notifyHighlight()
		}
		return p, nil

	case key.Matches(keyMsg, p.keys.Down):
		if p.cursor < len(p.matches)-1 {
			p.cursor++
			p.notifyHighlight()
		}
		return p, nil
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.cursor = 0
		p.applyFilter()
		p.notifyHighlight()
	}
	return p, cmd
}

// View renders the filter line and the matching captions.
func (p *Panel) View() string {
	innerWidth := max(20, p.width-6)

	var b strings.Builder
	b.WriteString(filterPromptStyle.Render(">") + " " + p.input.View())
	b.WriteString("\n\n")

	if len(p.matches) == 0 {
		b.WriteString(mutedStyle.Render("no matching tabs"))
	}

	for pos, idx := range p.matches {
		line := truncate(p.captions[idx], innerWidth)
		if pos == p.cursor {
			b.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}
		if pos < len(p.matches)-1 {
			b.WriteString("\n")
		}
	}

	return panelStyle.Width(innerWidth + 4).Render(b.String())
}
