package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hadar/tabfilter/internal/tabs"
)

// eventRecorder collects the callbacks the panel fires.
type eventRecorder struct {
	highlights []int
	confirmed  []int
	cancels    int
}

func (r *eventRecorder) events() tabs.WidgetEvents {
	return tabs.WidgetEvents{
		OnHighlight: func(i int) { r.highlights = append(r.highlights, i) },
		OnConfirm:   func(i int) { r.confirmed = append(r.confirmed, i) },
		OnCancel:    func() { r.cancels++ },
	}
}

func showPanel(captions []string, preselect int) (*Panel, *eventRecorder) {
	recorder := &eventRecorder{}
	panel := NewPanel(80, 24)
	panel.Show(captions, preselect, recorder.events())
	return panel, recorder
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPanelConfirmPreselected(t *testing.T) {
	panel, recorder := showPanel([]string{"a.go", "b.go", "c.go"}, 1)

	panel, _ = panel.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if !panel.Done() {
		t.Error("Done() = false after confirm")
	}
	if len(recorder.confirmed) != 1 || recorder.confirmed[0] != 1 {
		t.Errorf("confirmed = %v, want [1]", recorder.confirmed)
	}
}

func TestPanelFilterNarrowsMatches(t *testing.T) {
	panel, recorder := showPanel([]string{"foo.py", "bar.py", "draft notes"}, 0)

	panel, _ = panel.Update(keyRunes("bar"))
	panel, _ = panel.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if len(recorder.confirmed) != 1 || recorder.confirmed[0] != 1 {
		t.Errorf("confirmed = %v, want [1] (index of bar.py)", recorder.confirmed)
	}
}

func TestPanelFilterIsCaseInsensitive(t *testing.T) {
	panel, recorder := showPanel([]string{"Makefile", "main.go"}, 0)

	panel, _ = panel.Update(keyRunes("MAKE"))
	panel, _ = panel.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if len(recorder.confirmed) != 1 || recorder.confirmed[0] != 0 {
		t.Errorf("confirmed = %v, want [0]", recorder.confirmed)
	}
}

func TestPanelCancel(t *testing.T) {
	panel, recorder := showPanel([]string{"a.go"}, 0)

	panel, _ = panel.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if !panel.Done() {
		t.Error("Done() = false after cancel")
	}
	if recorder.cancels != 1 {
		t.Errorf("cancels = %d, want 1", recorder.cancels)
	}
	if len(recorder.confirmed) != 0 {
		t.Errorf("confirmed = %v, want none", recorder.confirmed)
	}
}

func TestPanelConfirmWithNoMatchesCancels(t *testing.T) {
	panel, recorder := showPanel([]string{"a.go", "b.go"}, 0)

	panel, _ = panel.Update(keyRunes("zzz"))
	panel, _ = panel.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if recorder.cancels != 1 {
		t.Errorf("cancels = %d, want 1", recorder.cancels)
	}
	if len(recorder.confirmed) != 0 {
		t.Errorf("confirmed = %v, want none", recorder.confirmed)
	}
}

func TestPanelCursorMovementReportsHighlights(t *testing.T) {
	panel, recorder := showPanel([]string{"a.go", "b.go", "c.go"}, 0)

	panel, _ = panel.Update(tea.KeyMsg{Type: tea.KeyDown})
	panel, _ = panel.Update(tea.KeyMsg{Type: tea.KeyDown})
	panel, _ = panel.Update(tea.KeyMsg{Type: tea.KeyUp})

	want := []int{1, 2, 1}
	if len(recorder.highlights) != len(want) {
		t.Fatalf("highlights = %v, want %v", recorder.highlights, want)
	}
	for i := range want {
		if recorder.highlights[i] != want[i] {
			t.Errorf("highlights[%d] = %d, want %d", i, recorder.highlights[i], want[i])
		}
	}
}

func TestPanelCursorStopsAtEdges(t *testing.T) {
	panel, recorder := showPanel([]string{"a.go", "b.go"}, 0)

	panel, _ = panel.Update(tea.KeyMsg{Type: tea.KeyUp})
	panel, _ = panel.Update(tea.KeyMsg{Type: tea.KeyDown})
	panel, _ = panel.Update(tea.KeyMsg{Type: tea.KeyDown})

	want := []int{1}
	if len(recorder.highlights) != len(want) || recorder.highlights[0] != 1 {
		t.Errorf("highlights = %v, want %v", recorder.highlights, want)
	}
}

func TestPanelFilterChangeReportsHighlight(t *testing.T) {
	panel, recorder := showPanel([]string{"alpha.go", "beta.go"}, 1)

	panel, _ = panel.Update(keyRunes("beta"))

	if len(recorder.highlights) == 0 {
		t.Fatal("no highlight reported after filter change")
	}
	if last := recorder.highlights[len(recorder.highlights)-1]; last != 1 {
		t.Errorf("last highlight = %d, want 1", last)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxWidth int
		expected string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello..."},
		{"hello", 3, "hel"},
		{"hello", 0, ""},
		{"", 5, ""},
		{"日本語テスト", 7, "日本..."},
	}

	for _, tt := range tests {
		result := truncate(tt.input, tt.maxWidth)
		if result != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, result, tt.expected)
		}
	}
}
