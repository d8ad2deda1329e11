package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hadar/tabfilter/internal/config"
	"github.com/hadar/tabfilter/internal/editor"
	"github.com/hadar/tabfilter/internal/tabs"
)

func testApp(t *testing.T, buffers ...*editor.Buffer) *App {
	t.Helper()
	ws := editor.NewWorkspace()
	for _, b := range buffers {
		ws.Append(0, b)
	}
	app := NewApp(ws, config.DefaultSettings(), "")
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return app
}

func sendKey(app *App, msg tea.KeyMsg) *App {
	model, _ := app.Update(msg)
	return model.(*App)
}

func TestAppOpensPanel(t *testing.T) {
	app := testApp(t, editor.NewBuffer("/p/a.go"), editor.NewBuffer("/p/b.go"))

	app = sendKey(app, keyRunes("p"))

	if app.panel == nil {
		t.Fatal("panel not open after filter key")
	}
	if app.controller == nil || app.controller.State() != tabs.StateActive {
		t.Error("controller not active after filter key")
	}
}

func TestAppDeclinesPanelOnEmptyWindow(t *testing.T) {
	app := testApp(t)

	app = sendKey(app, keyRunes("p"))

	if app.panel != nil {
		t.Error("panel opened for an empty window")
	}
	if app.statusMsg != "no open tabs" {
		t.Errorf("statusMsg = %q, want %q", app.statusMsg, "no open tabs")
	}
}

func TestAppConfirmSwitchesTab(t *testing.T) {
	first := editor.NewBuffer("/p/first.go")
	second := editor.NewBuffer("/p/second.go")
	app := testApp(t, first, second)

	app = sendKey(app, keyRunes("p"))
	app = sendKey(app, keyRunes("second"))
	app = sendKey(app, tea.KeyMsg{Type: tea.KeyEnter})

	if app.panel != nil {
		t.Error("panel still open after confirm")
	}
	if active := app.workspace.ActiveView(); active == nil || active.ID() != second.ID() {
		t.Error("confirm did not switch the active tab")
	}
	if !strings.Contains(app.statusMsg, "second.go") {
		t.Errorf("statusMsg = %q, want it to name the new tab", app.statusMsg)
	}
}

func TestAppCancelKeepsActiveTab(t *testing.T) {
	first := editor.NewBuffer("/p/first.go")
	second := editor.NewBuffer("/p/second.go")
	app := testApp(t, first, second)

	app = sendKey(app, keyRunes("p"))
	app = sendKey(app, tea.KeyMsg{Type: tea.KeyEsc})

	if app.panel != nil {
		t.Error("panel still open after cancel")
	}
	if active := app.workspace.ActiveView(); active == nil || active.ID() != first.ID() {
		t.Error("cancel changed the active tab")
	}
	if app.statusMsg != "cancelled" {
		t.Errorf("statusMsg = %q, want %q", app.statusMsg, "cancelled")
	}
}

func TestAppToggleDirtyShowsCaption(t *testing.T) {
	b := editor.NewBuffer("/p/work.go")
	app := testApp(t, b)

	app = sendKey(app, keyRunes("d"))

	if !b.IsDirty() {
		t.Error("toggle dirty key did not mark the buffer")
	}
	if view := app.View(); !strings.Contains(view, "Unsaved Changes") {
		t.Error("main screen does not show the Unsaved Changes caption")
	}
}

func TestAppCloseTab(t *testing.T) {
	first := editor.NewBuffer("/p/first.go")
	second := editor.NewBuffer("/p/second.go")
	app := testApp(t, first, second)

	app = sendKey(app, keyRunes("x"))

	if active := app.workspace.ActiveView(); active == nil || active.ID() != second.ID() {
		t.Error("closing the active tab should focus the next one")
	}
	if len(app.workspace.Views()) != 1 {
		t.Errorf("workspace has %d views, want 1", len(app.workspace.Views()))
	}
}

func TestAppViewListsTabs(t *testing.T) {
	app := testApp(t, editor.NewBuffer("/p/alpha.go"), editor.NewBuffer("/p/beta.go"))

	view := app.View()
	if !strings.Contains(view, "alpha.go") || !strings.Contains(view, "beta.go") {
		t.Error("main screen does not list the open tabs")
	}
}

func TestAppViewEmptyWorkspace(t *testing.T) {
	app := testApp(t)

	if view := app.View(); !strings.Contains(view, "no open tabs") {
		t.Error("main screen does not report an empty window")
	}
}
