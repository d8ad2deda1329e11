package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/hadar/tabfilter/internal/config"
	"github.com/hadar/tabfilter/internal/editor"
	"github.com/hadar/tabfilter/internal/tabs"
)

// App is the main Bubble Tea model: a minimal host window around the tab
// filter. The main screen shows the open tabs of the workspace; the filter
// key starts a session and overlays the quick panel.
type App struct {
	workspace    *editor.Workspace
	settings     config.Settings
	settingsPath string
	keys         AppKeyMap

	panel      *Panel
	controller *tabs.Controller

	watcher    *fsnotify.Watcher
	settingsCh chan config.Settings

	width     int
	height    int
	statusMsg string
	quitting  bool
}

// NewApp creates the application around a workspace. The settings file is
// watched so edits apply to the next session without a restart.
func NewApp(workspace *editor.Workspace, settings config.Settings, settingsPath string) *App {
	app := &App{
		workspace:    workspace,
		settings:     settings,
		settingsPath: settingsPath,
		keys:         DefaultAppKeyMap(),
		width:        80,
		height:       24,
	}

	if settingsPath != "" {
		app.settingsCh = make(chan config.Settings, 1)
		watcher, err := config.Watch(settingsPath, func(s config.Settings) {
			select {
			case app.settingsCh <- s:
			default:
			}
		})
		if err == nil {
			app.watcher = watcher
		}
	}

	return app
}

// Init initializes the application.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("Tab Filter"),
		a.waitForSettings(),
	)
}

type settingsReloadedMsg struct {
	settings config.Settings
}

type clearStatusMsg struct{}

// waitForSettings blocks on the next settings reload from the file watcher.
func (a *App) waitForSettings() tea.Cmd {
	if a.settingsCh == nil {
		return nil
	}
	return func() tea.Msg {
		s, ok := <-a.settingsCh
		if !ok {
			return nil
		}
		return settingsReloadedMsg{settings: s}
	}
}

// setStatus sets a status message and clears it after 2 seconds.
func (a *App) setStatus(msg string) tea.Cmd {
	a.statusMsg = msg
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.panel != nil {
			a.panel.SetSize(msg.Width, msg.Height)
		}
		return a, nil

	case settingsReloadedMsg:
		a.settings = msg.settings
		return a, tea.Batch(a.setStatus("settings reloaded"), a.waitForSettings())

	case clearStatusMsg:
		a.statusMsg = ""
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a.quit()
		}
		if a.panel != nil {
			return a.updatePanel(msg)
		}
		return a.updateMain(msg)
	}

	return a, nil
}

// updatePanel forwards input to the open quick panel and finishes the
// session once the panel reports it is done.
func (a *App) updatePanel(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.panel, cmd = a.panel.Update(msg)
	if !a.panel.Done() {
		return a, cmd
	}

	state := a.controller.State()
	a.panel = nil
	a.controller = nil

	switch state {
	case tabs.StateConfirmed:
		return a, a.setStatus("switched to " + a.activeLabel())
	case tabs.StateCancelled:
		return a, a.setStatus("cancelled")
	default:
		// A tab vanished mid-session; the controller dropped the action.
		return a, a.setStatus("tab closed during selection")
	}
}

// updateMain handles main screen keys.
func (a *App) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.quit()

	case key.Matches(msg, a.keys.Filter):
		return a, a.startSession(false)

	case key.Matches(msg, a.keys.GroupFilter):
		return a, a.startSession(true)

	case key.Matches(msg, a.keys.ToggleDirty):
		if active, ok := a.workspace.ActiveView().(*editor.Buffer); ok {
			active.SetDirty(!active.IsDirty())
		}
		return a, nil

	case key.Matches(msg, a.keys.CloseTab):
		if active := a.workspace.ActiveView(); active != nil {
			a.workspace.Close(active)
		}
		return a, nil
	}
	return a, nil
}

// startSession opens a quick panel session over the workspace.
func (a *App) startSession(activeGroupOnly bool) tea.Cmd {
	controller := tabs.NewController(a.workspace, tabs.SessionOptions{
		Options: tabs.Options{
			ShowCaptions:     a.settings.ShowCaptions,
			IncludePath:      a.settings.IncludePath,
			ShowGroupCaption: a.settings.ShowGroupCaption,
			ActiveGroupOnly:  activeGroupOnly,
		},
		PreviewTab: a.settings.PreviewTab,
	})

	panel := NewPanel(a.width, a.height)
	if !controller.Start(panel) {
		return a.setStatus("no open tabs")
	}
	a.panel = panel
	a.controller = controller
	return nil
}

func (a *App) quit() (tea.Model, tea.Cmd) {
	a.quitting = true
	if a.watcher != nil {
		a.watcher.Close()
	}
	return a, tea.Quit
}

// activeLabel returns a short label for the active view.
func (a *App) activeLabel() string {
	active := a.workspace.ActiveView()
	if active == nil {
		return "nothing"
	}
	descriptors := tabs.NewCollector(a.workspace).Collect(tabs.Options{})
	for _, d := range descriptors {
		if d.View.ID() == active.ID() {
			return d.Caption
		}
	}
	return "nothing"
}

// View renders the main screen, with the quick panel overlaid when open.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Tab Filter"))
	b.WriteString("\n\n")

	descriptors := tabs.NewCollector(a.workspace).Collect(tabs.Options{
		ShowCaptions:     a.settings.ShowCaptions,
		IncludePath:      a.settings.IncludePath,
		ShowGroupCaption: a.settings.ShowGroupCaption,
	})
	if len(descriptors) == 0 {
		b.WriteString(mutedStyle.Render("no open tabs"))
		b.WriteString("\n")
	}
	for _, d := range descriptors {
		mark := "  "
		line := itemStyle.Render(truncate(d.Caption, max(20, a.width-4)))
		if d.IsCurrent {
			mark = currentMarkStyle.Render("> ")
		}
		b.WriteString(mark + line + "\n")
	}

	if a.panel != nil {
		b.WriteString("\n")
		b.WriteString(a.panel.View())
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		help := fmt.Sprintf("%s · %s · %s · %s · %s",
			a.keys.Filter.Help().Key+" "+a.keys.Filter.Help().Desc,
			a.keys.GroupFilter.Help().Key+" "+a.keys.GroupFilter.Help().Desc,
			a.keys.ToggleDirty.Help().Key+" "+a.keys.ToggleDirty.Help().Desc,
			a.keys.CloseTab.Help().Key+" "+a.keys.CloseTab.Help().Desc,
			a.keys.Quit.Help().Key+" "+a.keys.Quit.Help().Desc,
		)
		b.WriteString(mutedStyle.Render(help))
		b.WriteString("\n")
	}

	if a.statusMsg != "" {
		b.WriteString(statusBarStyle.Render(a.statusMsg))
		b.WriteString("\n")
	}

	return b.String()
}
