package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hadar/tabfilter/internal/config"
	"github.com/hadar/tabfilter/internal/editor"
	"github.com/hadar/tabfilter/internal/ui"
)

func main() {
	var (
		settingsPath string
		showCaptions bool
		includePath  bool
		previewTab   bool
		groupCaption bool
		scratch      []string
		groups       int
	)

	rootCmd := &cobra.Command{
		Use:   "tabfilter [file...]",
		Short: "Quick-selection panel over a window of open tabs",
		Long: `tabfilter opens the given files as tabs in an in-memory editor window
and presents a filterable quick panel to jump between them, with optional
status captions, path disambiguation and live preview.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.Load(settingsPath)

			// Explicit flags win over the settings file.
			flags := cmd.Flags()
			if flags.Changed("show-captions") {
				settings.ShowCaptions = showCaptions
			}
			if flags.Changed("include-path") {
				settings.IncludePath = includePath
			}
			if flags.Changed("preview") {
				settings.PreviewTab = previewTab
			}
			if flags.Changed("group-caption") {
				settings.ShowGroupCaption = groupCaption
			}

			if groups < 1 {
				groups = 1
			}

			workspace := editor.NewWorkspace()
			for i, path := range args {
				buffer, err := editor.Open(path)
				if err != nil {
					return fmt.Errorf("open %s: %w", path, err)
				}
				workspace.Append(i%groups, buffer)
			}
			for _, line := range scratch {
				workspace.Append(0, editor.NewScratchBuffer(line))
			}

			app := ui.NewApp(workspace, settings, settingsPath)
			_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
			return err
		},
	}

	rootCmd.Flags().StringVar(&settingsPath, "settings", config.DefaultPath(), "settings file path")
	rootCmd.Flags().BoolVar(&showCaptions, "show-captions", true, "append status captions to tab labels")
	rootCmd.Flags().BoolVar(&includePath, "include-path", false, "disambiguate same-named files with path suffixes")
	rootCmd.Flags().BoolVar(&previewTab, "preview", false, "preview the highlighted tab")
	rootCmd.Flags().BoolVar(&groupCaption, "group-caption", false, "append group captions in split layouts")
	rootCmd.Flags().StringArrayVar(&scratch, "scratch", nil, "add an unsaved buffer with the given first line (repeatable)")
	rootCmd.Flags().IntVar(&groups, "groups", 1, "distribute files across this many groups")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
