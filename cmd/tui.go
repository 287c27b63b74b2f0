package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"justmeditation/internal/app"
	"justmeditation/internal/tui"
	"justmeditation/internal/ui/preferences"
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}
}

func runTUI(opts *rootOptions) error {
	settings, path, err := opts.loadSettings()
	if err != nil {
		return err
	}

	application, err := app.New(app.Options{Settings: settings, SettingsPath: path})
	if err != nil {
		return err
	}
	defer func() {
		_ = application.Close()
	}()

	model := tui.New(application.Driver, tui.Options{
		Settings: application.Settings(),
		Events:   application.Driver.Subscribe(32),
		OnSettings: func(updated preferences.Settings) {
			application.Apply(updated)
			_ = application.Save()
		},
	})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
