package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/playground/internal/tui"
)

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive playground",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, flags)
		},
	}
}

func runTUI(cmd *cobra.Command, flags *rootFlags) error {
	app, err := loadApp(cmd, flags, "tui")
	if err != nil {
		return err
	}

	app.Logger.Info("launching playground")
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if ctx := cmd.Context(); ctx != nil {
		opts = append(opts, tea.WithContext(ctx))
	}

	program := tea.NewProgram(tui.NewModel(app.NewEngine()), opts...)
	if _, err := program.Run(); err != nil {
		return newCommandError("tui", "running the playground", err, "Run 'playground show' for a non-interactive snapshot.")
	}
	return nil
}
