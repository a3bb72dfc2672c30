package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/playground/internal/docs"
)

type exportOptions struct {
	selection selectionFlags
	format    string
	output    string
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a documentation fragment for a selection",
		Example: `  playground export --demo Contained --approach theme > button.md
  playground export --format html --output button.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags, opts)
		},
	}

	opts.selection.register(cmd, true)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "markdown", "Output format (markdown, html)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, flags *rootFlags, opts *exportOptions) error {
	format, err := docs.ParseFormat(opts.format)
	if err != nil {
		return newCommandError("export", "parsing --format", err, "Use --format markdown or --format html.")
	}

	app, err := loadApp(cmd, flags, "export")
	if err != nil {
		return err
	}

	engine := app.NewEngine()
	if err := applySelection(app, engine, opts.selection.events(cmd)); err != nil {
		return newCommandError("export", "applying selection", err, "Run 'playground catalog' to list demos, approaches and slots.")
	}

	view := engine.View()
	data, err := docs.Render(view, view.Styled.CSS(), format)
	if err != nil {
		return newCommandError("export", "rendering document", err, "Retry with --format markdown.")
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return newCommandError("export", fmt.Sprintf("writing %s", opts.output), err, "Check that the directory exists and is writable.")
	}
	app.Logger.WithFields(map[string]any{"path": opts.output, "format": string(format)}).Info("document written")
	return nil
}
