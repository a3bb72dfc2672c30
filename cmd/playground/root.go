package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	configFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "playground",
		Short:         "Explore component styling approaches and the code they produce",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Interactive on a terminal, a plain snapshot otherwise.
			if isTerminal(cmd.OutOrStdout()) {
				return runTUI(cmd, flags)
			}
			return runShow(cmd, flags, &showOptions{})
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "Config file (default ~/.config/playground/config.yaml)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	pf.String("catalog", "", "Catalog YAML file (default: built-in catalog)")
	pf.String("catalog-repo", "", "Git repository holding the catalog")
	pf.String("catalog-ref", "", "Branch of the catalog repository")
	pf.String("catalog-path", "", "Catalog path inside the repository")
	pf.String("component", "", "Built-in catalog to use (alert, badge, button, slider)")
	pf.String("log-level", "", "Log level (trace, debug, info, warn, error, disabled)")

	cmd.AddCommand(newTUICmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newCompareCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newCatalogCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
