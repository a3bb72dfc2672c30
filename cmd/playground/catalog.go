package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/playground/internal/catalog"
)

type catalogOptions struct {
	jsonOutput bool
}

func newCatalogCmd(flags *rootFlags) *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:     "catalog",
		Aliases: []string{"ls"},
		Short:   "List the demos, approaches and slots of the catalog",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the catalog as JSON")
	cmd.AddCommand(&cobra.Command{
		Use:   "builtin",
		Short: "List the built-in catalogs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range catalog.BuiltinComponents() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	})

	return cmd
}

type catalogApproachJSON struct {
	Key            string                 `json:"key"`
	Label          string                 `json:"label"`
	Kind           string                 `json:"kind"`
	Recommendation catalog.Recommendation `json:"recommendation"`
	Slots          []string               `json:"slots"`
}

type catalogDemoJSON struct {
	Name       string                `json:"name"`
	Element    string                `json:"element"`
	Approaches []catalogApproachJSON `json:"approaches"`
}

func runCatalog(cmd *cobra.Command, flags *rootFlags, opts *catalogOptions) error {
	app, err := loadApp(cmd, flags, "catalog")
	if err != nil {
		return err
	}

	demos := make([]catalogDemoJSON, 0, app.Catalog.Len())
	for _, demo := range app.Catalog.Demos() {
		entry := catalogDemoJSON{Name: demo.Name(), Element: demo.Component()}
		for _, a := range demo.Approaches() {
			entry.Approaches = append(entry.Approaches, catalogApproachJSON{
				Key:            a.Key(),
				Label:          a.Label(),
				Kind:           string(a.Approach().Kind()),
				Recommendation: a.Recommendation(),
				Slots:          a.Slots(),
			})
		}
		demos = append(demos, entry)
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]any{"component": app.Catalog.Component(), "demos": demos})
	}

	fmt.Fprintf(out, "%s (%s)\n", app.Catalog.Component(), app.Settings.Source())
	if len(demos) == 0 {
		fmt.Fprintln(out, "  no demos")
		return nil
	}
	for _, demo := range demos {
		fmt.Fprintf(out, "\n%s [%s]\n", demo.Name, demo.Element)
		for _, a := range demo.Approaches {
			fmt.Fprintf(out, "  %-8s %-18s %-6s %-11s slots: %s\n",
				a.Key, a.Label, a.Kind, a.Recommendation.Label(), valueOrFallback(strings.Join(a.Slots, ", "), "(none)"))
		}
	}
	return nil
}
