package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/playground/internal/playground"
	"github.com/alexisbeaulieu97/playground/pkg/diff"
)

type compareOptions struct {
	selection selectionFlags
	stat      bool
}

func newCompareCmd(flags *rootFlags) *cobra.Command {
	opts := &compareOptions{}

	cmd := &cobra.Command{
		Use:   "compare <approach> <approach>",
		Short: "Diff the code two approaches produce for the same selection",
		Example: `  playground compare sx css --demo Contained --slot label
  playground compare sx theme --color red --stat`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, flags, opts, args[0], args[1])
		},
	}

	opts.selection.register(cmd, false)
	cmd.Flags().BoolVar(&opts.stat, "stat", false, "Only print the number of changed lines")

	return cmd
}

func runCompare(cmd *cobra.Command, flags *rootFlags, opts *compareOptions, left, right string) error {
	app, err := loadApp(cmd, flags, "compare")
	if err != nil {
		return err
	}

	leftView, err := codeFor(cmd, app, opts, left)
	if err != nil {
		return err
	}
	rightView, err := codeFor(cmd, app, opts, right)
	if err != nil {
		return err
	}

	a, b := []byte(leftView.Code), []byte(rightView.Code)
	out := cmd.OutOrStdout()
	if opts.stat {
		stats := diff.Count(a, b)
		fmt.Fprintf(out, "%d insertions(+), %d deletions(-)\n", stats.Added, stats.Removed)
		return nil
	}

	unified := diff.Unified(a, b, label(leftView), label(rightView))
	if unified == "" {
		fmt.Fprintln(out, "No differences.")
		return nil
	}
	fmt.Fprint(out, unified)
	return nil
}

// codeFor replays the shared selection with one approach on a fresh engine.
func codeFor(cmd *cobra.Command, app *AppContext, opts *compareOptions, approach string) (playground.View, error) {
	engine := app.NewEngine()

	sel := opts.selection
	sel.approach = approach
	events := sel.events(cmd)

	if err := applySelection(app, engine, events); err != nil {
		return playground.View{}, newCommandError("compare", fmt.Sprintf("selecting approach %q", approach), err, "Run 'playground catalog' to list the approaches of each demo.")
	}

	v := engine.View()
	if !v.Interactive() {
		return playground.View{}, newCommandError("compare", fmt.Sprintf("rendering approach %q", approach), errors.New("selection has no code example"), "Pick a demo and slot the approach defines.")
	}
	return v, nil
}

func label(v playground.View) string {
	return fmt.Sprintf("%s/%s/%s", v.Demo, v.Approach, v.Slot)
}
