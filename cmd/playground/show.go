package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/playground/internal/catalog"
	"github.com/alexisbeaulieu97/playground/internal/playground"
	"github.com/alexisbeaulieu97/playground/internal/styling"
	"github.com/alexisbeaulieu97/playground/internal/tokens"
	"github.com/alexisbeaulieu97/playground/internal/ui/components"
)

type showOptions struct {
	selection  selectionFlags
	jsonOutput bool
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the preview and code for a selection",
		Example: `  playground show --demo Secondary --approach css --slot label
  playground show --component slider --color green --border-width 3 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, flags, opts)
		},
	}

	opts.selection.register(cmd, true)
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the derived state as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, flags *rootFlags, opts *showOptions) error {
	app, err := loadApp(cmd, flags, "show")
	if err != nil {
		return err
	}

	engine := app.NewEngine()
	if err := applySelection(app, engine, opts.selection.events(cmd)); err != nil {
		return newCommandError("show", "applying selection", err, "Run 'playground catalog' to list demos, approaches and slots.")
	}

	if opts.jsonOutput {
		return renderShowJSON(cmd.OutOrStdout(), engine.View())
	}
	renderShowText(cmd.OutOrStdout(), engine.View())
	return nil
}

func renderShowText(w io.Writer, v playground.View) {
	fmt.Fprintf(w, "Component: %s\n", v.Component)
	if len(v.Demos) == 0 {
		fmt.Fprintln(w, "\nThe catalog has no demos.")
		return
	}

	fmt.Fprintf(w, "Demo:      %s (of %s)\n", v.Demo, strings.Join(v.Demos, ", "))
	fmt.Fprintf(w, "Approach:  %s\n", valueOrFallback(approachSummary(v), "(none)"))
	fmt.Fprintf(w, "Slot:      %s\n", valueOrFallback(v.Slot, "(none)"))

	if !v.Interactive() {
		fmt.Fprintln(w, "\nSelection incomplete; no code example.")
		return
	}

	fmt.Fprintf(w, "Tokens:    %s\n", formatTokens(v.Tokens))
	fmt.Fprintf(w, "\n%s\n", v.Recommendation().Message())
	fmt.Fprintf(w, "\nPreview:\n%s\n", v.Styled.View(components.DefaultTheme()))
	fmt.Fprintf(w, "\nCode:\n%s\n", v.Code)
	if css := v.Styled.CSS(); css != "" {
		fmt.Fprintf(w, "\nStylesheet:\n%s", css)
	}
}

func approachSummary(v playground.View) string {
	if v.Example == nil {
		return ""
	}
	return fmt.Sprintf("%s (%s) [%s]", v.Approach, v.Example.Label(), v.Recommendation().Label())
}

func formatTokens(t tokens.StyleTokens) string {
	return fmt.Sprintf("%s=%s %s=%dpx %s=%dpx",
		tokens.Color, t.Color,
		tokens.BorderRadius, t.BorderRadius,
		tokens.BorderWidth, t.BorderWidth)
}

func valueOrFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

type showJSONPayload struct {
	Component      string                          `json:"component"`
	Demos          []string                        `json:"demos"`
	Demo           string                          `json:"demo"`
	Approaches     []playground.Option             `json:"approaches"`
	Approach       string                          `json:"approach"`
	Recommendation catalog.Recommendation          `json:"recommendation,omitempty"`
	Slots          []string                        `json:"slots"`
	Slot           string                          `json:"slot"`
	Interactive    bool                            `json:"interactive"`
	Tokens         *tokens.StyleTokens             `json:"tokens,omitempty"`
	ClassName      string                          `json:"className,omitempty"`
	Computed       map[string]styling.Declarations `json:"computed,omitempty"`
	Code           string                          `json:"code,omitempty"`
	CSS            string                          `json:"css,omitempty"`
}

func renderShowJSON(w io.Writer, v playground.View) error {
	payload := showJSONPayload{
		Component:      v.Component,
		Demos:          v.Demos,
		Demo:           v.Demo,
		Approaches:     v.Options,
		Approach:       v.Approach,
		Recommendation: v.Recommendation(),
		Slots:          v.Slots,
		Slot:           v.Slot,
		Interactive:    v.Interactive(),
	}
	if payload.Interactive {
		payload.Tokens = &v.Tokens
		payload.ClassName = v.Styled.ClassName()
		payload.Computed = v.Styled.Computed()
		payload.Code = v.Code
		payload.CSS = v.Styled.CSS()
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
