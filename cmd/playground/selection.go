package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/playground/internal/playground"
	"github.com/alexisbeaulieu97/playground/internal/tokens"
	playerrors "github.com/alexisbeaulieu97/playground/pkg/errors"
)

// selectionFlags are the flags that replay a selection onto a fresh engine.
type selectionFlags struct {
	demo     string
	approach string
	slot     string
	color    string
	radius   int
	width    int
}

func (f *selectionFlags) register(cmd *cobra.Command, withApproach bool) {
	fs := cmd.Flags()
	fs.StringVar(&f.demo, "demo", "", "Demo to select (default: first demo)")
	if withApproach {
		fs.StringVar(&f.approach, "approach", "", "Approach key to select (default: first approach)")
	}
	fs.StringVar(&f.slot, "slot", "", "Slot to style (default: first slot)")
	fs.StringVar(&f.color, "color", "", "Palette color (blue, purple, red, green, yellow, cyan)")
	fs.IntVar(&f.radius, "border-radius", 0, "Border radius in px (0-20)")
	fs.IntVar(&f.width, "border-width", 0, "Border width in px (0-20)")
}

// events turns the flags into engine events in axis order. Numeric tokens
// only produce an event when their flag was given.
func (f *selectionFlags) events(cmd *cobra.Command) []playground.Event {
	var out []playground.Event
	if f.demo != "" {
		out = append(out, playground.SelectDemo{Demo: f.demo})
	}
	if f.approach != "" {
		out = append(out, playground.SelectApproach{Key: f.approach})
	}
	if f.slot != "" {
		out = append(out, playground.SelectSlot{Slot: f.slot})
	}
	if f.color != "" {
		out = append(out, playground.SetToken{Token: string(tokens.Color), Value: f.color})
	}
	if cmd.Flags().Changed("border-radius") {
		out = append(out, playground.SetToken{Token: string(tokens.BorderRadius), Value: f.radius})
	}
	if cmd.Flags().Changed("border-width") {
		out = append(out, playground.SetToken{Token: string(tokens.BorderWidth), Value: f.width})
	}
	return out
}

// applySelection replays events and fails on the first one the engine
// rejects. Clamped token writes are kept and reported as warnings.
func applySelection(app *AppContext, engine *playground.Engine, events []playground.Event) error {
	for _, ev := range events {
		err := engine.Apply(ev)
		switch {
		case err == nil:
		case errors.Is(err, playerrors.ErrOutOfRangeToken):
			app.Logger.WithFields(map[string]any{"input": ev.String()}).Warn("token value clamped")
		default:
			return err
		}
	}
	return nil
}
