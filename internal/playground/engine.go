// Package playground implements the selection engine behind the
// customization playground: four coupled axes (demo, approach, slot, tokens)
// kept consistent by a pure reducer, and the derived outputs recomputed
// after every event.
package playground

import (
	"errors"

	"github.com/alexisbeaulieu97/playground/internal/catalog"
	"github.com/alexisbeaulieu97/playground/internal/logger"
	"github.com/alexisbeaulieu97/playground/internal/styling"
	"github.com/alexisbeaulieu97/playground/internal/tokens"
	"github.com/alexisbeaulieu97/playground/internal/ui/components"
	playerrors "github.com/alexisbeaulieu97/playground/pkg/errors"
)

// Options configures an Engine.
type Options struct {
	// Logger receives debug entries for rejected and clamped events. Nil disables logging.
	Logger *logger.Logger
	// Stylesheet collects the rules generated for the preview. Nil keeps rules on the elements only.
	Stylesheet *styling.Stylesheet
}

// Engine owns a Selection and its derived View. It is not safe for
// concurrent use; one goroutine drives it.
type Engine struct {
	cat       *catalog.Catalog
	component string
	log       *logger.Logger
	sheet     *styling.Stylesheet

	sel  Selection
	view View
}

// New creates an engine over an immutable catalog. componentName is the
// display name and the component used in generated code; when empty the
// catalog's own component name is used.
func New(cat *catalog.Catalog, componentName string, opts Options) *Engine {
	if componentName == "" {
		componentName = cat.Component()
	}

	e := &Engine{
		cat:       cat,
		component: componentName,
		log:       opts.Logger,
		sheet:     opts.Stylesheet,
		sel:       Initial(cat),
	}
	e.view = derive(e.cat, e.component, e.sel, e.sheet)
	return e
}

// Dispatch applies one event. Rejected events leave the state untouched;
// clamped token writes are applied with the clamped value.
func (e *Engine) Dispatch(ev Event) {
	_ = e.Apply(ev)
}

// Apply is Dispatch for callers that report rejections themselves. The
// returned error is the *errors.SelectionError the reducer produced.
func (e *Engine) Apply(ev Event) error {
	next, err := Reduce(e.cat, e.sel, ev)
	if err != nil {
		e.logRejection(ev, err)
	}
	e.sel = next
	e.view = derive(e.cat, e.component, e.sel, e.sheet)
	return err
}

// Replay applies events in order.
func (e *Engine) Replay(events ...Event) {
	for _, ev := range events {
		e.Dispatch(ev)
	}
}

func (e *Engine) logRejection(ev Event, err error) {
	if !e.log.DebugEnabled() {
		return
	}

	fields := map[string]any{"event": ev.Name(), "input": ev.String()}
	msg := "event rejected"

	var selErr *playerrors.SelectionError
	if errors.As(err, &selErr) {
		fields["kind"] = string(selErr.Kind)
		fields["axis"] = selErr.Axis
		fields["value"] = selErr.Value
		if selErr.Kind == playerrors.KindOutOfRangeToken {
			msg = "token clamped"
		}
	}
	e.log.WithFields(fields).Debug(msg)
}

// SelectDemo selects a demo. Unknown names are ignored.
func (e *Engine) SelectDemo(name string) {
	e.Dispatch(SelectDemo{Demo: name})
}

// SetSelectedCustomizationOption selects an approach of the current demo.
func (e *Engine) SetSelectedCustomizationOption(key string) {
	e.Dispatch(SelectApproach{Key: key})
}

// SetSelectedSlot selects a slot of the current approach.
func (e *Engine) SetSelectedSlot(slot string) {
	e.Dispatch(SelectSlot{Slot: slot})
}

// HandleTokenChange writes a token for the current demo and slot.
func (e *Engine) HandleTokenChange(token string, value any) {
	e.Dispatch(SetToken{Token: token, Value: value})
}

// Catalog returns the catalog the engine was built with.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// ComponentName returns the display name.
func (e *Engine) ComponentName() string {
	return e.component
}

// Selection returns the current selection.
func (e *Engine) Selection() Selection {
	return e.sel
}

// View returns the derived state snapshot.
func (e *Engine) View() View {
	return e.view
}

// SelectedDemo returns the selected demo name.
func (e *Engine) SelectedDemo() string {
	return e.view.Demo
}

// CustomizationOptions returns the approaches of the selected demo in order.
func (e *Engine) CustomizationOptions() []Option {
	return append([]Option(nil), e.view.Options...)
}

// SelectedCustomizationOption returns the selected approach key.
func (e *Engine) SelectedCustomizationOption() string {
	return e.view.Approach
}

// SelectedSlot returns the selected slot, empty when the approach has none.
func (e *Engine) SelectedSlot() string {
	return e.view.Slot
}

// AvailableSlots returns the slots of the selected approach in order.
func (e *Engine) AvailableSlots() []string {
	return append([]string(nil), e.view.Slots...)
}

// SelectedExample returns the selected approach entry, or false when the
// selection is incomplete.
func (e *Engine) SelectedExample() (catalog.ApproachVariant, bool) {
	if e.view.Example == nil {
		return catalog.ApproachVariant{}, false
	}
	return *e.view.Example, true
}

// SelectedTokens returns the tokens in effect for the selected demo and slot.
func (e *Engine) SelectedTokens() tokens.StyleTokens {
	return e.view.Tokens
}

// CodeExample returns the generated snippet, empty when the selection is incomplete.
func (e *Engine) CodeExample() string {
	return e.view.Code
}

// StyledElement returns the live preview.
func (e *Engine) StyledElement() styling.StyledElement {
	return e.view.Styled
}

// ComponentProps returns the props of the selected slot.
func (e *Engine) ComponentProps() components.Props {
	return components.Props{}.Merge(e.view.Props)
}

// Interactive reports whether the token controls and code should be shown.
func (e *Engine) Interactive() bool {
	return e.view.Interactive()
}
