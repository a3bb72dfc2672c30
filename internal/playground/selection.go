package playground

import (
	"fmt"
	"math"
	"strconv"

	"github.com/alexisbeaulieu97/playground/internal/catalog"
	"github.com/alexisbeaulieu97/playground/internal/tokens"
	playerrors "github.com/alexisbeaulieu97/playground/pkg/errors"
)

// Selection is the four-axis state of the playground. It is a value; Reduce
// returns a new Selection and never modifies its input.
type Selection struct {
	Demo     string
	Approach string
	// Slot is empty only when the selected approach defines no slots.
	Slot   string
	Tokens tokens.Store
}

// TokenKey returns the store key for the current demo and slot.
func (s Selection) TokenKey() tokens.Key {
	return tokens.Key{Demo: s.Demo, Slot: s.Slot}
}

// Event is an input raised by the presentational layer.
type Event interface {
	// Name identifies the event in logs.
	Name() string
	fmt.Stringer
}

// SelectDemo selects a demo by name.
type SelectDemo struct{ Demo string }

// SelectApproach selects an approach of the current demo by key.
type SelectApproach struct{ Key string }

// SelectSlot selects a slot of the current approach.
type SelectSlot struct{ Slot string }

// SetToken writes a token for the current demo and slot. Value is a color
// name for "color" and a number for the numeric tokens.
type SetToken struct {
	Token string
	Value any
}

func (SelectDemo) Name() string     { return "select_demo" }
func (SelectApproach) Name() string { return "select_approach" }
func (SelectSlot) Name() string     { return "select_slot" }
func (SetToken) Name() string       { return "set_token" }

func (e SelectDemo) String() string     { return "demo=" + e.Demo }
func (e SelectApproach) String() string { return "approach=" + e.Key }
func (e SelectSlot) String() string     { return "slot=" + e.Slot }
func (e SetToken) String() string       { return fmt.Sprintf("%s=%v", e.Token, e.Value) }

// Initial returns the starting selection: the first demo, its first approach
// and that approach's first slot.
func Initial(cat *catalog.Catalog) Selection {
	sel := Selection{Tokens: tokens.NewStore()}
	demo, ok := cat.First()
	if !ok {
		return sel
	}
	sel.Demo = demo.Name()
	sel.Approach, sel.Slot = reconcile(demo, "", "")
	return sel
}

// Reduce applies ev to sel. A rejected event returns sel unchanged with a
// *errors.SelectionError. A clamped token write is applied and also reports
// an OutOfRangeToken error.
func Reduce(cat *catalog.Catalog, sel Selection, ev Event) (Selection, error) {
	switch e := ev.(type) {
	case SelectDemo:
		return selectDemo(cat, sel, e.Demo)
	case SelectApproach:
		return selectApproach(cat, sel, e.Key)
	case SelectSlot:
		return selectSlot(cat, sel, e.Slot)
	case SetToken:
		return setToken(sel, e.Token, e.Value)
	default:
		return sel, playerrors.NewSelectionError(playerrors.KindInvalidSelection, "event", fmt.Sprintf("%T", ev))
	}
}

func selectDemo(cat *catalog.Catalog, sel Selection, name string) (Selection, error) {
	demo, ok := cat.Demo(name)
	if !ok {
		return sel, playerrors.NewSelectionError(playerrors.KindInvalidSelection, "demo", name)
	}
	if name == sel.Demo {
		return sel, nil
	}

	next := Selection{Demo: name, Tokens: tokens.NewStore()}
	next.Approach, next.Slot = reconcile(demo, sel.Approach, sel.Slot)
	return next, nil
}

func selectApproach(cat *catalog.Catalog, sel Selection, key string) (Selection, error) {
	demo, ok := cat.Demo(sel.Demo)
	if !ok {
		return sel, playerrors.NewSelectionError(playerrors.KindIncompleteSelection, "demo", sel.Demo)
	}
	if _, ok := demo.Approach(key); !ok {
		return sel, playerrors.NewSelectionError(playerrors.KindInvalidSelection, "approach", key)
	}

	next := sel
	next.Approach, next.Slot = reconcile(demo, key, sel.Slot)
	return next, nil
}

func selectSlot(cat *catalog.Catalog, sel Selection, slot string) (Selection, error) {
	demo, ok := cat.Demo(sel.Demo)
	if !ok {
		return sel, playerrors.NewSelectionError(playerrors.KindIncompleteSelection, "demo", sel.Demo)
	}
	variant, ok := demo.Approach(sel.Approach)
	if !ok {
		return sel, playerrors.NewSelectionError(playerrors.KindIncompleteSelection, "approach", sel.Approach)
	}
	if _, ok := variant.Slot(slot); !ok {
		return sel, playerrors.NewSelectionError(playerrors.KindInvalidSelection, "slot", slot)
	}

	next := sel
	next.Slot = slot
	return next, nil
}

func setToken(sel Selection, token string, value any) (Selection, error) {
	if sel.Demo == "" || sel.Slot == "" {
		return sel, playerrors.NewSelectionError(playerrors.KindIncompleteSelection, "slot", sel.Slot)
	}

	name, ok := tokens.ParseName(token)
	if !ok {
		return sel, playerrors.NewSelectionError(playerrors.KindInvalidSelection, "token", token)
	}

	next := sel
	if name == tokens.Color {
		color, ok := colorValue(value)
		if !ok {
			return sel, playerrors.NewSelectionError(playerrors.KindInvalidSelection, string(name), fmt.Sprint(value))
		}
		store, err := sel.Tokens.SetColor(sel.TokenKey(), color)
		if err != nil {
			return sel, err
		}
		next.Tokens = store
		return next, nil
	}

	n, ok := numberValue(value)
	if !ok {
		return sel, playerrors.NewSelectionError(playerrors.KindInvalidSelection, string(name), fmt.Sprint(value))
	}
	store, clamped, err := sel.Tokens.SetNumber(sel.TokenKey(), name, n)
	if err != nil {
		return sel, err
	}
	next.Tokens = store
	if clamped {
		return next, tokens.OutOfRange(name, n)
	}
	return next, nil
}

// reconcile keeps approach and slot when the demo still offers them and
// otherwise falls back to the first entry in catalog order.
func reconcile(demo catalog.DemoEntry, approach, slot string) (string, string) {
	variant, ok := demo.Approach(approach)
	if !ok {
		approaches := demo.Approaches()
		if len(approaches) == 0 {
			return "", ""
		}
		variant = approaches[0]
	}

	if _, ok := variant.Slot(slot); ok {
		return variant.Key(), slot
	}
	slots := variant.Slots()
	if len(slots) == 0 {
		return variant.Key(), ""
	}
	return variant.Key(), slots[0]
}

func colorValue(v any) (string, bool) {
	switch c := v.(type) {
	case string:
		return c, true
	case tokens.ColorKey:
		return string(c), true
	default:
		return "", false
	}
}

// numberValue accepts the numeric shapes a slider, a flag or decoded JSON
// may produce. Fractions round to the nearest step.
func numberValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return boundInt(float64(n)), true
	case uint:
		return boundInt(float64(n)), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return boundInt(float64(n)), true
	case uint64:
		return boundInt(float64(n)), true
	case float32:
		return numberValue(float64(n))
	case float64:
		if math.IsNaN(n) {
			return 0, false
		}
		return boundInt(math.Round(n)), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return numberValue(f)
	default:
		return 0, false
	}
}

func boundInt(f float64) int {
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	default:
		return int(f)
	}
}
