package components

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// RootSlot is the outermost sub-element every component exposes.
const RootSlot = "root"

// Element is a presentational component the playground can customize.
// Implementations are values: WithProps returns a modified copy.
type Element interface {
	// Component is the display name, e.g. "Button".
	Component() string
	// Slots lists the addressable sub-elements, root first.
	Slots() []string
	// Props returns the props currently applied.
	Props() Props
	// WithProps returns a copy with props merged over the current ones.
	WithProps(props Props) Element
	// Render draws the element. Styles override the theme per slot.
	Render(theme Theme, styles SlotStyles) string
}

// SlotStyles maps slot names to style overrides.
type SlotStyles map[string]lipgloss.Style

// Props are the key/value component props a catalog entry merges into an element.
type Props map[string]any

// Merge returns a new Props with other applied over p.
func (p Props) Merge(other Props) Props {
	out := make(Props, len(p)+len(other))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Keys returns the prop names in sorted order.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String reads a string prop. Non-string values are formatted.
func (p Props) String(key, fallback string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Int reads an integer prop, accepting the numeric types YAML and JSON decode to.
func (p Props) Int(key string, fallback int) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// Bool reads a boolean prop.
func (p Props) Bool(key string, fallback bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return fallback
}

// BaseComponent provides common functionality for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	props Props
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc is a function that applies styling transformations to a lipgloss.Style
// using data from a Theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

func newBaseComponent(props Props) BaseComponent {
	return BaseComponent{props: Props{}.Merge(props)}
}

// Props returns a copy of the applied props.
func (b BaseComponent) Props() Props {
	return Props{}.Merge(b.props)
}

func (b BaseComponent) withProps(props Props) BaseComponent {
	b.props = b.props.Merge(props)
	return b
}

// slotStyle layers a slot override over its theme style. Properties set on
// the override win. Inherit skips padding, so it is carried over by hand.
func slotStyle(base lipgloss.Style, styles SlotStyles, slot string) lipgloss.Style {
	override, ok := styles[slot]
	if !ok {
		return base
	}
	merged := override.Inherit(base)
	top, right, bottom, left := override.GetPadding()
	if top == 0 && right == 0 && bottom == 0 && left == 0 {
		merged = merged.Padding(base.GetPadding())
	}
	return merged
}
