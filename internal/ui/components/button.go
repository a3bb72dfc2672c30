package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button slots.
const ButtonLabelSlot = "label"

// Button represents a clickable button (visual only).
//
// Props: label (string), variant ("primary", "secondary", "muted"),
// disabled (bool), active (bool).
type Button struct {
	BaseComponent
}

// NewButton creates a new button with the given props.
func NewButton(props Props) Button {
	return Button{BaseComponent: newBaseComponent(props)}
}

// Component implements Element.
func (b Button) Component() string { return "Button" }

// Slots implements Element.
func (b Button) Slots() []string { return []string{RootSlot, ButtonLabelSlot} }

// WithProps implements Element.
func (b Button) WithProps(props Props) Element {
	b.BaseComponent = b.withProps(props)
	return b
}

// Label returns the button label.
func (b Button) Label() string {
	return b.props.String("label", "Button")
}

// Variant resolves the variant prop.
func (b Button) Variant() ButtonVariant {
	switch b.props.String("variant", "primary") {
	case "secondary":
		return ButtonVariantSecondary
	case "muted":
		return ButtonVariantMuted
	default:
		return ButtonVariantPrimary
	}
}

// Render implements Element.
func (b Button) Render(theme Theme, styles SlotStyles) string {
	root := slotStyle(b.computeStyle(theme), styles, RootSlot)
	label := slotStyle(lipgloss.NewStyle(), styles, ButtonLabelSlot)

	if b.props.Bool("disabled", false) {
		root = root.Faint(true)
	}
	if b.props.Bool("active", false) {
		label = label.Bold(true).Underline(true)
	}

	return root.Render(label.Render(b.Label()))
}

func (b Button) computeStyle(theme Theme) lipgloss.Style {
	style := lipgloss.NewStyle()
	if strategy := theme.Variants.Get(b.Variant()); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	return style
}
