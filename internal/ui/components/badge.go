package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Badge slots.
const BadgeIndicatorSlot = "badge"

// Badge is a label with a small count indicator.
//
// Props: label (string), count (int), max (int), variant ("default",
// "success", "warning").
type Badge struct {
	BaseComponent
}

// NewBadge creates a new badge with the given props.
func NewBadge(props Props) Badge {
	return Badge{BaseComponent: newBaseComponent(props)}
}

// Component implements Element.
func (b Badge) Component() string { return "Badge" }

// Slots implements Element.
func (b Badge) Slots() []string { return []string{RootSlot, BadgeIndicatorSlot} }

// WithProps implements Element.
func (b Badge) WithProps(props Props) Element {
	b.BaseComponent = b.withProps(props)
	return b
}

// Variant resolves the variant prop.
func (b Badge) Variant() BadgeVariant {
	switch b.props.String("variant", "default") {
	case "success":
		return BadgeVariantSuccess
	case "warning":
		return BadgeVariantWarning
	default:
		return BadgeVariantDefault
	}
}

// Indicator returns the text shown in the badge bubble, capped at max.
func (b Badge) Indicator() string {
	count := b.props.Int("count", 0)
	limit := b.props.Int("max", 99)
	if limit > 0 && count > limit {
		return strconv.Itoa(limit) + "+"
	}
	return strconv.Itoa(count)
}

// Render implements Element.
func (b Badge) Render(theme Theme, styles SlotStyles) string {
	root := slotStyle(lipgloss.NewStyle(), styles, RootSlot)

	indicator := lipgloss.NewStyle()
	if strategy := theme.Variants.Get(b.Variant()); strategy != nil {
		indicator = strategy.Apply(indicator, theme)
	}
	indicator = slotStyle(indicator, styles, BadgeIndicatorSlot)

	label := b.props.String("label", "Inbox")
	return root.Render(lipgloss.JoinHorizontal(lipgloss.Center, label+" ", indicator.Render(b.Indicator())))
}

// Chip builds a standalone badge-style label, as used by the recommendation
// marker next to the approach tabs.
func Chip(theme Theme, variant BadgeVariant, text string) string {
	style := lipgloss.NewStyle()
	if strategy := theme.Variants.Get(variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	return style.Render(text)
}
