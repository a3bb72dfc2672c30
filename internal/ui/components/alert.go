package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Alert slots.
const (
	AlertIconSlot    = "icon"
	AlertMessageSlot = "message"
)

// Alert displays a notification message.
//
// Props: message (string), title (string), severity ("info", "success",
// "warning", "error"), icon (string, overrides the severity icon).
type Alert struct {
	BaseComponent
}

// NewAlert creates a new alert with the given props.
func NewAlert(props Props) Alert {
	return Alert{BaseComponent: newBaseComponent(props)}
}

// Component implements Element.
func (a Alert) Component() string { return "Alert" }

// Slots implements Element.
func (a Alert) Slots() []string { return []string{RootSlot, AlertIconSlot, AlertMessageSlot} }

// WithProps implements Element.
func (a Alert) WithProps(props Props) Element {
	a.BaseComponent = a.withProps(props)
	return a
}

// Variant resolves the severity prop.
func (a Alert) Variant() AlertVariant {
	switch a.props.String("severity", "info") {
	case "success":
		return AlertVariantSuccess
	case "warning":
		return AlertVariantWarning
	case "error":
		return AlertVariantError
	default:
		return AlertVariantInfo
	}
}

// Icon returns the glyph for the alert.
func (a Alert) Icon() string {
	if icon := a.props.String("icon", ""); icon != "" {
		return icon
	}
	switch a.Variant() {
	case AlertVariantSuccess:
		return "✓"
	case AlertVariantWarning:
		return "⚠"
	case AlertVariantError:
		return "✗"
	default:
		return "ℹ"
	}
}

// Render implements Element.
func (a Alert) Render(theme Theme, styles SlotStyles) string {
	root := lipgloss.NewStyle().
		Border(theme.Borders.Normal).
		Padding(0, PaddingValue(theme, SpacingSizeExtraSmall))
	root = slotStyle(root, styles, RootSlot)

	iconStyle := lipgloss.NewStyle()
	if strategy := theme.Variants.Get(a.Variant()); strategy != nil {
		iconStyle = strategy.Apply(iconStyle, theme)
	}
	iconStyle = slotStyle(iconStyle, styles, AlertIconSlot)
	messageStyle := slotStyle(lipgloss.NewStyle(), styles, AlertMessageSlot)

	line := iconStyle.Render(a.Icon()) + " " + messageStyle.Render(a.props.String("message", "Something happened."))
	if title := a.props.String("title", ""); title != "" {
		line = lipgloss.JoinVertical(lipgloss.Left, lipgloss.NewStyle().Bold(true).Render(title), line)
	}
	return root.Render(line)
}
