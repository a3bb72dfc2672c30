package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Slider slots.
const (
	SliderRailSlot  = "rail"
	SliderTrackSlot = "track"
	SliderThumbSlot = "thumb"
)

const defaultSliderWidth = 20

// Slider draws a horizontal range input.
//
// Props: value (int), min (int), max (int), width (int cells).
type Slider struct {
	BaseComponent
}

// NewSlider creates a new slider with the given props.
func NewSlider(props Props) Slider {
	return Slider{BaseComponent: newBaseComponent(props)}
}

// Component implements Element.
func (s Slider) Component() string { return "Slider" }

// Slots implements Element.
func (s Slider) Slots() []string {
	return []string{RootSlot, SliderRailSlot, SliderTrackSlot, SliderThumbSlot}
}

// WithProps implements Element.
func (s Slider) WithProps(props Props) Element {
	s.BaseComponent = s.withProps(props)
	return s
}

// Filled returns how many cells of the rail sit left of the thumb.
func (s Slider) Filled() int {
	minValue := s.props.Int("min", 0)
	maxValue := s.props.Int("max", 100)
	value := s.props.Int("value", 30)
	width := s.width()

	if maxValue <= minValue {
		return 0
	}
	if value < minValue {
		value = minValue
	}
	if value > maxValue {
		value = maxValue
	}
	return (value - minValue) * (width - 1) / (maxValue - minValue)
}

func (s Slider) width() int {
	width := s.props.Int("width", defaultSliderWidth)
	if width < 2 {
		return 2
	}
	return width
}

// Render implements Element.
func (s Slider) Render(theme Theme, styles SlotStyles) string {
	root := slotStyle(lipgloss.NewStyle(), styles, RootSlot)
	rail := slotStyle(lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Muted), styles, SliderRailSlot)
	track := slotStyle(lipgloss.NewStyle().Foreground(theme.Palette.Primary.Base), styles, SliderTrackSlot)
	thumb := slotStyle(lipgloss.NewStyle().Foreground(theme.Palette.Primary.Muted), styles, SliderThumbSlot)

	filled := s.Filled()
	rest := s.width() - filled - 1

	var b strings.Builder
	b.WriteString(track.Render(strings.Repeat("━", filled)))
	b.WriteString(thumb.Render("●"))
	b.WriteString(rail.Render(strings.Repeat("─", rest)))
	return root.Render(b.String())
}
