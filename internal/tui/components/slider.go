package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/playground/internal/tokens"
)

var (
	labelStyle   = lipgloss.NewStyle().Width(14)
	focusedLabel = labelStyle.Bold(true).Foreground(lipgloss.Color("212"))
	valueStyle   = lipgloss.NewStyle().Bold(true)
)

// TokenSlider renders a numeric token as a labelled bar over [min, max].
type TokenSlider struct {
	bar      progress.Model
	label    string
	min, max int
}

// NewTokenSlider creates a slider spanning the token range.
func NewTokenSlider(label string) TokenSlider {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 24
	return TokenSlider{bar: bar, label: label, min: tokens.MinValue, max: tokens.MaxValue}
}

// Ratio maps value onto [0, 1].
func (s TokenSlider) Ratio(value int) float64 {
	span := s.max - s.min
	if span <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, float64(value-s.min)/float64(span)))
}

// View renders the slider for value.
func (s TokenSlider) View(value int, focused bool) string {
	label := labelStyle.Render(s.label)
	if focused {
		label = focusedLabel.Render("› " + s.label)
	}
	number := valueStyle.Render(fmt.Sprintf("%2dpx", value))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, s.bar.ViewAs(s.Ratio(value)), " ", number)
}
