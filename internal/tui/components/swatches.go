package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/playground/internal/tokens"
)

// Swatches renders the palette as colour chips. The selected chip is
// bracketed and named.
func Swatches(selected tokens.ColorKey, focused bool) string {
	label := labelStyle.Render("Color")
	if focused {
		label = focusedLabel.Render("› Color")
	}

	chips := make([]string, 0, len(tokens.Palette()))
	for _, sw := range tokens.Palette() {
		chip := lipgloss.NewStyle().Background(sw.Base).Render("  ")
		if sw.Key == selected {
			chip = "[" + chip + "]"
		} else {
			chip = " " + chip + " "
		}
		chips = append(chips, chip)
	}

	return label + strings.Join(chips, "") + " " + valueStyle.Render(string(selected))
}
