package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/playground/internal/catalog"
	"github.com/alexisbeaulieu97/playground/internal/playground"
	tuicomponents "github.com/alexisbeaulieu97/playground/internal/tui/components"
	"github.com/alexisbeaulieu97/playground/internal/ui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	v := m.engine.View()
	sections := []string{titleStyle.Render(fmt.Sprintf("Playground • %s", v.Component))}

	if len(v.Demos) == 0 {
		sections = append(sections, emptyStyle.Render("The catalog has no demos."), m.help.View(m.keys))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	sections = append(sections,
		m.row(ControlDemo, tabs(v.Demos, v.Demo)),
		m.row(ControlApproach, m.approachChips(v)),
	)
	if len(v.Slots) > 0 {
		sections = append(sections, m.row(ControlSlot, tabs(v.Slots, v.Slot)))
	}
	if rec := v.Recommendation(); rec != "" {
		sections = append(sections, messageStyle.Render(rec.Message()))
	}

	sections = append(sections, sectionStyle.Render("Preview"), previewStyle.Render(v.Styled.View(m.theme)))

	if v.Interactive() {
		sections = append(sections,
			sectionStyle.Render("Tokens"),
			tuicomponents.Swatches(v.Tokens.Color, m.focus == ControlColor),
			m.radius.View(v.Tokens.BorderRadius, m.focus == ControlBorderRadius),
			m.width.View(v.Tokens.BorderWidth, m.focus == ControlBorderWidth),
			sectionStyle.Render("Code"),
			codeStyle.Render(v.Code),
		)
	}

	sections = append(sections, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) row(c Control, body string) string {
	marker := "  "
	if m.focus == c {
		marker = focusMarker.Render("› ")
	}
	return marker + rowLabel.Render(c.String()) + body
}

func (m Model) approachChips(v playground.View) string {
	chips := make([]string, 0, len(v.Options))
	for _, opt := range v.Options {
		label := opt.Label
		if opt.Key == v.Approach {
			label = activeTab.Render(label)
		} else {
			label = inactiveTab.Render(label)
		}
		chips = append(chips, label+" "+recommendationChip(m.theme, opt.Recommendation))
	}
	if len(chips) == 0 {
		return emptyStyle.Render("none")
	}
	return strings.Join(chips, "  ")
}

func recommendationChip(theme components.Theme, rec catalog.Recommendation) string {
	variant := components.BadgeVariantWarning
	if rec.IsRecommended() {
		variant = components.BadgeVariantSuccess
	}
	return components.Chip(theme, variant, rec.Label())
}

func tabs(items []string, selected string) string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == selected {
			out = append(out, activeTab.Render(item))
		} else {
			out = append(out, inactiveTab.Render(item))
		}
	}
	return strings.Join(out, "  ")
}
