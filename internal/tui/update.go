package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/playground/internal/tokens"
)

// Update handles Bubbletea messages and forwards user input to the engine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Left):
		m.step(-1)
	case key.Matches(msg, m.keys.Right):
		m.step(1)
	}
	m.clampFocus()
	return m, nil
}

func (m *Model) moveFocus(delta int) {
	controls := m.controls()
	idx := indexOf(controls, m.focus)
	if idx < 0 {
		idx = 0
	}
	m.focus = controls[wrap(idx+delta, len(controls))]
}

// clampFocus moves focus to the last available row when the focused row
// disappeared, e.g. after switching to an approach without slots.
func (m *Model) clampFocus() {
	controls := m.controls()
	if indexOf(controls, m.focus) < 0 {
		m.focus = controls[len(controls)-1]
	}
}

func (m *Model) step(delta int) {
	e := m.engine
	switch m.focus {
	case ControlDemo:
		e.SelectDemo(cycle(e.Catalog().Names(), e.SelectedDemo(), delta))
	case ControlApproach:
		keys := make([]string, 0, len(e.CustomizationOptions()))
		for _, opt := range e.CustomizationOptions() {
			keys = append(keys, opt.Key)
		}
		e.SetSelectedCustomizationOption(cycle(keys, e.SelectedCustomizationOption(), delta))
	case ControlSlot:
		e.SetSelectedSlot(cycle(e.AvailableSlots(), e.SelectedSlot(), delta))
	case ControlColor:
		e.HandleTokenChange(string(tokens.Color), string(tokens.Next(e.SelectedTokens().Color, delta)))
	case ControlBorderRadius:
		e.HandleTokenChange(string(tokens.BorderRadius), e.SelectedTokens().BorderRadius+delta*tokens.Step)
	case ControlBorderWidth:
		e.HandleTokenChange(string(tokens.BorderWidth), e.SelectedTokens().BorderWidth+delta*tokens.Step)
	}
}

func cycle(items []string, current string, delta int) string {
	if len(items) == 0 {
		return current
	}
	idx := -1
	for i, item := range items {
		if item == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return items[0]
	}
	return items[wrap(idx+delta, len(items))]
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func indexOf(controls []Control, c Control) int {
	for i, item := range controls {
		if item == c {
			return i
		}
	}
	return -1
}
