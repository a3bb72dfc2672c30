package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/playground/internal/tokens"
)

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
)

func TestUpdateMovesFocus(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, keyDown, keyDown)
	require.Equal(t, ControlSlot, m.Focus())

	m = press(t, m, keyUp, keyUp, keyUp)
	require.Equal(t, ControlBorderWidth, m.Focus(), "focus wraps")
}

func TestUpdateCyclesDemos(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, keyRight)
	require.Equal(t, "Secondary", m.Engine().SelectedDemo())

	m = press(t, m, keyLeft, keyLeft)
	require.Equal(t, m.Engine().Catalog().Names()[len(m.Engine().Catalog().Names())-1], m.Engine().SelectedDemo())
}

func TestUpdateCyclesApproachesAndSlots(t *testing.T) {
	m := newTestModel(t)
	before := m.Engine().SelectedCustomizationOption()

	m = press(t, m, keyDown, keyRight)
	require.NotEqual(t, before, m.Engine().SelectedCustomizationOption())

	m = press(t, m, keyDown)
	slot := m.Engine().SelectedSlot()
	m = press(t, m, keyRight)
	if len(m.Engine().AvailableSlots()) > 1 {
		require.NotEqual(t, slot, m.Engine().SelectedSlot())
	}
}

func TestUpdateEditsTokens(t *testing.T) {
	m := newTestModel(t)
	start := m.Engine().SelectedTokens()

	m = press(t, m, keyDown, keyDown, keyDown, keyRight)
	require.Equal(t, tokens.Next(start.Color, 1), m.Engine().SelectedTokens().Color)

	m = press(t, m, keyDown, keyRight, keyRight)
	require.Equal(t, start.BorderRadius+2*tokens.Step, m.Engine().SelectedTokens().BorderRadius)

	m = press(t, m, keyDown)
	for i := 0; i < tokens.MaxValue+5; i++ {
		m = press(t, m, keyLeft)
	}
	require.Equal(t, tokens.MinValue, m.Engine().SelectedTokens().BorderWidth, "writes clamp at the range floor")
}

func TestUpdateTokenEditsResetOnDemoSwitch(t *testing.T) {
	m := newTestModel(t)
	start := m.Engine().SelectedTokens()

	m = press(t, m, keyDown, keyDown, keyDown, keyDown, keyRight)
	require.NotEqual(t, start, m.Engine().SelectedTokens())

	m = press(t, m, keyUp, keyUp, keyUp, keyUp, keyRight, keyLeft)
	require.Equal(t, "Contained", m.Engine().SelectedDemo())
	require.Equal(t, start, m.Engine().SelectedTokens())
}

func TestUpdateTogglesHelp(t *testing.T) {
	m := newTestModel(t)
	require.False(t, m.help.ShowAll)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	require.True(t, m.help.ShowAll)
}

func TestUpdateHandlesWindowSize(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Nil(t, cmd)
	m = updated.(Model)
	require.Equal(t, 120, m.help.Width)
}

func TestUpdateQuits(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	m = updated.(Model)
	require.True(t, m.Quitting())
	require.Empty(t, m.View())
}

func TestCycle(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b", "c"}
	require.Equal(t, "b", cycle(items, "a", 1))
	require.Equal(t, "c", cycle(items, "a", -1))
	require.Equal(t, "a", cycle(items, "missing", 1))
	require.Equal(t, "x", cycle(nil, "x", 1))
}
