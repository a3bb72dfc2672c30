// Package tui is the interactive terminal front end of the playground. It
// renders engine outputs and turns key presses into engine events.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/playground/internal/playground"
	tuicomponents "github.com/alexisbeaulieu97/playground/internal/tui/components"
	"github.com/alexisbeaulieu97/playground/internal/ui/components"
)

// Control is one row of the control panel.
type Control int

const (
	ControlDemo Control = iota
	ControlApproach
	ControlSlot
	ControlColor
	ControlBorderRadius
	ControlBorderWidth
)

var controlNames = map[Control]string{
	ControlDemo:         "Demo",
	ControlApproach:     "Approach",
	ControlSlot:         "Slot",
	ControlColor:        "Color",
	ControlBorderRadius: "Border radius",
	ControlBorderWidth:  "Border width",
}

func (c Control) String() string {
	return controlNames[c]
}

// Model contains the Bubbletea state for the playground.
type Model struct {
	engine   *playground.Engine
	theme    components.Theme
	keys     keyMap
	help     help.Model
	radius   tuicomponents.TokenSlider
	width    tuicomponents.TokenSlider
	focus    Control
	quitting bool
}

// NewModel constructs the TUI model around an engine.
func NewModel(engine *playground.Engine) Model {
	return Model{
		engine: engine,
		theme:  components.DefaultTheme(),
		keys:   defaultKeyMap(),
		help:   help.New(),
		radius: tuicomponents.NewTokenSlider(ControlBorderRadius.String()),
		width:  tuicomponents.NewTokenSlider(ControlBorderWidth.String()),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Focus returns the focused control.
func (m Model) Focus() Control {
	return m.focus
}

// Engine returns the engine the model drives.
func (m Model) Engine() *playground.Engine {
	return m.engine
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// controls lists the rows that accept input in the current state. Token
// rows only appear once the selection is complete.
func (m Model) controls() []Control {
	out := []Control{ControlDemo, ControlApproach}
	if len(m.engine.AvailableSlots()) > 0 {
		out = append(out, ControlSlot)
	}
	if m.engine.Interactive() {
		out = append(out, ControlColor, ControlBorderRadius, ControlBorderWidth)
	}
	return out
}
