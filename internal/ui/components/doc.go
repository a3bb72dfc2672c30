// Package components provides the theme-aware base elements the playground
// customizes, built on top of lipgloss for terminal rendering.
//
// # Architecture
//
// The library has three layers:
//
//  1. Theme Layer - Immutable theme definitions (colours, borders, spacing)
//  2. Modifier Layer - StyleFunc transformations that apply theme data to styles
//  3. Element Layer - Button, Badge, Alert and Slider, each exposing named slots
//
// # Slots
//
// Every element exposes a "root" slot plus its own sub-elements. Render takes
// a SlotStyles map; a style present for a slot is layered over the theme
// style for that slot:
//
//	el, _ := components.New("button", components.Props{"label": "Save"})
//	out := el.Render(components.DefaultTheme(), components.SlotStyles{
//		components.RootSlot: lipgloss.NewStyle().Background(lipgloss.Color("#ef4444")),
//	})
//
// # Props
//
// Elements are values. WithProps returns a copy with the props merged, so a
// catalog entry can apply its own props without touching the shared base.
package components
