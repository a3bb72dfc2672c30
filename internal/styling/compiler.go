// Package styling compiles style tokens onto a base element using one of a
// closed set of approaches. Every approach yields the same computed style for
// the same tokens; they differ only in where the declarations live.
package styling

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/playground/internal/tokens"
	"github.com/alexisbeaulieu97/playground/internal/ui/components"
)

// StyledElement is a base element plus the styling an approach attached to it.
// It is a value: the rules and declarations are snapshots taken at compile time.
type StyledElement struct {
	base      components.Element
	approach  Approach
	slot      string
	className string
	rules     []Rule
	inline    map[string]Declarations
}

// Compile attaches tok to slot of base using approach. A nil approach, a nil
// base or a slot the element does not expose yields the base element unstyled.
func Compile(base components.Element, tok tokens.StyleTokens, approach Approach, demo, slot string) StyledElement {
	el := StyledElement{base: base, slot: slot}
	if base == nil || approach == nil || !components.HasSlot(base, slot) {
		return el
	}

	el.approach = approach
	t := target{component: base.Component(), demo: demo, slot: slot, tokens: tok}
	return approach.compile(el, t, Declare(tok))
}

// Element returns the base element.
func (s StyledElement) Element() components.Element {
	return s.base
}

// Approach returns the approach used, or nil when unstyled.
func (s StyledElement) Approach() Approach {
	return s.approach
}

// Styled reports whether an approach was applied.
func (s StyledElement) Styled() bool {
	return s.approach != nil
}

// Slot returns the targeted slot.
func (s StyledElement) Slot() string {
	return s.slot
}

// ClassName returns the class attached to the targeted slot. Inline styling
// attaches none.
func (s StyledElement) ClassName() string {
	return s.className
}

// Rules returns the class or theme rules the element relies on.
func (s StyledElement) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// CSS renders the rules the element relies on, and nothing else. Inline
// styling yields an empty string.
func (s StyledElement) CSS() string {
	blocks := make([]string, len(s.rules))
	for i, r := range s.rules {
		blocks[i] = r.CSS()
	}
	return strings.Join(blocks, "\n")
}

// Inline returns the inline declarations on slot.
func (s StyledElement) Inline(slot string) Declarations {
	return Declarations{}.Merge(s.inline[slot])
}

// ComputedSlot resolves the effective declarations for one slot: rules first,
// then inline declarations.
func (s StyledElement) ComputedSlot(slot string) Declarations {
	out := Declarations{}
	for _, r := range s.rules {
		if r.Slot == slot {
			out = out.Merge(r.Declarations)
		}
	}
	return out.Merge(s.inline[slot])
}

// Computed resolves the effective declarations for every slot that has any.
func (s StyledElement) Computed() map[string]Declarations {
	out := map[string]Declarations{}
	if s.base == nil {
		return out
	}
	for _, slot := range s.base.Slots() {
		if decls := s.ComputedSlot(slot); len(decls) > 0 {
			out[slot] = decls
		}
	}
	return out
}

// View renders the element with the computed styles. Hover declarations have
// no terminal equivalent and are skipped.
func (s StyledElement) View(theme components.Theme) string {
	if s.base == nil {
		return ""
	}
	styles := components.SlotStyles{}
	for slot, decls := range s.Computed() {
		styles[slot] = lipglossStyle(decls)
	}
	return s.base.Render(theme, styles)
}

// lipglossStyle approximates declarations in the terminal. Rounded corners
// stand in for a radius; widths of 3px and up use the thick border.
func lipglossStyle(decls Declarations) lipgloss.Style {
	style := lipgloss.NewStyle()
	if bg, ok := decls[PropBackground]; ok {
		style = style.Background(lipgloss.Color(bg))
	}

	width := pixels(decls[PropBorderWidth])
	if width <= 0 {
		return style
	}

	border := lipgloss.NormalBorder()
	switch {
	case width >= 3:
		border = lipgloss.ThickBorder()
	case pixels(decls[PropBorderRadius]) > 0:
		border = lipgloss.RoundedBorder()
	}
	style = style.Border(border)
	if color, ok := decls[PropBorderColor]; ok {
		style = style.BorderForeground(lipgloss.Color(color))
	}
	return style
}

func pixels(v string) int {
	n, err := strconv.Atoi(strings.TrimSuffix(v, "px"))
	if err != nil {
		return 0
	}
	return n
}
