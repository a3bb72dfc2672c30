package styling

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/alexisbeaulieu97/playground/internal/tokens"
	"github.com/alexisbeaulieu97/playground/internal/ui/components"
)

func button() components.Element {
	return components.NewButton(components.Props{"label": "Click"})
}

func TestDeclare(t *testing.T) {
	decls := Declare(tokens.StyleTokens{Color: tokens.Red, BorderRadius: 8, BorderWidth: 2})

	assert.Equal(t, "#ef4444", decls[PropBackground])
	assert.Equal(t, "#dc2626", decls[PropHoverBackground])
	assert.Equal(t, "#dc2626", decls[PropBorderColor])
	assert.Equal(t, "8px", decls[PropBorderRadius])
	assert.Equal(t, "2px", decls[PropBorderWidth])
	assert.Equal(t, "solid", decls[PropBorderStyle])
}

func TestParseApproach(t *testing.T) {
	for _, a := range Approaches() {
		got, ok := ParseApproach(string(a.Kind()))
		require.True(t, ok)
		assert.Equal(t, a, got)
	}
	_, ok := ParseApproach("css-in-js")
	assert.False(t, ok)
	assert.Equal(t, "token-driven", ApproachInline.Label())
}

func TestInlineApproach(t *testing.T) {
	tok := tokens.Defaults()
	el := Compile(button(), tok, ApproachInline, "Button", components.RootSlot)

	assert.True(t, el.Styled())
	assert.Empty(t, el.ClassName())
	assert.Empty(t, el.Rules())
	assert.Equal(t, Declare(tok), el.Inline(components.RootSlot))
}

func TestClassApproachLeavesInlineUntouched(t *testing.T) {
	tok := tokens.Defaults()
	el := Compile(button(), tok, ApproachClass, "Button", components.RootSlot)

	assert.True(t, strings.HasPrefix(el.ClassName(), "pg-"))
	assert.Empty(t, el.Inline(components.RootSlot))
	require.Len(t, el.Rules(), 1)
	assert.Equal(t, "."+el.ClassName(), el.Rules()[0].Selector)
}

func TestClassNameIsDeterministic(t *testing.T) {
	tok := tokens.Defaults()
	assert.Equal(t, ClassName("Button", "root", tok), ClassName("Button", "root", tok))
	assert.NotEqual(t, ClassName("Button", "root", tok), ClassName("Button", "label", tok))

	tok.BorderWidth = 3
	assert.NotEqual(t, ClassName("Button", "root", tokens.Defaults()), ClassName("Button", "root", tok))
}

func TestThemeApproach(t *testing.T) {
	el := Compile(button(), tokens.Defaults(), ApproachTheme, "Button", components.ButtonLabelSlot)

	assert.Equal(t, "Button-label", el.ClassName())
	require.Len(t, el.Rules(), 1)
	assert.Equal(t, ".Button-label", el.Rules()[0].Selector)
	assert.Equal(t, components.ButtonLabelSlot, el.Rules()[0].Slot)
}

func TestCompileUnstyledFallbacks(t *testing.T) {
	tok := tokens.Defaults()

	el := Compile(button(), tok, nil, "Button", components.RootSlot)
	assert.False(t, el.Styled())
	assert.Empty(t, el.Computed())

	el = Compile(button(), tok, ApproachInline, "Button", "thumb")
	assert.False(t, el.Styled())

	el = Compile(nil, tok, ApproachInline, "Button", components.RootSlot)
	assert.False(t, el.Styled())
	assert.Empty(t, el.View(components.DefaultTheme()))
}

func TestVisualEquivalence(t *testing.T) {
	theme := components.DefaultTheme()
	rapid.Check(t, func(t *rapid.T) {
		tok := tokens.StyleTokens{
			Color:        rapid.SampledFrom(tokens.ColorKeys()).Draw(t, "color"),
			BorderRadius: rapid.IntRange(tokens.MinValue, tokens.MaxValue).Draw(t, "radius"),
			BorderWidth:  rapid.IntRange(tokens.MinValue, tokens.MaxValue).Draw(t, "width"),
		}
		base, err := components.New(rapid.SampledFrom(components.Names()).Draw(t, "component"), nil)
		if err != nil {
			t.Fatalf("component: %v", err)
		}
		slot := rapid.SampledFrom(base.Slots()).Draw(t, "slot")

		reference := Compile(base, tok, ApproachInline, "Demo", slot)
		for _, a := range Approaches() {
			el := Compile(base, tok, a, "Demo", slot)
			if !assert.ObjectsAreEqual(reference.Computed(), el.Computed()) {
				t.Fatalf("%s computed differs: %v vs %v", a.Kind(), el.Computed(), reference.Computed())
			}
			if reference.View(theme) != el.View(theme) {
				t.Fatalf("%s view differs", a.Kind())
			}
		}
	})
}

func TestViewAppliesBorder(t *testing.T) {
	theme := components.DefaultTheme()
	tok := tokens.StyleTokens{Color: tokens.Blue, BorderRadius: 4, BorderWidth: 1}

	rounded := Compile(button(), tok, ApproachClass, "Button", components.RootSlot).View(theme)
	assert.Contains(t, rounded, "╭")

	tok.BorderWidth = 0
	plain := Compile(button(), tok, ApproachClass, "Button", components.RootSlot).View(theme)
	assert.NotContains(t, plain, "╭")
	assert.Contains(t, plain, "Click")

	tok.BorderWidth = 5
	thick := Compile(button(), tok, ApproachClass, "Button", components.RootSlot).View(theme)
	assert.Contains(t, thick, "┏")
}

func TestStylesheetReusesClassRules(t *testing.T) {
	sheet := NewStylesheet()
	tok := tokens.Defaults()

	first := sheet.Compile(button(), tok, ApproachClass, "Button", components.RootSlot)
	second := sheet.Compile(button(), tok, ApproachClass, "Button", components.RootSlot)
	assert.Equal(t, first.Rules(), second.Rules())
	assert.Equal(t, 1, sheet.Len())

	sheet.Compile(button(), tok, ApproachInline, "Button", components.RootSlot)
	assert.Equal(t, 1, sheet.Len(), "inline styling registers nothing")

	rule, ok := sheet.Lookup("." + first.ClassName())
	require.True(t, ok)
	assert.Equal(t, Declare(tok), rule.Declarations)

	sheet.Reset()
	assert.Equal(t, 0, sheet.Len())
}

func TestStylesheetThemeOverrideReplaces(t *testing.T) {
	sheet := NewStylesheet()
	first := sheet.Compile(button(), tokens.Defaults(), ApproachTheme, "Button", components.RootSlot)

	changed := tokens.Defaults()
	changed.Color = tokens.Green
	sheet.Compile(button(), changed, ApproachTheme, "Button", components.RootSlot)

	assert.Equal(t, 1, sheet.Len())
	rule, ok := sheet.Lookup(".Button-root")
	require.True(t, ok)
	assert.Equal(t, "#22c55e", rule.Declarations[PropBackground])
	assert.Equal(t, "#3b82f6", first.ComputedSlot(components.RootSlot)[PropBackground], "earlier elements keep their snapshot")
}

func TestStylesheetCSS(t *testing.T) {
	sheet := NewStylesheet()
	sheet.Compile(button(), tokens.Defaults(), ApproachTheme, "Button", components.RootSlot)

	css := sheet.CSS()
	assert.Contains(t, css, ".Button-root {\n")
	assert.Contains(t, css, "  background-color: #3b82f6;\n")
	assert.Contains(t, css, "  &:hover {\n    background-color: #2563eb;\n  }\n")
	assert.Contains(t, css, "  border-radius: 4px;\n")
}

func TestNilStylesheetCompiles(t *testing.T) {
	var sheet *Stylesheet
	el := sheet.Compile(button(), tokens.Defaults(), ApproachClass, "Button", components.RootSlot)
	assert.True(t, el.Styled())
}

func TestStyledElementCSSRendersOwnRules(t *testing.T) {
	sheet := NewStylesheet()
	sheet.Compile(button(), tokens.Defaults(), ApproachClass, "Button", components.RootSlot)

	tok := tokens.Defaults()
	tok.BorderWidth = 5
	el := sheet.Compile(button(), tok, ApproachClass, "Button", components.RootSlot)
	require.Equal(t, 2, sheet.Len())

	css := el.CSS()
	assert.Equal(t, 1, strings.Count(css, ".pg-"))
	assert.Contains(t, css, "."+el.ClassName()+" {\n")
	assert.Contains(t, css, "border-width: 5px")

	inline := Compile(button(), tok, ApproachInline, "Button", components.RootSlot)
	assert.Empty(t, inline.CSS())
}
