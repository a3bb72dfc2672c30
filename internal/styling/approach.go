package styling

import (
	"fmt"
	"hash/fnv"

	"github.com/alexisbeaulieu97/playground/internal/tokens"
)

// Kind names a styling mechanism.
type Kind string

const (
	KindInline Kind = "inline"
	KindClass  Kind = "class"
	KindTheme  Kind = "theme"
)

// Approach is one way of attaching token-derived declarations to an element.
// The set is closed: ApproachInline, ApproachClass and ApproachTheme.
type Approach interface {
	Kind() Kind
	// Label is the short human name used in the UI.
	Label() string
	compile(el StyledElement, t target, decls Declarations) StyledElement
}

// target identifies what is being styled.
type target struct {
	component string
	demo      string
	slot      string
	tokens    tokens.StyleTokens
}

var (
	// ApproachInline writes the declarations straight onto the element.
	ApproachInline Approach = inlineApproach{}
	// ApproachClass attaches a generated pg-<hash> class carrying the declarations.
	ApproachClass Approach = classApproach{}
	// ApproachTheme overrides the component's theme class <Component>-<slot>.
	ApproachTheme Approach = themeApproach{}
)

// Approaches returns every approach in display order.
func Approaches() []Approach {
	return []Approach{ApproachInline, ApproachClass, ApproachTheme}
}

// ParseApproach resolves a kind name.
func ParseApproach(kind string) (Approach, bool) {
	for _, a := range Approaches() {
		if string(a.Kind()) == kind {
			return a, true
		}
	}
	return nil, false
}

type inlineApproach struct{}

func (inlineApproach) Kind() Kind    { return KindInline }
func (inlineApproach) Label() string { return "token-driven" }

func (inlineApproach) compile(el StyledElement, t target, decls Declarations) StyledElement {
	el.inline = map[string]Declarations{t.slot: decls}
	return el
}

type classApproach struct{}

func (classApproach) Kind() Kind    { return KindClass }
func (classApproach) Label() string { return "class override" }

func (classApproach) compile(el StyledElement, t target, decls Declarations) StyledElement {
	name := ClassName(t.demo, t.slot, t.tokens)
	el.className = name
	el.rules = []Rule{{Selector: "." + name, Slot: t.slot, Declarations: decls}}
	return el
}

type themeApproach struct{}

func (themeApproach) Kind() Kind    { return KindTheme }
func (themeApproach) Label() string { return "theme tokens" }

func (themeApproach) compile(el StyledElement, t target, decls Declarations) StyledElement {
	name := ThemeClass(t.component, t.slot)
	el.className = name
	el.rules = []Rule{{Selector: "." + name, Slot: t.slot, Declarations: decls}}
	return el
}

// ClassName derives the generated class for a demo, slot and token set. The
// same inputs always produce the same name.
func ClassName(demo, slot string, tok tokens.StyleTokens) string {
	h := fnv.New32a()
	_, _ = fmt.Fprintf(h, "%s|%s|%s|%d|%d", demo, slot, tok.Color, tok.BorderRadius, tok.BorderWidth)
	return fmt.Sprintf("pg-%08x", h.Sum32())
}

// ThemeClass is the class a theme assigns to a component slot.
func ThemeClass(component, slot string) string {
	return component + "-" + slot
}
