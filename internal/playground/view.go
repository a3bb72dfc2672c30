package playground

import (
	"github.com/alexisbeaulieu97/playground/internal/catalog"
	"github.com/alexisbeaulieu97/playground/internal/codegen"
	"github.com/alexisbeaulieu97/playground/internal/styling"
	"github.com/alexisbeaulieu97/playground/internal/tokens"
	"github.com/alexisbeaulieu97/playground/internal/ui/components"
)

// Option is one entry of the approach switcher.
type Option struct {
	Key            string                 `json:"key"`
	Label          string                 `json:"label"`
	Recommendation catalog.Recommendation `json:"recommendation"`
}

// View is the derived state for one selection. Every field is recomputed
// after each accepted event.
type View struct {
	Component string
	Demos     []string
	Demo      string
	Options   []Option
	Approach  string
	Slots     []string
	Slot      string
	// Example is nil when the selection is incomplete.
	Example *catalog.ApproachVariant
	Tokens  tokens.StyleTokens
	Props   components.Props
	Code    string
	Styled  styling.StyledElement
}

// Interactive reports whether the selection is complete enough to show the
// token controls and the code sample.
func (v View) Interactive() bool {
	return v.Demo != "" && v.Example != nil && v.Code != ""
}

// Recommendation returns the classification of the selected approach, or ""
// when there is none.
func (v View) Recommendation() catalog.Recommendation {
	if v.Example == nil {
		return ""
	}
	return v.Example.Recommendation()
}

// derive computes the view for sel. sheet may be nil.
func derive(cat *catalog.Catalog, component string, sel Selection, sheet *styling.Stylesheet) View {
	v := View{
		Component: component,
		Demos:     cat.Names(),
		Demo:      sel.Demo,
		Approach:  sel.Approach,
		Slot:      sel.Slot,
		Slots:     []string{},
		Options:   []Option{},
		Tokens:    tokens.Defaults(),
		Props:     components.Props{},
	}

	demo, ok := cat.Demo(sel.Demo)
	if !ok {
		return v
	}
	if v.Component == "" {
		if el := demo.Element(); el != nil {
			v.Component = el.Component()
		}
	}

	for _, a := range demo.Approaches() {
		v.Options = append(v.Options, Option{Key: a.Key(), Label: a.Label(), Recommendation: a.Recommendation()})
	}
	v.Tokens = sel.Tokens.Resolve(sel.TokenKey(), demo.Defaults())

	base := demo.Element()
	variant, ok := demo.Approach(sel.Approach)
	if !ok {
		v.Styled = styling.Compile(base, v.Tokens, nil, demo.Name(), sel.Slot)
		return v
	}
	v.Example = &variant
	v.Slots = variant.Slots()

	slot, ok := variant.Slot(sel.Slot)
	if !ok {
		v.Styled = styling.Compile(base, v.Tokens, nil, demo.Name(), sel.Slot)
		return v
	}

	v.Props = slot.Props()
	if base != nil {
		base = base.WithProps(v.Props)
	}
	v.Styled = sheet.Compile(base, v.Tokens, variant.Approach(), demo.Name(), slot.Name())
	v.Code = codegen.Generate(codegen.Input{
		Component: v.Component,
		Demo:      demo.Name(),
		Approach:  variant.Key(),
		Slot:      slot.Name(),
		ClassName: v.Styled.ClassName(),
		Template:  slot.Code(),
		Tokens:    v.Tokens,
	})
	return v
}
