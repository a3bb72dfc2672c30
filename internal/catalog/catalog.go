// Package catalog holds the static table of component demos, the styling
// approaches each demo offers, and the slots and code templates of every
// approach. A Catalog is immutable once built.
package catalog

import (
	"fmt"

	"github.com/alexisbeaulieu97/playground/internal/codegen"
	"github.com/alexisbeaulieu97/playground/internal/styling"
	"github.com/alexisbeaulieu97/playground/internal/tokens"
	"github.com/alexisbeaulieu97/playground/internal/ui/components"
	playerrors "github.com/alexisbeaulieu97/playground/pkg/errors"
)

// Recommendation classifies an approach for a demo.
type Recommendation string

const (
	Recommended    Recommendation = "recommended"
	NotRecommended Recommendation = "not-recommended"
)

// IsRecommended reports whether the approach is the suggested one.
func (r Recommendation) IsRecommended() bool {
	return r == Recommended
}

// Message is the explanatory sentence shown next to the approach.
func (r Recommendation) Message() string {
	if r.IsRecommended() {
		return "This is the recommended styling approach for the selected component."
	}
	return "This might not be the best styling approach for the selected component. You can check out the other options for better results."
}

// Label is the short chip text.
func (r Recommendation) Label() string {
	if r.IsRecommended() {
		return "Recommended"
	}
	return "Warning"
}

// Slot is a customizable sub-element of an approach.
type Slot struct {
	name  string
	props components.Props
	code  codegen.Template
}

// Name returns the slot name.
func (s Slot) Name() string { return s.name }

// Props returns the component props for the slot, approach props included.
func (s Slot) Props() components.Props { return components.Props{}.Merge(s.props) }

// Code returns the parsed code template.
func (s Slot) Code() codegen.Template { return s.code }

// ApproachVariant is one styling approach offered by a demo.
type ApproachVariant struct {
	key            string
	label          string
	approach       styling.Approach
	recommendation Recommendation
	slots          []Slot
}

// Key returns the approach key, unique within its demo.
func (a ApproachVariant) Key() string { return a.key }

// Label returns the display label.
func (a ApproachVariant) Label() string { return a.label }

// Approach returns the styling mechanism.
func (a ApproachVariant) Approach() styling.Approach { return a.approach }

// Recommendation returns the classification for the demo.
func (a ApproachVariant) Recommendation() Recommendation { return a.recommendation }

// Slots returns the slot names in declaration order.
func (a ApproachVariant) Slots() []string {
	names := make([]string, len(a.slots))
	for i, s := range a.slots {
		names[i] = s.name
	}
	return names
}

// Slot looks up a slot by name.
func (a ApproachVariant) Slot(name string) (Slot, bool) {
	for _, s := range a.slots {
		if s.name == name {
			return s, true
		}
	}
	return Slot{}, false
}

// DemoEntry is a component demo.
type DemoEntry struct {
	name       string
	component  string
	defaults   tokens.Overrides
	approaches []ApproachVariant
}

// Name returns the demo name.
func (d DemoEntry) Name() string { return d.name }

// Component returns the registered element name, e.g. "button".
func (d DemoEntry) Component() string { return d.component }

// Defaults returns the demo's starting tokens.
func (d DemoEntry) Defaults() tokens.StyleTokens {
	return d.defaults.Merge(tokens.Defaults())
}

// Element builds a fresh base element for the demo.
func (d DemoEntry) Element() components.Element {
	el, err := components.New(d.component, nil)
	if err != nil {
		return nil
	}
	return el
}

// Approaches returns the approaches in declaration order.
func (d DemoEntry) Approaches() []ApproachVariant {
	out := make([]ApproachVariant, len(d.approaches))
	copy(out, d.approaches)
	return out
}

// ApproachKeys returns the approach keys in declaration order.
func (d DemoEntry) ApproachKeys() []string {
	keys := make([]string, len(d.approaches))
	for i, a := range d.approaches {
		keys[i] = a.key
	}
	return keys
}

// Approach looks up an approach by key.
func (d DemoEntry) Approach(key string) (ApproachVariant, bool) {
	for _, a := range d.approaches {
		if a.key == key {
			return a, true
		}
	}
	return ApproachVariant{}, false
}

// Catalog is the ordered set of demos.
type Catalog struct {
	component string
	demos     []DemoEntry
	index     map[string]int
}

// Component returns the component name declared by the catalog document.
func (c *Catalog) Component() string {
	if c == nil {
		return ""
	}
	return c.component
}

// Len returns the number of demos.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.demos)
}

// Names returns the demo names in declaration order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.demos))
	for i, d := range c.demos {
		names[i] = d.name
	}
	return names
}

// Demos returns the demos in declaration order.
func (c *Catalog) Demos() []DemoEntry {
	if c == nil {
		return nil
	}
	out := make([]DemoEntry, len(c.demos))
	copy(out, c.demos)
	return out
}

// Demo looks up a demo by name.
func (c *Catalog) Demo(name string) (DemoEntry, bool) {
	if c == nil {
		return DemoEntry{}, false
	}
	i, ok := c.index[name]
	if !ok {
		return DemoEntry{}, false
	}
	return c.demos[i], true
}

// First returns the first demo, which is the default selection.
func (c *Catalog) First() (DemoEntry, bool) {
	if c.Len() == 0 {
		return DemoEntry{}, false
	}
	return c.demos[0], true
}

// Build validates a document and compiles it into a Catalog.
func Build(doc *Document) (*Catalog, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	cat := &Catalog{
		component: doc.Component,
		demos:     make([]DemoEntry, 0, len(doc.Demos)),
		index:     make(map[string]int, len(doc.Demos)),
	}

	for di, d := range doc.Demos {
		entry, err := buildDemo(di, d)
		if err != nil {
			return nil, err
		}
		cat.index[entry.name] = len(cat.demos)
		cat.demos = append(cat.demos, entry)
	}

	return cat, nil
}

func buildDemo(di int, d DemoDoc) (DemoEntry, error) {
	el, err := components.New(d.Component, nil)
	if err != nil {
		return DemoEntry{}, playerrors.NewValidationError(fmt.Sprintf("demos[%d].component", di), err.Error(), err)
	}

	entry := DemoEntry{
		name:       d.Name,
		component:  d.Component,
		defaults:   d.Defaults,
		approaches: make([]ApproachVariant, 0, len(d.Approaches)),
	}

	for ai, a := range d.Approaches {
		approach, _ := styling.ParseApproach(a.Kind)
		variant := ApproachVariant{
			key:            a.Key,
			label:          a.Label,
			approach:       approach,
			recommendation: Recommendation(a.Recommendation),
			slots:          make([]Slot, 0, len(a.Slots)),
		}

		for si, s := range a.Slots {
			if !components.HasSlot(el, s.Name) {
				field := fieldForSlot(di, ai, si)
				msg := fmt.Sprintf("%s has no slot %q (slots: %v)", el.Component(), s.Name, el.Slots())
				return DemoEntry{}, playerrors.NewValidationError(field, msg, nil)
			}

			code, err := codegen.Parse(fmt.Sprintf("%s/%s/%s", d.Name, a.Key, s.Name), s.Code)
			if err != nil {
				return DemoEntry{}, playerrors.NewValidationError(fmt.Sprintf("demos[%d].approaches[%d].slots[%d].code", di, ai, si), err.Error(), err)
			}

			variant.slots = append(variant.slots, Slot{
				name:  s.Name,
				props: components.Props(a.Props).Merge(s.Props),
				code:  code,
			})
		}

		entry.approaches = append(entry.approaches, variant)
	}

	return entry, nil
}
