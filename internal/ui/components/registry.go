package components

import (
	"fmt"
	"sort"
)

// Constructor builds an element from props.
type Constructor func(props Props) Element

var registry = map[string]Constructor{
	"alert":  func(p Props) Element { return NewAlert(p) },
	"badge":  func(p Props) Element { return NewBadge(p) },
	"button": func(p Props) Element { return NewButton(p) },
	"slider": func(p Props) Element { return NewSlider(p) },
}

// New returns the element registered under name ("button", "badge", "alert", "slider").
func New(name string, props Props) (Element, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown component %q", name)
	}
	return ctor(props), nil
}

// Known reports whether a component is registered under name.
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names returns the registered component names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasSlot reports whether the element exposes slot.
func HasSlot(el Element, slot string) bool {
	if el == nil {
		return false
	}
	for _, s := range el.Slots() {
		if s == slot {
			return true
		}
	}
	return false
}
