// Package tokens holds the customizable visual tokens of the playground: the
// fixed color palette, the numeric border tokens and the per-(demo, slot)
// store of user edits.
package tokens

import "strings"

// Name identifies a customizable token.
type Name string

const (
	Color        Name = "color"
	BorderRadius Name = "borderRadius"
	BorderWidth  Name = "borderWidth"
)

// Numeric token range. Sliders step by one.
const (
	MinValue = 0
	MaxValue = 20
	Step     = 1
)

// Names returns every token name in display order.
func Names() []Name {
	return []Name{Color, BorderRadius, BorderWidth}
}

// ParseName accepts the canonical camelCase names and their kebab-case
// spellings used on the command line.
func ParseName(raw string) (Name, bool) {
	switch strings.TrimSpace(raw) {
	case "color":
		return Color, true
	case "borderRadius", "border-radius":
		return BorderRadius, true
	case "borderWidth", "border-width":
		return BorderWidth, true
	default:
		return "", false
	}
}

// Numeric reports whether the token carries an integer value.
func (n Name) Numeric() bool {
	return n == BorderRadius || n == BorderWidth
}

// StyleTokens is a complete set of token values.
type StyleTokens struct {
	Color        ColorKey `json:"color" yaml:"color"`
	BorderRadius int      `json:"borderRadius" yaml:"borderRadius"`
	BorderWidth  int      `json:"borderWidth" yaml:"borderWidth"`
}

// Defaults returns the process-wide token defaults.
func Defaults() StyleTokens {
	return StyleTokens{Color: Blue, BorderRadius: 4, BorderWidth: 1}
}

// Clamp bounds v to [MinValue, MaxValue] and reports whether it changed.
func Clamp(v int) (int, bool) {
	switch {
	case v < MinValue:
		return MinValue, true
	case v > MaxValue:
		return MaxValue, true
	default:
		return v, false
	}
}

// Number returns the value of a numeric token.
func (t StyleTokens) Number(name Name) int {
	switch name {
	case BorderRadius:
		return t.BorderRadius
	case BorderWidth:
		return t.BorderWidth
	default:
		return 0
	}
}

// Swatch resolves the color token through the palette. Unknown colors
// resolve to the default color.
func (t StyleTokens) Swatch() Swatch {
	if swatch, ok := Lookup(t.Color); ok {
		return swatch
	}
	swatch, _ := Lookup(Defaults().Color)
	return swatch
}

// Overrides is a partial set of token values. Nil fields were never set.
type Overrides struct {
	Color        *ColorKey `json:"color,omitempty" yaml:"color,omitempty" validate:"omitempty,palette_color"`
	BorderRadius *int      `json:"borderRadius,omitempty" yaml:"borderRadius,omitempty" validate:"omitempty,min=0,max=20"`
	BorderWidth  *int      `json:"borderWidth,omitempty" yaml:"borderWidth,omitempty" validate:"omitempty,min=0,max=20"`
}

// IsZero reports whether no token is overridden.
func (o Overrides) IsZero() bool {
	return o.Color == nil && o.BorderRadius == nil && o.BorderWidth == nil
}

// Merge applies the overrides on top of base.
func (o Overrides) Merge(base StyleTokens) StyleTokens {
	if o.Color != nil {
		base.Color = *o.Color
	}
	if o.BorderRadius != nil {
		base.BorderRadius = *o.BorderRadius
	}
	if o.BorderWidth != nil {
		base.BorderWidth = *o.BorderWidth
	}
	return base
}

func (o Overrides) withColor(color ColorKey) Overrides {
	o.Color = &color
	return o
}

func (o Overrides) withNumber(name Name, v int) Overrides {
	switch name {
	case BorderRadius:
		o.BorderRadius = &v
	case BorderWidth:
		o.BorderWidth = &v
	}
	return o
}
