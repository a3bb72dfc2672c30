package styling

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/playground/internal/tokens"
)

// Style properties produced from tokens.
const (
	PropBackground      = "background-color"
	PropBorderColor     = "border-color"
	PropBorderRadius    = "border-radius"
	PropBorderStyle     = "border-style"
	PropBorderWidth     = "border-width"
	PropHoverBackground = HoverPrefix + PropBackground
)

// HoverPrefix marks declarations that only apply in the hover state.
const HoverPrefix = "&:hover "

// Declarations is a set of style property values keyed by property name.
type Declarations map[string]string

// Declare converts tokens into declarations. The color resolves through the
// palette to its base and hover shades.
func Declare(tok tokens.StyleTokens) Declarations {
	swatch := tok.Swatch()
	return Declarations{
		PropBackground:      string(swatch.Base),
		PropHoverBackground: string(swatch.Hover),
		PropBorderColor:     string(swatch.Hover),
		PropBorderStyle:     "solid",
		PropBorderRadius:    px(tok.BorderRadius),
		PropBorderWidth:     px(tok.BorderWidth),
	}
}

func px(v int) string {
	return fmt.Sprintf("%dpx", v)
}

// Keys returns the property names in sorted order.
func (d Declarations) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge returns a new set with other layered over d.
func (d Declarations) Merge(other Declarations) Declarations {
	out := make(Declarations, len(d)+len(other))
	for k, v := range d {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// CSS renders the declarations as a CSS block body. Hover declarations are
// nested under an "&:hover" block.
func (d Declarations) CSS(indent string) string {
	var plain, hover []string
	for _, k := range d.Keys() {
		if strings.HasPrefix(k, HoverPrefix) {
			hover = append(hover, fmt.Sprintf("%s: %s;", strings.TrimPrefix(k, HoverPrefix), d[k]))
			continue
		}
		plain = append(plain, fmt.Sprintf("%s: %s;", k, d[k]))
	}

	var b strings.Builder
	for _, line := range plain {
		b.WriteString(indent + line + "\n")
	}
	if len(hover) > 0 {
		b.WriteString(indent + "&:hover {\n")
		for _, line := range hover {
			b.WriteString(indent + indent + line + "\n")
		}
		b.WriteString(indent + "}\n")
	}
	return b.String()
}

// Rule is a selector and the declarations it applies to one slot.
type Rule struct {
	Selector     string
	Slot         string
	Declarations Declarations
}

// CSS renders the rule.
func (r Rule) CSS() string {
	return r.Selector + " {\n" + r.Declarations.CSS("  ") + "}\n"
}
