package tokens

import "github.com/charmbracelet/lipgloss"

// ColorKey names an entry of the fixed playground palette.
type ColorKey string

const (
	Blue   ColorKey = "blue"
	Purple ColorKey = "purple"
	Red    ColorKey = "red"
	Green  ColorKey = "green"
	Yellow ColorKey = "yellow"
	Cyan   ColorKey = "cyan"
)

// Swatch resolves a palette key to its paint values. Base is the 500 shade of
// the Tailwind family, Hover the 600 shade.
type Swatch struct {
	Key   ColorKey
	Base  lipgloss.Color
	Hover lipgloss.Color
}

// palette is ordered; the order is the display order of the color switcher.
var palette = [...]Swatch{
	{Key: Blue, Base: lipgloss.Color("#3b82f6"), Hover: lipgloss.Color("#2563eb")},
	{Key: Purple, Base: lipgloss.Color("#a855f7"), Hover: lipgloss.Color("#9333ea")},
	{Key: Red, Base: lipgloss.Color("#ef4444"), Hover: lipgloss.Color("#dc2626")},
	{Key: Green, Base: lipgloss.Color("#22c55e"), Hover: lipgloss.Color("#16a34a")},
	{Key: Yellow, Base: lipgloss.Color("#eab308"), Hover: lipgloss.Color("#ca8a04")},
	{Key: Cyan, Base: lipgloss.Color("#06b6d4"), Hover: lipgloss.Color("#0891b2")},
}

// Palette returns the palette in display order. The returned slice is a copy.
func Palette() []Swatch {
	out := make([]Swatch, len(palette))
	copy(out, palette[:])
	return out
}

// ColorKeys returns the palette keys in display order.
func ColorKeys() []ColorKey {
	keys := make([]ColorKey, len(palette))
	for i, swatch := range palette {
		keys[i] = swatch.Key
	}
	return keys
}

// Lookup resolves a palette key.
func Lookup(key ColorKey) (Swatch, bool) {
	for _, swatch := range palette {
		if swatch.Key == key {
			return swatch, true
		}
	}
	return Swatch{}, false
}

// ValidColor reports whether name is a palette key.
func ValidColor(name string) bool {
	_, ok := Lookup(ColorKey(name))
	return ok
}

// Next returns the palette key after key, wrapping around. Unknown keys
// yield the first palette entry.
func Next(key ColorKey, delta int) ColorKey {
	n := len(palette)
	for i, swatch := range palette {
		if swatch.Key == key {
			return palette[((i+delta)%n+n)%n].Key
		}
	}
	return palette[0].Key
}
