package components

import (
	"github.com/charmbracelet/lipgloss"
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantMuted
)

type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantSuccess
	BadgeVariantWarning
)

type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
)

// ColourSet represents a semantic color set with base, on-base and muted colors.
//
//   - Base: The primary background or brand color
//   - OnBase: Text/content color that contrasts well with Base
//   - Muted: A desaturated variant of Base for subtle accents
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[interface{}]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{
		strategies: make(map[interface{}]StyleStrategy),
	}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant interface{}, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant interface{}) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme represents an immutable styling theme for components.
// Themes should be created once and reused.
type Theme struct {
	Palette  Palette
	Borders  BorderSet
	Padding  spacingTable
	Variants *VariantRegistry
}

// DefaultTheme returns the default theme for components.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary:   ColourSet{Base: ac("#3b82f6", "#60a5fa"), OnBase: ac("#f8fafc", "#0b1120"), Muted: ac("#2563eb", "#1d4ed8")},
		Secondary: ColourSet{Base: ac("#a855f7", "#c084fc"), OnBase: ac("#f8fafc", "#1f2937"), Muted: ac("#7c3aed", "#6b21a8")},
		Surface:   ColourSet{Base: ac("#f9fafb", "#111827"), OnBase: ac("#111827", "#f9fafb"), Muted: ac("#e2e8f0", "#1f2937")},
		Success:   ColourSet{Base: ac("#22c55e", "#4ade80"), OnBase: ac("#052e16", "#022c22"), Muted: ac("#16a34a", "#15803d")},
		Warning:   ColourSet{Base: ac("#eab308", "#facc15"), OnBase: ac("#422006", "#422006"), Muted: ac("#ca8a04", "#a16207")},
		Danger:    ColourSet{Base: ac("#ef4444", "#f87171"), OnBase: ac("#7f1d1d", "#450a0a"), Muted: ac("#dc2626", "#b91c1c")},
		Info:      ColourSet{Base: ac("#06b6d4", "#22d3ee"), OnBase: ac("#083344", "#04121a"), Muted: ac("#0891b2", "#0e7490")},
		Neutral:   ColourSet{Base: ac("#64748b", "#94a3b8"), OnBase: ac("#f1f5f9", "#0f172a"), Muted: ac("#475569", "#334155")},
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
	}

	variants := NewVariantRegistry()
	registerButtonVariants(variants)
	registerBadgeVariants(variants)
	registerAlertVariants(variants)

	return Theme{
		Palette:  palette,
		Borders:  borders,
		Padding:  spacingTable{0, 1, 2, 3, 4},
		Variants: variants,
	}
}

func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantPrimary, NewCompositeStrategy(Background(PalettePrimary), PaddingX(SpacingSizeSmall)))
	registry.Register(ButtonVariantSecondary, NewCompositeStrategy(Background(PaletteSecondary), PaddingX(SpacingSizeSmall)))
	registry.Register(ButtonVariantMuted, NewCompositeStrategy(Background(PaletteNeutral), PaddingX(SpacingSizeSmall)))
}

func registerBadgeVariants(registry *VariantRegistry) {
	registry.Register(BadgeVariantDefault, NewCompositeStrategy(Background(PaletteNeutral), PaddingX(SpacingSizeExtraSmall)))
	registry.Register(BadgeVariantSuccess, NewCompositeStrategy(Background(PaletteSuccess), PaddingX(SpacingSizeExtraSmall)))
	registry.Register(BadgeVariantWarning, NewCompositeStrategy(Background(PaletteWarning), PaddingX(SpacingSizeExtraSmall)))
}

func registerAlertVariants(registry *VariantRegistry) {
	registry.Register(AlertVariantInfo, NewCompositeStrategy(Foreground(PaletteInfo)))
	registry.Register(AlertVariantSuccess, NewCompositeStrategy(Foreground(PaletteSuccess)))
	registry.Register(AlertVariantWarning, NewCompositeStrategy(Foreground(PaletteWarning)))
	registry.Register(AlertVariantError, NewCompositeStrategy(Foreground(PaletteDanger)))
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

// PaddingValue returns the padding value for the given size.
func PaddingValue(theme Theme, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(theme.Padding) {
		index = int(SpacingSizeSmall)
	}
	return theme.Padding[index]
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a semantic background colour and matching foreground for optimal contrast.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}
