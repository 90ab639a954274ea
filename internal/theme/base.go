package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/palettekit/internal/palette"
	pkgerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

// Base is a named set of terminal storages, one per registered feature.
// Every resolution chain ends in a Base.
type Base struct {
	name     string
	storages map[string]*palette.Storage
}

// NewBase builds a base palette. values must cover every feature of the
// registry, and each feature's Common bucket must be complete.
func NewBase(name string, registry *Registry, values map[string]palette.BaseValues) (*Base, error) {
	b := &Base{name: name, storages: make(map[string]*palette.Storage, len(registry.names))}
	for _, f := range registry.Features() {
		fv, ok := values[f.Name]
		if !ok {
			return nil, pkgerrors.NewConfigurationError("base:"+name, fmt.Sprintf("no values for feature %s", f.Name), nil)
		}
		s, err := palette.NewBaseStorage(fmt.Sprintf("base:%s/%s", name, f.Name), f, fv)
		if err != nil {
			return nil, err
		}
		b.storages[f.Name] = s
	}
	return b, nil
}

// Name returns the base palette name.
func (b *Base) Name() string { return b.name }

// Storage returns the terminal storage for a feature.
func (b *Base) Storage(feature string) (*palette.Storage, bool) {
	s, ok := b.storages[feature]
	return s, ok
}

// Base palette names accepted by theme files.
const (
	BaseDefault = "default"
	BaseDark    = "dark"
)

// BaseNames lists the built-in base palettes.
func BaseNames() []string { return []string{BaseDefault, BaseDark} }

// BaseByName builds a built-in base palette for the default registry.
func BaseByName(name string) (*Base, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BaseDefault:
		return DefaultBase()
	case BaseDark:
		return DarkBase()
	default:
		return nil, pkgerrors.NewConfigurationError("base:"+name, fmt.Sprintf("unknown base palette (known: %s)", strings.Join(BaseNames(), ", ")), nil)
	}
}

// DefaultBase returns the light base palette.
func DefaultBase() (*Base, error) {
	return NewBase(BaseDefault, DefaultRegistry(), builtinValues(lightTokens(), palette.RGB(0, 0, 0)))
}

// DarkBase returns the dark base palette. Hover shades are derived by
// blending towards white instead of black.
func DarkBase() (*Base, error) {
	t := darkTokens()
	return NewBase(BaseDark, DefaultRegistry(), builtinValues(t, t.surface.onBase.Blend(palette.RGB(255, 255, 255), 0.6)))
}

// colourSet mirrors a semantic colour slot: base, text on base, a muted
// variant and a contrasting accent.
type colourSet struct {
	base     palette.Color
	onBase   palette.Color
	muted    palette.Color
	contrast palette.Color
}

type tokens struct {
	primary   colourSet
	secondary colourSet
	surface   colourSet
	neutral   colourSet
	danger    colourSet
	hover     palette.Color
}

func cs(base, onBase, muted, contrast string) colourSet {
	return colourSet{
		base:     palette.MustParseColor(base),
		onBase:   palette.MustParseColor(onBase),
		muted:    palette.MustParseColor(muted),
		contrast: palette.MustParseColor(contrast),
	}
}

func lightTokens() tokens {
	return tokens{
		primary:   cs("#3b82f6", "#f8fafc", "#2563eb", "#facc15"),
		secondary: cs("#a855f7", "#f8fafc", "#7c3aed", "#f472b6"),
		surface:   cs("#f9fafb", "#111827", "#e2e8f0", "#3b82f6"),
		neutral:   cs("#64748b", "#f1f5f9", "#475569", "#f8fafc"),
		danger:    cs("#ef4444", "#7f1d1d", "#dc2626", "#f8fafc"),
		hover:     palette.RGB(255, 255, 255),
	}
}

func darkTokens() tokens {
	return tokens{
		primary:   cs("#60a5fa", "#0b1120", "#1d4ed8", "#ca8a04"),
		secondary: cs("#c084fc", "#1f2937", "#6b21a8", "#f472b6"),
		surface:   cs("#0b1120", "#e5e7eb", "#111827", "#60a5fa"),
		neutral:   cs("#334155", "#cbd5f5", "#1f2937", "#f8fafc"),
		danger:    cs("#f87171", "#450a0a", "#b91c1c", "#f8fafc"),
		hover:     palette.RGB(0, 0, 0),
	}
}

var (
	fontRegular = palette.Font{Family: "mono", Size: 10}
	fontBold    = palette.Font{Family: "mono", Size: 10, Bold: true}
)

// builtinValues lays the semantic tokens out over the feature table.
// ribbonTracking is the collapsed ribbon text colour under the pointer.
func builtinValues(t tokens, ribbonTracking palette.Color) map[string]palette.BaseValues {
	tracking := func(c palette.Color) palette.Color { return c.Blend(t.hover, 0.2) }

	return map[string]palette.BaseValues{
		FeatureRibbonGroupCollapsedText: {
			palette.StateCommon:          {palette.KindTextColor: t.surface.onBase},
			palette.StateTracking:        {palette.KindTextColor: ribbonTracking},
			palette.StateContextNormal:   {palette.KindTextColor: t.secondary.muted},
			palette.StateContextTracking: {palette.KindTextColor: t.secondary.base},
		},
		FeatureRibbonGroupNormalText: {
			palette.StateCommon:          {palette.KindTextColor: t.neutral.muted},
			palette.StateTracking:        {palette.KindTextColor: t.surface.onBase},
			palette.StateContextNormal:   {palette.KindTextColor: t.secondary.muted},
			palette.StateContextTracking: {palette.KindTextColor: t.secondary.base},
		},
		FeatureButtonStandalone: {
			palette.StateCommon: {
				palette.KindBackColor1:  t.primary.base,
				palette.KindBackColor2:  t.primary.muted,
				palette.KindBorderColor: t.primary.muted,
				palette.KindBorder:      lipgloss.RoundedBorder(),
				palette.KindTextColor:   t.primary.onBase,
				palette.KindFont:        fontBold,
				palette.KindPadding:     1,
			},
			palette.StateTracking:        {palette.KindBackColor1: tracking(t.primary.base)},
			palette.StatePressed:         {palette.KindBackColor1: t.primary.muted, palette.KindBorder: lipgloss.ThickBorder()},
			palette.StateCheckedNormal:   {palette.KindBackColor1: t.secondary.base, palette.KindBorderColor: t.secondary.muted},
			palette.StateCheckedTracking: {palette.KindBackColor1: tracking(t.secondary.base), palette.KindBorderColor: t.secondary.muted},
			palette.StateCheckedPressed:  {palette.KindBackColor1: t.secondary.muted, palette.KindBorderColor: t.secondary.muted},
			palette.StateDisabled: {
				palette.KindBackColor1:  t.neutral.base,
				palette.KindBackColor2:  t.neutral.muted,
				palette.KindBorderColor: t.neutral.muted,
				palette.KindTextColor:   t.neutral.onBase,
				palette.KindFont:        fontRegular,
			},
		},
		FeatureCheckBoxImages: {
			palette.StateCommon:          {palette.KindImage: palette.Image{Name: "unchecked", Glyph: "☐"}},
			palette.StateDisabled:        {palette.KindImage: palette.Image{Name: "unchecked_disabled", Glyph: "□"}},
			palette.StateCheckedNormal:   {palette.KindImage: palette.Image{Name: "checked", Glyph: "☑"}},
			palette.StateCheckedTracking: {palette.KindImage: palette.Image{Name: "checked", Glyph: "☑"}},
			palette.StateCheckedPressed:  {palette.KindImage: palette.Image{Name: "checked_pressed", Glyph: "☒"}},
		},
		FeatureCheckBoxIndeterminate: {
			palette.StateCommon:   {palette.KindImage: palette.Image{Name: "indeterminate", Glyph: "▣"}},
			palette.StateDisabled: {palette.KindImage: palette.Image{Name: "indeterminate_disabled", Glyph: "▢"}},
		},
		FeatureTabHeader: {
			palette.StateCommon: {
				palette.KindTextColor:   t.surface.onBase,
				palette.KindBackColor1:  t.surface.muted,
				palette.KindBorderColor: t.neutral.base,
				palette.KindFont:        fontRegular,
				palette.KindShortText:   "",
			},
			palette.StateTracking:               {palette.KindBackColor1: tracking(t.surface.muted)},
			palette.StateCheckedNormal:          {palette.KindBackColor1: t.surface.base, palette.KindFont: fontBold},
			palette.StateCheckedTracking:        {palette.KindBackColor1: t.surface.base, palette.KindFont: fontBold},
			palette.StateCheckedPressed:         {palette.KindBackColor1: t.surface.base, palette.KindFont: fontBold},
			palette.StateDisabled:               {palette.KindTextColor: t.neutral.base},
			palette.StateContextNormal:          {palette.KindTextColor: t.secondary.base},
			palette.StateContextTracking:        {palette.KindTextColor: t.secondary.base},
			palette.StateContextCheckedNormal:   {palette.KindTextColor: t.secondary.muted, palette.KindFont: fontBold},
			palette.StateContextCheckedTracking: {palette.KindTextColor: t.secondary.muted, palette.KindFont: fontBold},
			palette.StateContextCheckedPressed:  {palette.KindTextColor: t.secondary.muted, palette.KindFont: fontBold},
		},
		FeatureLabelText: {
			palette.StateCommon: {
				palette.KindTextColor: t.surface.onBase,
				palette.KindFont:      fontRegular,
				palette.KindTextHint:  palette.TextHintDefault,
			},
			palette.StateDisabled: {palette.KindTextColor: t.neutral.base, palette.KindTextHint: palette.TextHintFaint},
		},
		FeatureInputControl: {
			palette.StateCommon: {
				palette.KindBackColor1:  t.surface.base,
				palette.KindBorderColor: t.neutral.muted,
				palette.KindBorder:      lipgloss.RoundedBorder(),
				palette.KindPadding:     1,
				palette.KindRounding:    0,
			},
			palette.StateTracking: {palette.KindBorderColor: t.primary.base, palette.KindBorder: lipgloss.ThickBorder()},
			palette.StateDisabled: {palette.KindBackColor1: t.surface.muted, palette.KindBorderColor: t.danger.muted},
		},
	}
}
