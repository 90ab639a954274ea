package theme

import (
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/palettekit/internal/palette"
	pkgerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

// Feature names used by theme files and the CLI.
const (
	FeatureRibbonGroupCollapsedText = "ribbon.group.collapsed.text"
	FeatureRibbonGroupNormalText    = "ribbon.group.normal.text"
	FeatureButtonStandalone         = "button.standalone"
	FeatureCheckBoxImages           = "checkbox.images"
	FeatureCheckBoxIndeterminate    = "checkbox.images.indeterminate"
	FeatureTabHeader                = "tab.header"
	FeatureLabelText                = "label.text"
	FeatureInputControl             = "input.control"
)

var ribbonTextStates = []palette.State{
	palette.StateNormal,
	palette.StateTracking,
	palette.StateContextNormal,
	palette.StateContextTracking,
}

var buttonStates = []palette.State{
	palette.StateNormal,
	palette.StateTracking,
	palette.StatePressed,
	palette.StateCheckedNormal,
	palette.StateCheckedTracking,
	palette.StateCheckedPressed,
	palette.StateDisabled,
}

// RibbonGroupCollapsedText has no pressed or disabled visual.
var RibbonGroupCollapsedText = &palette.Feature{
	Name:   FeatureRibbonGroupCollapsedText,
	States: ribbonTextStates,
	Kinds:  []palette.Kind{palette.KindTextColor},
}

var RibbonGroupNormalText = &palette.Feature{
	Name:   FeatureRibbonGroupNormalText,
	States: ribbonTextStates,
	Kinds:  []palette.Kind{palette.KindTextColor},
}

var ButtonStandalone = &palette.Feature{
	Name:   FeatureButtonStandalone,
	States: buttonStates,
	Kinds: []palette.Kind{
		palette.KindBackColor1,
		palette.KindBackColor2,
		palette.KindBorderColor,
		palette.KindBorder,
		palette.KindTextColor,
		palette.KindFont,
		palette.KindPadding,
	},
}

// CheckBoxImages holds the unchecked glyphs in the plain states and the
// checked glyphs in the checked states, with a common glyph both inherit.
var CheckBoxImages = &palette.Feature{
	Name:   FeatureCheckBoxImages,
	States: buttonStates,
	Kinds:  []palette.Kind{palette.KindImage},
}

var CheckBoxIndeterminateImages = &palette.Feature{
	Name: FeatureCheckBoxIndeterminate,
	States: []palette.State{
		palette.StateNormal,
		palette.StateTracking,
		palette.StatePressed,
		palette.StateDisabled,
	},
	Kinds: []palette.Kind{palette.KindImage},
}

var TabHeader = &palette.Feature{
	Name:   FeatureTabHeader,
	States: palette.ConcreteStates(),
	Kinds: []palette.Kind{
		palette.KindTextColor,
		palette.KindBackColor1,
		palette.KindBorderColor,
		palette.KindFont,
		palette.KindShortText,
	},
}

var LabelText = &palette.Feature{
	Name:   FeatureLabelText,
	States: []palette.State{palette.StateNormal, palette.StateDisabled},
	Kinds:  []palette.Kind{palette.KindTextColor, palette.KindFont, palette.KindTextHint},
}

// InputControl re-lays out on any change: its border and padding decide the
// size of the text area.
var InputControl = &palette.Feature{
	Name:   FeatureInputControl,
	States: []palette.State{palette.StateNormal, palette.StateTracking, palette.StateDisabled},
	Kinds: []palette.Kind{
		palette.KindBackColor1,
		palette.KindBorderColor,
		palette.KindBorder,
		palette.KindPadding,
		palette.KindRounding,
	},
	Layout: true,
}

// Registry indexes feature declarations by name.
type Registry struct {
	byName map[string]*palette.Feature
	names  []string
}

// NewRegistry validates and indexes the given features.
func NewRegistry(features ...*palette.Feature) (*Registry, error) {
	r := &Registry{byName: make(map[string]*palette.Feature, len(features))}
	for _, f := range features {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byName[f.Name]; dup {
			return nil, pkgerrors.NewConfigurationError(f.Name, "feature registered twice", nil)
		}
		r.byName[f.Name] = f
		r.names = append(r.names, f.Name)
	}
	sort.Strings(r.names)
	return r, nil
}

var defaultRegistry = mustRegistry(
	RibbonGroupCollapsedText,
	RibbonGroupNormalText,
	ButtonStandalone,
	CheckBoxImages,
	CheckBoxIndeterminateImages,
	TabHeader,
	LabelText,
	InputControl,
)

func mustRegistry(features ...*palette.Feature) *Registry {
	r, err := NewRegistry(features...)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in feature table: %v", err))
	}
	return r
}

// DefaultRegistry returns the built-in feature table.
func DefaultRegistry() *Registry { return defaultRegistry }

// Lookup finds a feature by name.
func (r *Registry) Lookup(name string) (*palette.Feature, bool) {
	f, ok := r.byName[name]
	return f, ok
}

// Names lists the registered feature names in sorted order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Features lists the registered features sorted by name.
func (r *Registry) Features() []*palette.Feature {
	out := make([]*palette.Feature, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.byName[name])
	}
	return out
}
