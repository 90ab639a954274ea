package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/palettekit/internal/palette"
	pkgerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, []string{
		FeatureButtonStandalone,
		FeatureCheckBoxImages,
		FeatureCheckBoxIndeterminate,
		FeatureInputControl,
		FeatureLabelText,
		FeatureRibbonGroupCollapsedText,
		FeatureRibbonGroupNormalText,
		FeatureTabHeader,
	}, r.Names())

	f, ok := r.Lookup(FeatureInputControl)
	require.True(t, ok)
	assert.True(t, f.Layout)

	_, ok = r.Lookup("ribbon.group")
	assert.False(t, ok)
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(LabelText, LabelText)
	var cfgErr *pkgerrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)

	_, err = NewRegistry(&palette.Feature{Name: "broken"})
	require.ErrorAs(t, err, &cfgErr)
}

func TestBuiltinBasesCoverEveryFeature(t *testing.T) {
	for _, name := range BaseNames() {
		t.Run(name, func(t *testing.T) {
			base, err := BaseByName(name)
			require.NoError(t, err)
			assert.Equal(t, name, base.Name())

			for _, f := range DefaultRegistry().Features() {
				s, ok := base.Storage(f.Name)
				require.True(t, ok, f.Name)
				assert.True(t, s.IsBase())

				for _, state := range f.AllStates() {
					for _, k := range f.Kinds {
						_, err := s.ResolveValue(k, state)
						assert.NoError(t, err, "%s %s %s", f.Name, k, state)
					}
				}
			}
		})
	}
}

func TestDefaultBaseRibbonText(t *testing.T) {
	base, err := DefaultBase()
	require.NoError(t, err)
	s, _ := base.Storage(FeatureRibbonGroupCollapsedText)

	tracking, err := palette.Resolve(s, palette.AttrTextColor, palette.StateTracking)
	require.NoError(t, err)
	assert.Equal(t, palette.RGB(0, 0, 0), tracking)

	normal, err := palette.Resolve(s, palette.AttrTextColor, palette.StateNormal)
	require.NoError(t, err)
	assert.Equal(t, palette.RGB(17, 24, 39), normal, "normal inherits the common surface text")
}

func TestDarkBaseDiffersFromDefault(t *testing.T) {
	light, err := DefaultBase()
	require.NoError(t, err)
	dark, err := DarkBase()
	require.NoError(t, err)

	ls, _ := light.Storage(FeatureRibbonGroupCollapsedText)
	ds, _ := dark.Storage(FeatureRibbonGroupCollapsedText)

	lv, err := palette.Resolve(ls, palette.AttrTextColor, palette.StateTracking)
	require.NoError(t, err)
	dv, err := palette.Resolve(ds, palette.AttrTextColor, palette.StateTracking)
	require.NoError(t, err)
	assert.NotEqual(t, lv, dv)
}

func TestBaseByNameUnknown(t *testing.T) {
	_, err := BaseByName("solarized")
	var cfgErr *pkgerrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)

	base, err := BaseByName(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, BaseDark, base.Name())
}

func TestNewBaseRequiresValuesForEveryFeature(t *testing.T) {
	r, err := NewRegistry(RibbonGroupCollapsedText, LabelText)
	require.NoError(t, err)

	_, err = NewBase("partial", r, map[string]palette.BaseValues{
		FeatureRibbonGroupCollapsedText: {
			palette.StateCommon: {palette.KindTextColor: palette.RGB(1, 2, 3)},
		},
	})
	var cfgErr *pkgerrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)

	_, err = NewBase("incomplete", r, map[string]palette.BaseValues{
		FeatureRibbonGroupCollapsedText: {
			palette.StateCommon: {palette.KindTextColor: palette.RGB(1, 2, 3)},
		},
		FeatureLabelText: {
			palette.StateCommon: {palette.KindTextColor: palette.RGB(1, 2, 3)},
		},
	})
	require.ErrorAs(t, err, &cfgErr, "label.text common is missing font and text hint")
}
