package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/palettekit/internal/palette"
	"github.com/alexisbeaulieu97/palettekit/internal/theme"
	pkgerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

func newTestPalette(t *testing.T) *theme.Palette {
	t.Helper()
	base, err := theme.DefaultBase()
	require.NoError(t, err)
	p, err := theme.NewPalette("components", nil, base)
	require.NoError(t, err)
	return p
}

func storage(t *testing.T, p *theme.Palette, feature string) *palette.Storage {
	t.Helper()
	s, ok := p.Storage(feature)
	require.True(t, ok, feature)
	return s
}

func TestInteractionRoundTrip(t *testing.T) {
	for _, state := range palette.ConcreteStates() {
		assert.Equal(t, state, InteractionFor(state).State(), state.String())
	}
	assert.Equal(t, palette.StateNormal, InteractionFor(palette.StateCommon).State())
}

func TestInteractionStateFor(t *testing.T) {
	tests := []struct {
		name    string
		feature *palette.Feature
		in      Interaction
		want    palette.State
	}{
		{name: "declared state is used as is", feature: theme.TabHeader, in: Interaction{Context: true, Checked: true, Pressed: true}, want: palette.StateContextCheckedPressed},
		{name: "button drops context", feature: theme.ButtonStandalone, in: Interaction{Context: true, Checked: true, Hover: true}, want: palette.StateCheckedTracking},
		{name: "disabled wins", feature: theme.ButtonStandalone, in: Interaction{Disabled: true, Pressed: true}, want: palette.StateDisabled},
		{name: "indeterminate drops checked", feature: theme.CheckBoxIndeterminateImages, in: Interaction{Checked: true, Pressed: true}, want: palette.StateTracking},
		{name: "ribbon keeps context", feature: theme.RibbonGroupCollapsedText, in: Interaction{Context: true, Hover: true}, want: palette.StateContextTracking},
		{name: "label falls back to normal", feature: theme.LabelText, in: Interaction{Hover: true}, want: palette.StateNormal},
		{name: "label disabled", feature: theme.LabelText, in: Interaction{Disabled: true}, want: palette.StateDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.StateFor(tt.feature))
		})
	}
}

func TestButton(t *testing.T) {
	p := newTestPalette(t)
	b := NewButton("Save", storage(t, p, theme.FeatureButtonStandalone))

	normal, err := b.View()
	require.NoError(t, err)
	assert.Contains(t, normal, "Save")
	assert.Equal(t, palette.StateNormal, b.State())

	b.WithFocus(true).WithPressed(true)
	assert.Equal(t, palette.StatePressed, b.State())

	b.WithChecked(true)
	assert.Equal(t, palette.StateCheckedPressed, b.State())

	b.WithDisabled(true)
	assert.Equal(t, palette.StateDisabled, b.State())
	disabled, err := b.View()
	require.NoError(t, err)
	assert.Contains(t, disabled, "Save")

	b.WithInteraction(Interaction{Hover: true})
	assert.Equal(t, palette.StateTracking, b.State())
}

func TestButtonFollowsPaletteOverrides(t *testing.T) {
	p := newTestPalette(t)
	b := NewButton("Go", storage(t, p, theme.FeatureButtonStandalone))

	before, err := b.View()
	require.NoError(t, err)

	_, err = p.SetValue(theme.FeatureButtonStandalone, palette.KindBorder, palette.StateCommon, lipgloss.DoubleBorder())
	require.NoError(t, err)

	after, err := b.View()
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
	assert.Contains(t, after, "═")
}

func TestButtonPropagatesResolutionErrors(t *testing.T) {
	p := newTestPalette(t)
	parent := storage(t, p, theme.FeatureButtonStandalone)
	s, err := palette.NewStorage("orphan", parent.Feature(), parent, nil)
	require.NoError(t, err)
	require.NoError(t, s.SetRedirector(nil))

	_, err = NewButton("Lost", s).View()
	var dangling *pkgerrors.DanglingRedirectError
	require.ErrorAs(t, err, &dangling)
}

func TestCheckBox(t *testing.T) {
	p := newTestPalette(t)
	cb := NewCheckBox("Wrap lines",
		storage(t, p, theme.FeatureCheckBoxImages),
		storage(t, p, theme.FeatureCheckBoxIndeterminate),
		storage(t, p, theme.FeatureLabelText),
	)

	tests := []struct {
		name  string
		value CheckState
		in    Interaction
		glyph string
	}{
		{name: "unchecked", value: Unchecked, glyph: "☐"},
		{name: "checked", value: Checked, glyph: "☑"},
		{name: "checked pressed", value: Checked, in: Interaction{Pressed: true}, glyph: "☒"},
		{name: "indeterminate", value: Indeterminate, glyph: "▣"},
		{name: "indeterminate disabled", value: Indeterminate, in: Interaction{Disabled: true}, glyph: "▢"},
		{name: "unchecked disabled", value: Unchecked, in: Interaction{Disabled: true}, glyph: "□"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := cb.WithValue(tt.value).WithInteraction(tt.in).View()
			require.NoError(t, err)
			assert.Contains(t, out, tt.glyph+" ")
			assert.Contains(t, out, "Wrap lines")
		})
	}
}

func TestCheckBoxToggle(t *testing.T) {
	p := newTestPalette(t)
	cb := NewCheckBox("x", storage(t, p, theme.FeatureCheckBoxImages), nil, storage(t, p, theme.FeatureLabelText))

	cb.WithValue(Indeterminate)
	cb.Toggle()
	assert.Equal(t, Checked, cb.Value())
	cb.Toggle()
	assert.Equal(t, Unchecked, cb.Value())

	out, err := cb.WithValue(Indeterminate).View()
	require.NoError(t, err)
	assert.Contains(t, out, "☐", "without an indeterminate storage the unchecked glyph is used")
}

func TestTabBar(t *testing.T) {
	p := newTestPalette(t)
	bar := NewTabBar(storage(t, p, theme.FeatureTabHeader), "Home", "Insert", "View")

	assert.Equal(t, palette.StateCheckedNormal, bar.StateOf(0))
	assert.Equal(t, palette.StateNormal, bar.StateOf(1))

	bar.Select(2)
	bar.Hover(1)
	assert.Equal(t, 2, bar.Selected())
	assert.Equal(t, palette.StateTracking, bar.StateOf(1))
	assert.Equal(t, palette.StateCheckedNormal, bar.StateOf(2))

	bar.Select(7)
	assert.Equal(t, 2, bar.Selected(), "out of range selection is ignored")

	bar.WithContext(true)
	assert.Equal(t, palette.StateContextCheckedNormal, bar.StateOf(2))
	assert.Equal(t, palette.StateContextTracking, bar.StateOf(1))

	out, err := bar.View()
	require.NoError(t, err)
	for _, label := range []string{"Home", "Insert", "View"} {
		assert.Contains(t, out, label)
	}

	bar.WithDisabled(true)
	assert.Equal(t, palette.StateDisabled, bar.StateOf(2))
}

func TestTabBarShortText(t *testing.T) {
	p := newTestPalette(t)
	_, err := p.SetValue(theme.FeatureTabHeader, palette.KindShortText, palette.StateCommon, "…")
	require.NoError(t, err)

	out, err := NewTabBar(storage(t, p, theme.FeatureTabHeader), "Home").View()
	require.NoError(t, err)
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, "Home")
}

func TestLabel(t *testing.T) {
	p := newTestPalette(t)
	l := NewLabel("Name", storage(t, p, theme.FeatureLabelText))

	out, err := l.View()
	require.NoError(t, err)
	assert.Contains(t, out, "Name")

	out, err = l.WithDisabled(true).View()
	require.NoError(t, err)
	assert.Contains(t, out, "Name")
}
