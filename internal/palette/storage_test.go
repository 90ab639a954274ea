package palette

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

var collapsedText = &Feature{
	Name:   "ribbon.group.collapsed.text",
	States: []State{StateNormal, StateTracking, StateContextNormal, StateContextTracking},
	Kinds:  []Kind{KindTextColor},
}

var buttonFeature = &Feature{
	Name:   "button.standalone",
	States: []State{StateNormal, StateTracking, StatePressed, StateDisabled},
	Kinds:  []Kind{KindBackColor1, KindTextColor, KindFont, KindBorder, KindPadding},
}

var (
	baseCommonText   = RGB(30, 41, 59)
	baseTrackingText = RGB(0, 0, 0)
	baseButtonFont   = Font{Family: "mono", Size: 10}
)

func newCollapsedBase(t *testing.T) *Storage {
	t.Helper()
	base, err := NewBaseStorage("base/ribbon", collapsedText, BaseValues{
		StateCommon:   {KindTextColor: baseCommonText},
		StateTracking: {KindTextColor: baseTrackingText},
	})
	require.NoError(t, err)
	return base
}

func newButtonBase(t *testing.T) *Storage {
	t.Helper()
	base, err := NewBaseStorage("base/button", buttonFeature, BaseValues{
		StateCommon: {
			KindBackColor1: RGB(59, 130, 246),
			KindTextColor:  RGB(248, 250, 252),
			KindFont:       baseButtonFont,
			KindBorder:     lipgloss.RoundedBorder(),
			KindPadding:    1,
		},
		StatePressed: {KindBackColor1: RGB(29, 78, 216)},
	})
	require.NoError(t, err)
	return base
}

type paintCounter struct {
	calls   int
	layouts int
}

func (c *paintCounter) handler() NeedPaintHandler {
	return func(needLayout bool) {
		c.calls++
		if needLayout {
			c.layouts++
		}
	}
}

func TestCollapsedRibbonTextResolution(t *testing.T) {
	base := newCollapsedBase(t)
	s, err := NewStorage("", collapsedText, base, nil)
	require.NoError(t, err)

	got, err := Resolve(s, AttrTextColor, StateTracking)
	require.NoError(t, err)
	assert.Equal(t, RGB(0, 0, 0), got)

	Set(s, AttrTextColor, StateTracking, RGB(255, 0, 0))

	got, err = Resolve(s, AttrTextColor, StateTracking)
	require.NoError(t, err)
	assert.Equal(t, RGB(255, 0, 0), got)

	got, err = Resolve(s, AttrTextColor, StateNormal)
	require.NoError(t, err)
	assert.Equal(t, baseCommonText, got, "normal must still fall through to the base")
}

func TestFreshStorageIsDefaultAndFallsThrough(t *testing.T) {
	base := newButtonBase(t)
	s, err := NewStorage("button", buttonFeature, base, nil)
	require.NoError(t, err)

	assert.True(t, s.IsDefault())
	for _, state := range buttonFeature.AllStates() {
		for _, k := range buttonFeature.Kinds {
			want, err := base.ResolveValue(k, state)
			require.NoError(t, err)
			got, err := s.ResolveValue(k, state)
			require.NoError(t, err)
			assert.Equal(t, want, got, "%s/%s", k, state)
		}
	}
}

func TestWriteThenReadConsistency(t *testing.T) {
	tests := []struct {
		name  string
		state State
		apply func(s *Storage)
		check func(t *testing.T, s *Storage)
	}{
		{
			name:  "colour",
			state: StateTracking,
			apply: func(s *Storage) { Set(s, AttrBackColor1, StateTracking, RGB(1, 2, 3)) },
			check: func(t *testing.T, s *Storage) {
				got, err := Resolve(s, AttrBackColor1, StateTracking)
				require.NoError(t, err)
				assert.Equal(t, RGB(1, 2, 3), got)
			},
		},
		{
			name:  "explicit zero padding",
			state: StateNormal,
			apply: func(s *Storage) { Set(s, AttrPadding, StateNormal, 0) },
			check: func(t *testing.T, s *Storage) {
				got, err := Resolve(s, AttrPadding, StateNormal)
				require.NoError(t, err)
				assert.Equal(t, 0, got)
			},
		},
		{
			name:  "explicit empty border",
			state: StateDisabled,
			apply: func(s *Storage) { Set(s, AttrBorder, StateDisabled, lipgloss.Border{}) },
			check: func(t *testing.T, s *Storage) {
				got, err := Resolve(s, AttrBorder, StateDisabled)
				require.NoError(t, err)
				assert.Equal(t, lipgloss.Border{}, got)
			},
		},
		{
			name:  "transparent colour is not unset",
			state: StateCommon,
			apply: func(s *Storage) { Set(s, AttrTextColor, StateCommon, Transparent) },
			check: func(t *testing.T, s *Storage) {
				got, err := Resolve(s, AttrTextColor, StatePressed)
				require.NoError(t, err)
				assert.Equal(t, Transparent, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStorage("button", buttonFeature, newButtonBase(t), nil)
			require.NoError(t, err)

			tt.apply(s)
			tt.check(t, s)
			assert.False(t, s.IsDefault())
		})
	}
}

func TestStateBucketShadowsCommonWhichShadowsRedirect(t *testing.T) {
	base := newButtonBase(t)
	s, err := NewStorage("button", buttonFeature, base, nil)
	require.NoError(t, err)

	Set(s, AttrTextColor, StateCommon, RGB(10, 10, 10))
	Set(s, AttrTextColor, StateTracking, RGB(20, 20, 20))

	tracking, err := Resolve(s, AttrTextColor, StateTracking)
	require.NoError(t, err)
	assert.Equal(t, RGB(20, 20, 20), tracking)

	normal, err := Resolve(s, AttrTextColor, StateNormal)
	require.NoError(t, err)
	assert.Equal(t, RGB(10, 10, 10), normal)

	// Pressed is set on the base, but the override's Common wins first.
	pressed, err := Resolve(s, AttrTextColor, StatePressed)
	require.NoError(t, err)
	assert.Equal(t, RGB(10, 10, 10), pressed)

	back, err := Resolve(s, AttrBackColor1, StatePressed)
	require.NoError(t, err)
	assert.Equal(t, RGB(29, 78, 216), back)
}

func TestResolveReturnsNearestAncestorValue(t *testing.T) {
	base := newButtonBase(t)
	palette, err := NewStorage("palette", buttonFeature, base, nil)
	require.NoError(t, err)
	control, err := NewStorage("control", buttonFeature, palette, nil)
	require.NoError(t, err)

	Set(palette, AttrFont, StatePressed, Font{Family: "serif", Size: 12, Bold: true})

	got, err := Resolve(control, AttrFont, StatePressed)
	require.NoError(t, err)
	assert.Equal(t, Font{Family: "serif", Size: 12, Bold: true}, got)

	got, err = Resolve(control, AttrFont, StateNormal)
	require.NoError(t, err)
	assert.Equal(t, baseButtonFont, got)
}

func TestResolveObservesRedirectorSwapImmediately(t *testing.T) {
	base := newCollapsedBase(t)
	other, err := NewBaseStorage("base/other", collapsedText, BaseValues{
		StateCommon: {KindTextColor: RGB(200, 200, 200)},
	})
	require.NoError(t, err)

	s, err := NewStorage("", collapsedText, base, nil)
	require.NoError(t, err)

	before, err := Resolve(s, AttrTextColor, StateNormal)
	require.NoError(t, err)
	require.Equal(t, baseCommonText, before)

	require.NoError(t, s.SetRedirector(other))

	after, err := Resolve(s, AttrTextColor, StateNormal)
	require.NoError(t, err)
	assert.Equal(t, RGB(200, 200, 200), after)
}

func TestSetRedirectorDoesNotNotify(t *testing.T) {
	counter := &paintCounter{}
	s, err := NewStorage("", collapsedText, newCollapsedBase(t), counter.handler())
	require.NoError(t, err)

	require.NoError(t, s.SetRedirector(newCollapsedBase(t)))
	assert.Zero(t, counter.calls)
}

func TestSetRedirectorOnBaseFails(t *testing.T) {
	base := newCollapsedBase(t)
	err := base.SetRedirector(newCollapsedBase(t))

	var cfgErr *pkgerrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestCyclicRedirectionIsDetected(t *testing.T) {
	base := newCollapsedBase(t)
	y, err := NewStorage("y", collapsedText, base, nil)
	require.NoError(t, err)
	x, err := NewStorage("x", collapsedText, y, nil)
	require.NoError(t, err)

	require.NoError(t, y.SetRedirector(x))

	for _, state := range collapsedText.AllStates() {
		_, err := Resolve(x, AttrTextColor, state)
		var cyclic *pkgerrors.CyclicRedirectionError
		require.ErrorAs(t, err, &cyclic, "state %s", state)
		assert.Equal(t, "x", cyclic.Path[0])
		assert.Equal(t, "x", cyclic.Path[len(cyclic.Path)-1])
		assert.Contains(t, cyclic.Path, "y")
	}
}

func TestSelfRedirectIsACycle(t *testing.T) {
	s, err := NewStorage("self", collapsedText, newCollapsedBase(t), nil)
	require.NoError(t, err)
	require.NoError(t, s.SetRedirector(s))

	_, err = s.ResolveValue(KindTextColor, StateNormal)
	var cyclic *pkgerrors.CyclicRedirectionError
	require.ErrorAs(t, err, &cyclic)
}

func TestCycleIsNotReachedWhenValueIsSetBeforehand(t *testing.T) {
	base := newCollapsedBase(t)
	y, err := NewStorage("y", collapsedText, base, nil)
	require.NoError(t, err)
	x, err := NewStorage("x", collapsedText, y, nil)
	require.NoError(t, err)
	require.NoError(t, y.SetRedirector(x))

	Set(y, AttrTextColor, StateCommon, RGB(5, 5, 5))

	got, err := Resolve(x, AttrTextColor, StateNormal)
	require.NoError(t, err)
	assert.Equal(t, RGB(5, 5, 5), got)
}

func TestDanglingRedirectIsReported(t *testing.T) {
	s, err := NewStorage("orphan", collapsedText, newCollapsedBase(t), nil)
	require.NoError(t, err)

	require.NoError(t, s.SetRedirector(nil))

	_, err = Resolve(s, AttrTextColor, StateTracking)
	var dangling *pkgerrors.DanglingRedirectError
	require.ErrorAs(t, err, &dangling)
	assert.Equal(t, "orphan/redirect", dangling.Redirector)
	assert.Equal(t, "tracking", dangling.State)
}

func TestTypedNilTargetIsDangling(t *testing.T) {
	var missing *Storage
	r := NewRedirector("shared", missing)
	assert.Nil(t, r.Target())

	_, err := r.ResolveValue(KindTextColor, StateNormal)
	var dangling *pkgerrors.DanglingRedirectError
	require.ErrorAs(t, err, &dangling)
}

func TestStorageWithoutRedirectFailsAtConstruction(t *testing.T) {
	_, err := NewStorage("", collapsedText, nil, nil)

	var cfgErr *pkgerrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, collapsedText.Name, cfgErr.Subject)
}

func TestBaseStorageMustBeComplete(t *testing.T) {
	tests := []struct {
		name   string
		values BaseValues
	}{
		{name: "missing common kind", values: BaseValues{StateTracking: {KindTextColor: RGB(1, 1, 1)}}},
		{name: "undeclared state", values: BaseValues{StateCommon: {KindTextColor: RGB(1, 1, 1)}, StatePressed: {KindTextColor: RGB(1, 1, 1)}}},
		{name: "undeclared kind", values: BaseValues{StateCommon: {KindTextColor: RGB(1, 1, 1), KindFont: baseButtonFont}}},
		{name: "wrong value type", values: BaseValues{StateCommon: {KindTextColor: "#ffffff"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBaseStorage("base", collapsedText, tt.values)
			var cfgErr *pkgerrors.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestResolveRejectsInvalidRequests(t *testing.T) {
	s, err := NewStorage("", collapsedText, newCollapsedBase(t), nil)
	require.NoError(t, err)

	_, err = s.ResolveValue(Kind(99), StateNormal)
	var cfgErr *pkgerrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)

	_, err = s.ResolveValue(KindTextColor, State(-1))
	require.ErrorAs(t, err, &cfgErr)
}

func TestResolveOfUndeclaredKindSurfacesBaseGap(t *testing.T) {
	s, err := NewStorage("", collapsedText, newCollapsedBase(t), nil)
	require.NoError(t, err)

	_, err = Resolve(s, AttrFont, StateNormal)
	var cfgErr *pkgerrors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "base/ribbon", cfgErr.Subject)
}

func TestUndeclaredStateResolvesThroughCommon(t *testing.T) {
	s, err := NewStorage("", collapsedText, newCollapsedBase(t), nil)
	require.NoError(t, err)

	Set(s, AttrTextColor, StateCommon, RGB(9, 9, 9))

	got, err := Resolve(s, AttrTextColor, StatePressed)
	require.NoError(t, err)
	assert.Equal(t, RGB(9, 9, 9), got)
}

func TestSetPanicsOnUndeclaredTargets(t *testing.T) {
	s, err := NewStorage("", collapsedText, newCollapsedBase(t), nil)
	require.NoError(t, err)

	assert.Panics(t, func() { Set(s, AttrTextColor, StatePressed, RGB(1, 1, 1)) })
	assert.Panics(t, func() { Set(s, AttrFont, StateNormal, baseButtonFont) })
}

func TestSetValueReportsUndeclaredAndMistypedValues(t *testing.T) {
	s, err := NewStorage("", collapsedText, newCollapsedBase(t), nil)
	require.NoError(t, err)

	var cfgErr *pkgerrors.ConfigurationError

	_, err = s.SetValue(KindTextColor, StateDisabled, RGB(1, 1, 1), false)
	require.ErrorAs(t, err, &cfgErr)

	_, err = s.SetValue(KindTextColor, StateNormal, 42, false)
	require.ErrorAs(t, err, &cfgErr)

	changed, err := s.SetValue(KindTextColor, StateNormal, RGB(1, 1, 1), false)
	require.NoError(t, err)
	assert.True(t, changed)

	v, ok := s.Value(KindTextColor, StateNormal)
	require.True(t, ok)
	assert.Equal(t, RGB(1, 1, 1), v)

	changed, err = s.ResetValue(KindTextColor, StateNormal)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, s.IsDefault())
}

func TestUnsetRestoresInheritance(t *testing.T) {
	s, err := NewStorage("", collapsedText, newCollapsedBase(t), nil)
	require.NoError(t, err)

	Set(s, AttrTextColor, StateTracking, RGB(255, 0, 0))
	require.True(t, Unset(s, AttrTextColor, StateTracking))
	assert.False(t, Unset(s, AttrTextColor, StateTracking))

	got, err := Resolve(s, AttrTextColor, StateTracking)
	require.NoError(t, err)
	assert.Equal(t, baseTrackingText, got)
	assert.True(t, s.IsDefault())
}

func TestGetReadsRawSlot(t *testing.T) {
	s, err := NewStorage("", collapsedText, newCollapsedBase(t), nil)
	require.NoError(t, err)

	_, ok := Get(s, AttrTextColor, StateTracking)
	assert.False(t, ok)

	Set(s, AttrTextColor, StateTracking, RGB(4, 4, 4))
	got, ok := Get(s, AttrTextColor, StateTracking)
	require.True(t, ok)
	assert.Equal(t, RGB(4, 4, 4), got)

	_, ok = Get(s, AttrTextColor, StatePressed)
	assert.False(t, ok)
}

func TestResetClearsEverythingWithOneNotification(t *testing.T) {
	counter := &paintCounter{}
	s, err := NewStorage("button", buttonFeature, newButtonBase(t), counter.handler())
	require.NoError(t, err)

	Set(s, AttrTextColor, StateNormal, RGB(1, 1, 1))
	Set(s, AttrPadding, StatePressed, 3)
	counter.calls, counter.layouts = 0, 0

	assert.True(t, s.Reset())
	assert.Equal(t, 1, counter.calls)
	assert.Equal(t, 1, counter.layouts)
	assert.True(t, s.IsDefault())

	assert.False(t, s.Reset())
	assert.Equal(t, 1, counter.calls)
}
