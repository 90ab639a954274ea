package visual

import (
	"fmt"

	"github.com/alexisbeaulieu97/palettekit/internal/palette"
	"github.com/alexisbeaulieu97/palettekit/internal/theme"
	pkgerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

// RibbonGroup is a ribbon group that can be shown expanded or collapsed. It
// keeps per-instance overrides for its collapsed and normal text, each
// redirecting to the matching feature of the palette it is parented to. The
// collapsed caption has its own child storage chained below the collapsed
// text, so a caption override bubbles through two storages before reaching
// the group.
//
// The collapsed feature has no pressed visual. While the collapsed group's
// popup is open the caption is read through a redirector pinned to
// Tracking, so it keeps the hot colour whatever state is asked for.
type RibbonGroup struct {
	*Visual

	palette     *theme.Palette
	unsubscribe func()

	collapsed *palette.Storage
	normal    *palette.Storage
	caption   *palette.Storage
	pressed   *palette.Redirector

	isCollapsed bool
	isPressed   bool
	state       palette.State
}

// NewRibbonGroup builds a group parented to p.
func NewRibbonGroup(name string, p *theme.Palette) (*RibbonGroup, error) {
	if p == nil {
		return nil, pkgerrors.NewConfigurationError(name, "ribbon group needs a palette", nil)
	}
	g := &RibbonGroup{Visual: NewVisual(name), state: palette.StateNormal}

	collapsedSrc, normalSrc, err := ribbonSources(p)
	if err != nil {
		return nil, err
	}

	g.collapsed, err = palette.NewStorage(name+"/collapsed", theme.RibbonGroupCollapsedText, collapsedSrc, g.PerformNeedPaint)
	if err != nil {
		return nil, err
	}
	g.normal, err = palette.NewStorage(name+"/normal", theme.RibbonGroupNormalText, normalSrc, g.PerformNeedPaint)
	if err != nil {
		return nil, err
	}
	g.caption, err = palette.NewStorage(name+"/caption", theme.RibbonGroupCollapsedText, g.collapsed, g.collapsed.PerformNeedPaint)
	if err != nil {
		return nil, err
	}
	g.pressed = palette.NewInheritRedirector(name+"/caption/pressed", g.caption, palette.StateTracking)

	g.attach(p)
	return g, nil
}

func ribbonSources(p *theme.Palette) (collapsed, normal *palette.Storage, err error) {
	var ok bool
	if collapsed, ok = p.Storage(theme.FeatureRibbonGroupCollapsedText); !ok {
		return nil, nil, pkgerrors.NewConfigurationError("palette:"+p.Name(), fmt.Sprintf("missing feature %s", theme.FeatureRibbonGroupCollapsedText), nil)
	}
	if normal, ok = p.Storage(theme.FeatureRibbonGroupNormalText); !ok {
		return nil, nil, pkgerrors.NewConfigurationError("palette:"+p.Name(), fmt.Sprintf("missing feature %s", theme.FeatureRibbonGroupNormalText), nil)
	}
	return collapsed, normal, nil
}

func (g *RibbonGroup) attach(p *theme.Palette) {
	if g.unsubscribe != nil {
		g.unsubscribe()
	}
	g.palette = p
	g.unsubscribe = p.Subscribe(g.PerformNeedPaint)
}

// SetPalette reparents the group. Both storages are re-pointed and the group
// is invalidated once with layout, since fonts and images may differ.
func (g *RibbonGroup) SetPalette(p *theme.Palette) error {
	if p == nil {
		return pkgerrors.NewConfigurationError(g.Name(), "ribbon group needs a palette", nil)
	}
	if p == g.palette {
		return nil
	}
	collapsedSrc, normalSrc, err := ribbonSources(p)
	if err != nil {
		return err
	}
	if err := g.collapsed.SetRedirector(collapsedSrc); err != nil {
		return err
	}
	if err := g.normal.SetRedirector(normalSrc); err != nil {
		return err
	}
	g.attach(p)
	g.PerformNeedPaint(true)
	return nil
}

// Detach stops listening to the palette.
func (g *RibbonGroup) Detach() {
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}
}

// Palette returns the palette the group is parented to.
func (g *RibbonGroup) Palette() *theme.Palette { return g.palette }

// CollapsedText is the group's override storage for the collapsed text.
func (g *RibbonGroup) CollapsedText() *palette.Storage { return g.collapsed }

// NormalText is the group's override storage for the expanded text.
func (g *RibbonGroup) NormalText() *palette.Storage { return g.normal }

// Caption is the collapsed caption's own storage, chained below the
// collapsed text.
func (g *RibbonGroup) Caption() *palette.Storage { return g.caption }

// SetCollapsed switches between the collapsed and expanded presentation.
func (g *RibbonGroup) SetCollapsed(collapsed bool) {
	if g.isCollapsed == collapsed {
		return
	}
	g.isCollapsed = collapsed
	g.PerformNeedPaint(true)
}

// Collapsed reports the current presentation.
func (g *RibbonGroup) Collapsed() bool { return g.isCollapsed }

// SetPressed marks the collapsed group's popup as open or closed. It has no
// visible effect on an expanded group.
func (g *RibbonGroup) SetPressed(pressed bool) {
	if g.isPressed == pressed {
		return
	}
	g.isPressed = pressed
	if g.isCollapsed {
		g.PerformNeedPaint(false)
	}
}

// Pressed reports whether the collapsed popup is open.
func (g *RibbonGroup) Pressed() bool { return g.isPressed }

// SetState moves the group to a new visual state, e.g. Tracking while the
// pointer is over it.
func (g *RibbonGroup) SetState(state palette.State) error {
	if !theme.RibbonGroupCollapsedText.Declares(state) || state == palette.StateCommon {
		return pkgerrors.NewConfigurationError(g.Name(), fmt.Sprintf("ribbon groups have no %s state", state), nil)
	}
	if g.state == state {
		return nil
	}
	g.state = state
	g.PerformNeedPaint(false)
	return nil
}

// State returns the current visual state.
func (g *RibbonGroup) State() palette.State { return g.state }

// TextStorage returns the storage the current presentation renders from.
func (g *RibbonGroup) TextStorage() *palette.Storage {
	if g.isCollapsed {
		return g.caption
	}
	return g.normal
}

// TextColor resolves the text colour of the current presentation in state.
func (g *RibbonGroup) TextColor(state palette.State) (palette.Color, error) {
	if g.isCollapsed && g.isPressed {
		v, err := g.pressed.ResolveValue(palette.KindTextColor, state)
		if err != nil {
			return palette.Color{}, err
		}
		c, ok := v.(palette.Color)
		if !ok {
			return palette.Color{}, pkgerrors.NewConfigurationError(g.pressed.Name(), fmt.Sprintf("text colour resolved to %T", v), nil)
		}
		return c, nil
	}
	return palette.Resolve(g.TextStorage(), palette.AttrTextColor, state)
}

// CurrentTextColor resolves the text colour for the current state.
func (g *RibbonGroup) CurrentTextColor() (palette.Color, error) {
	return g.TextColor(g.state)
}
