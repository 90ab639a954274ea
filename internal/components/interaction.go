// Package components renders small controls whose look comes entirely from
// a palette storage. A control tracks how the user is interacting with it
// and maps that onto the closest state its feature declares.
package components

import "github.com/alexisbeaulieu97/palettekit/internal/palette"

// Interaction describes what is happening to a control.
type Interaction struct {
	Disabled bool
	Hover    bool
	Pressed  bool
	Checked  bool
	// Context marks a control drawn inside a contextual group, such as a
	// tab of a context ribbon.
	Context bool
}

// State maps i onto the full state set, ignoring what any feature declares.
// Disabled wins over everything else.
func (i Interaction) State() palette.State {
	if i.Disabled {
		return palette.StateDisabled
	}
	if i.Context {
		switch {
		case i.Checked && i.Pressed:
			return palette.StateContextCheckedPressed
		case i.Checked && i.Hover:
			return palette.StateContextCheckedTracking
		case i.Checked:
			return palette.StateContextCheckedNormal
		case i.Hover || i.Pressed:
			return palette.StateContextTracking
		default:
			return palette.StateContextNormal
		}
	}
	switch {
	case i.Checked && i.Pressed:
		return palette.StateCheckedPressed
	case i.Checked && i.Hover:
		return palette.StateCheckedTracking
	case i.Checked:
		return palette.StateCheckedNormal
	case i.Pressed:
		return palette.StatePressed
	case i.Hover:
		return palette.StateTracking
	default:
		return palette.StateNormal
	}
}

// StateFor returns the state f should be drawn in. When f does not declare
// the exact state, the context flag, then pressed, then checked are dropped
// in turn; Normal is the last resort.
func (i Interaction) StateFor(f *palette.Feature) palette.State {
	candidates := []Interaction{i}
	if i.Context {
		i.Context = false
		candidates = append(candidates, i)
	}
	if i.Pressed {
		i.Pressed = false
		i.Hover = true
		candidates = append(candidates, i)
	}
	if i.Checked {
		i.Checked = false
		candidates = append(candidates, i)
	}
	for _, c := range candidates {
		if s := c.State(); f.Declares(s) {
			return s
		}
	}
	return palette.StateNormal
}

// InteractionFor is the inverse of State for every concrete state.
func InteractionFor(state palette.State) Interaction {
	switch state {
	case palette.StateTracking:
		return Interaction{Hover: true}
	case palette.StatePressed:
		return Interaction{Pressed: true}
	case palette.StateCheckedNormal:
		return Interaction{Checked: true}
	case palette.StateCheckedTracking:
		return Interaction{Checked: true, Hover: true}
	case palette.StateCheckedPressed:
		return Interaction{Checked: true, Pressed: true}
	case palette.StateDisabled:
		return Interaction{Disabled: true}
	case palette.StateContextNormal:
		return Interaction{Context: true}
	case palette.StateContextTracking:
		return Interaction{Context: true, Hover: true}
	case palette.StateContextCheckedNormal:
		return Interaction{Context: true, Checked: true}
	case palette.StateContextCheckedTracking:
		return Interaction{Context: true, Checked: true, Hover: true}
	case palette.StateContextCheckedPressed:
		return Interaction{Context: true, Checked: true, Pressed: true}
	default:
		return Interaction{}
	}
}
