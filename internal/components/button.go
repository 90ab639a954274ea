package components

import (
	"github.com/alexisbeaulieu97/palettekit/internal/palette"
	"github.com/alexisbeaulieu97/palettekit/internal/render"
)

// Button is a push button styled by a button feature storage.
type Button struct {
	label       string
	storage     *palette.Storage
	interaction Interaction
}

// NewButton creates a button drawn from s.
func NewButton(label string, s *palette.Storage) *Button {
	return &Button{label: label, storage: s}
}

// WithInteraction replaces the whole interaction.
func (b *Button) WithInteraction(i Interaction) *Button {
	b.interaction = i
	return b
}

// WithDisabled sets the button disabled state
func (b *Button) WithDisabled(disabled bool) *Button {
	b.interaction.Disabled = disabled
	return b
}

// WithFocus sets the hover state
func (b *Button) WithFocus(focus bool) *Button {
	b.interaction.Hover = focus
	return b
}

// WithPressed sets the pressed state
func (b *Button) WithPressed(pressed bool) *Button {
	b.interaction.Pressed = pressed
	return b
}

// WithChecked turns the button into a toggled button.
func (b *Button) WithChecked(checked bool) *Button {
	b.interaction.Checked = checked
	return b
}

// State returns the palette state the button is drawn in.
func (b *Button) State() palette.State {
	return b.interaction.StateFor(b.storage.Feature())
}

// View renders the button.
func (b *Button) View() (string, error) {
	return render.Label(b.storage, b.State(), b.label)
}
