package components

import (
	"github.com/alexisbeaulieu97/palettekit/internal/palette"
	"github.com/alexisbeaulieu97/palettekit/internal/render"
)

// CheckState is the value of a check box.
type CheckState int

const (
	Unchecked CheckState = iota
	Checked
	Indeterminate
)

// CheckBox draws a glyph from an image feature followed by a label styled by
// a text feature. The indeterminate glyphs come from their own storage.
type CheckBox struct {
	label         string
	images        *palette.Storage
	indeterminate *palette.Storage
	text          *palette.Storage
	value         CheckState
	interaction   Interaction
}

// NewCheckBox creates a check box. indeterminate may be nil when the box
// never shows the third state.
func NewCheckBox(label string, images, indeterminate, text *palette.Storage) *CheckBox {
	return &CheckBox{label: label, images: images, indeterminate: indeterminate, text: text}
}

// WithValue sets the check state.
func (c *CheckBox) WithValue(v CheckState) *CheckBox {
	c.value = v
	return c
}

// WithInteraction replaces the interaction. Its Checked flag is ignored;
// the value decides it.
func (c *CheckBox) WithInteraction(i Interaction) *CheckBox {
	c.interaction = i
	return c
}

// Value returns the check state.
func (c *CheckBox) Value() CheckState { return c.value }

// Toggle cycles unchecked → checked → unchecked. An indeterminate box
// becomes checked.
func (c *CheckBox) Toggle() {
	if c.value == Checked {
		c.value = Unchecked
	} else {
		c.value = Checked
	}
}

func (c *CheckBox) glyphSource() (*palette.Storage, palette.State) {
	i := c.interaction
	i.Checked = c.value == Checked
	if c.value == Indeterminate && c.indeterminate != nil {
		i.Checked = false
		return c.indeterminate, i.StateFor(c.indeterminate.Feature())
	}
	return c.images, i.StateFor(c.images.Feature())
}

// View renders the glyph and the label.
func (c *CheckBox) View() (string, error) {
	s, state := c.glyphSource()
	glyph, err := render.Glyph(s, state)
	if err != nil {
		return "", err
	}
	text, err := render.Label(c.text, c.interaction.StateFor(c.text.Feature()), c.label)
	if err != nil {
		return "", err
	}
	return glyph + " " + text, nil
}
