package components

import (
	"github.com/alexisbeaulieu97/palettekit/internal/palette"
	"github.com/alexisbeaulieu97/palettekit/internal/render"
)

// Label is static text.
type Label struct {
	text     string
	storage  *palette.Storage
	disabled bool
}

func NewLabel(text string, s *palette.Storage) *Label {
	return &Label{text: text, storage: s}
}

func (l *Label) WithDisabled(disabled bool) *Label {
	l.disabled = disabled
	return l
}

func (l *Label) View() (string, error) {
	state := Interaction{Disabled: l.disabled}.StateFor(l.storage.Feature())
	return render.Label(l.storage, state, l.text)
}
