package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/palettekit/internal/palette"
	"github.com/alexisbeaulieu97/palettekit/internal/render"
)

// TabBar is a row of tab headers. The selected tab is drawn checked and the
// hovered one tracking.
type TabBar struct {
	labels   []string
	storage  *palette.Storage
	selected int
	hover    int
	context  bool
	disabled bool
}

// NewTabBar creates a tab bar over a tab header storage.
func NewTabBar(s *palette.Storage, labels ...string) *TabBar {
	return &TabBar{labels: labels, storage: s, hover: -1}
}

// WithContext draws every tab in its contextual variant.
func (t *TabBar) WithContext(context bool) *TabBar {
	t.context = context
	return t
}

// WithDisabled greys out the whole bar.
func (t *TabBar) WithDisabled(disabled bool) *TabBar {
	t.disabled = disabled
	return t
}

// Select makes tab i the checked one. Out of range indexes are ignored.
func (t *TabBar) Select(i int) {
	if i >= 0 && i < len(t.labels) {
		t.selected = i
	}
}

// Hover marks tab i as tracking; -1 clears it.
func (t *TabBar) Hover(i int) {
	if i >= -1 && i < len(t.labels) {
		t.hover = i
	}
}

// Selected returns the checked tab.
func (t *TabBar) Selected() int { return t.selected }

// StateOf returns the state tab i is drawn in.
func (t *TabBar) StateOf(i int) palette.State {
	in := Interaction{
		Disabled: t.disabled,
		Checked:  i == t.selected,
		Hover:    i == t.hover,
		Context:  t.context,
	}
	return in.StateFor(t.storage.Feature())
}

// View renders the tabs side by side.
func (t *TabBar) View() (string, error) {
	tabs := make([]string, len(t.labels))
	for i, label := range t.labels {
		out, err := render.Label(t.storage, t.StateOf(i), " "+label+" ")
		if err != nil {
			return "", err
		}
		tabs[i] = out
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...), nil
}
