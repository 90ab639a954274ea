package preview

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/palettekit/internal/palette"
	"github.com/alexisbeaulieu97/palettekit/internal/theme"
)

// PaintMsg is delivered once per palette notification.
type PaintMsg struct {
	NeedLayout bool
}

// ReloadMsg reports the outcome of a theme file reload.
type ReloadMsg struct {
	Err error
}

// Model is the Bubble Tea state of the live palette preview.
type Model struct {
	manager  *theme.Manager
	features []string
	states   []palette.State
	paints   chan bool

	cursor   int
	stateIdx int

	repaints int
	layouts  int
	status   string
	failed   bool

	keys     keyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel builds a preview over the palette behind manager and subscribes
// to its notifications.
func NewModel(manager *theme.Manager) Model {
	m := Model{
		manager: manager,
		states:  palette.ConcreteStates(),
		paints:  make(chan bool, 64),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}

	_ = manager.Update(func(p *theme.Palette) error {
		m.features = p.Registry().Names()
		p.Subscribe(m.enqueuePaint)
		return nil
	})
	return m
}

// enqueuePaint runs on whichever goroutine mutated the palette. When the
// queue is full the notification is dropped; the queued ones already force
// a repaint.
func (m Model) enqueuePaint(needLayout bool) {
	select {
	case m.paints <- needLayout:
	default:
	}
}

func waitForPaint(ch <-chan bool) tea.Cmd {
	return func() tea.Msg {
		return PaintMsg{NeedLayout: <-ch}
	}
}

// Init starts listening for palette notifications.
func (m Model) Init() tea.Cmd {
	return waitForPaint(m.paints)
}

// Repaints returns how many palette notifications the preview received.
func (m Model) Repaints() int { return m.repaints }

// Layouts returns how many of those asked for layout.
func (m Model) Layouts() int { return m.layouts }

// SelectedFeature returns the feature under the cursor.
func (m Model) SelectedFeature() string {
	if len(m.features) == 0 {
		return ""
	}
	return m.features[m.cursor]
}

// SelectedState returns the state being previewed.
func (m Model) SelectedState() palette.State {
	return m.states[m.stateIdx]
}

// Status returns the last status line.
func (m Model) Status() string { return m.status }
