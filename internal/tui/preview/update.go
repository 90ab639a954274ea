package preview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/palettekit/internal/palette"
	"github.com/alexisbeaulieu97/palettekit/internal/theme"
)

var sampleOverride = palette.RGB(255, 0, 0)

// Update handles Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case PaintMsg:
		m.repaints++
		if msg.NeedLayout {
			m.layouts++
		}
		return m, waitForPaint(m.paints)

	case ReloadMsg:
		if msg.Err != nil {
			m.setError(fmt.Sprintf("Reload failed: %v", msg.Err))
		} else {
			m.setStatus("Theme reloaded")
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.features)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Prev):
		m.stateIdx = (m.stateIdx + len(m.states) - 1) % len(m.states)

	case key.Matches(msg, m.keys.Next):
		m.stateIdx = (m.stateIdx + 1) % len(m.states)

	case key.Matches(msg, m.keys.Base):
		m.toggleBase()

	case key.Matches(msg, m.keys.Override):
		m.overrideText()

	case key.Matches(msg, m.keys.Populate):
		m.populate()

	case key.Matches(msg, m.keys.Reset):
		m.reset()
	}

	return m, nil
}

func (m *Model) toggleBase() {
	var switched string
	err := m.manager.Update(func(p *theme.Palette) error {
		next := theme.BaseDark
		if p.Base().Name() == theme.BaseDark {
			next = theme.BaseDefault
		}
		base, err := theme.BaseByName(next)
		if err != nil {
			return err
		}
		switched = next
		return p.SetBase(base)
	})
	if err != nil {
		m.setError(fmt.Sprintf("Base switch failed: %v", err))
		return
	}
	m.setStatus(fmt.Sprintf("Base palette: %s", switched))
}

func (m *Model) overrideText() {
	feature, state := m.SelectedFeature(), m.SelectedState()
	err := m.manager.Update(func(p *theme.Palette) error {
		s, ok := p.Storage(feature)
		if !ok {
			return fmt.Errorf("unknown feature %s", feature)
		}
		if !s.Feature().HasKind(palette.KindTextColor) {
			return fmt.Errorf("%s has no text colour", feature)
		}
		if !s.Feature().Declares(state) {
			state = palette.StateCommon
		}
		_, err := s.SetValue(palette.KindTextColor, state, sampleOverride, false)
		return err
	})
	if err != nil {
		m.setError(fmt.Sprintf("Override failed: %v", err))
		return
	}
	m.setStatus(fmt.Sprintf("%s text in %s set to %s", feature, state, sampleOverride))
}

func (m *Model) populate() {
	feature := m.SelectedFeature()
	var changed bool
	err := m.manager.Update(func(p *theme.Palette) error {
		var err error
		changed, err = p.PopulateFromBase(feature)
		return err
	})
	if err != nil {
		m.setError(fmt.Sprintf("Populate failed: %v", err))
		return
	}
	if changed {
		m.setStatus(fmt.Sprintf("%s populated from base", feature))
	} else {
		m.setStatus(fmt.Sprintf("%s already populated", feature))
	}
}

func (m *Model) reset() {
	var changed bool
	err := m.manager.Update(func(p *theme.Palette) error {
		var err error
		changed, err = p.Reset()
		return err
	})
	if err != nil {
		m.setError(fmt.Sprintf("Reset failed: %v", err))
		return
	}
	if changed {
		m.setStatus("Palette reset")
	} else {
		m.setStatus("Nothing to reset")
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.failed = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.failed = true
}
