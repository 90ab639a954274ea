package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/palettekit/internal/components"
	"github.com/alexisbeaulieu97/palettekit/internal/palette"
	"github.com/alexisbeaulieu97/palettekit/internal/render"
	"github.com/alexisbeaulieu97/palettekit/internal/theme"
)

// View renders the preview.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	_ = m.manager.View(func(p *theme.Palette) error {
		sections = append(sections, titleStyle.Render(fmt.Sprintf("palettekit • %s (base: %s)", p.Name(), p.Base().Name())))
		sections = append(sections, sectionStyle.Render("Features"), m.renderFeatures(p))
		sections = append(sections, sectionStyle.Render(fmt.Sprintf("State: %s", m.SelectedState())), m.renderValues(p))
		sections = append(sections, sectionStyle.Render("Widgets"), m.renderWidgets(p))
		return nil
	})

	footer := []string{mutedStyle.Render(fmt.Sprintf("repaints: %d  layouts: %d", m.repaints, m.layouts))}
	if m.status != "" {
		if m.failed {
			footer = append(footer, errorStyle.Render(m.status))
		} else {
			footer = append(footer, statusStyle.Render(m.status))
		}
	}
	footer = append(footer, m.help.View(m.keys))
	sections = append(sections, footerStyle.Render(strings.Join(footer, "\n")))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderFeatures(p *theme.Palette) string {
	lines := make([]string, 0, len(m.features))
	for i, name := range m.features {
		label := name
		if s, ok := p.Storage(name); ok && !s.IsDefault() {
			label += " *"
		}
		if target, ok := p.Redirect(name); ok {
			label += " → " + target
		}
		if i == m.cursor {
			lines = append(lines, selectedStyle.Render(label))
		} else {
			lines = append(lines, itemStyle.Render(label))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderValues(p *theme.Palette) string {
	s, ok := p.Storage(m.SelectedFeature())
	if !ok {
		return mutedStyle.Render("  no feature selected")
	}
	state := m.SelectedState()
	f := s.Feature()
	if !f.Declares(state) {
		return mutedStyle.Render(fmt.Sprintf("  %s does not declare %s", f.Name, state))
	}

	var lines []string
	for _, k := range f.Kinds {
		v, err := s.ResolveValue(k, state)
		if err != nil {
			lines = append(lines, errorStyle.Render(fmt.Sprintf("  %-13s %v", k, err)))
			continue
		}
		lines = append(lines, fmt.Sprintf("  %-13s %s%s", k, palette.FormatValue(k, v), swatch(v)))
	}

	if f.HasKind(palette.KindImage) {
		if glyph, err := render.Glyph(s, state); err == nil {
			lines = append(lines, "  sample        "+glyph)
		}
	} else if sample, err := render.Label(s, state, "Sample"); err == nil {
		lines = append(lines, "  sample", sample)
	}
	return strings.Join(lines, "\n")
}

// renderWidgets draws one of each control as it looks in the selected
// state.
func (m Model) renderWidgets(p *theme.Palette) string {
	in := components.InteractionFor(m.SelectedState())
	storage := func(name string) *palette.Storage {
		s, _ := p.Storage(name)
		return s
	}

	value := components.Unchecked
	if in.Checked {
		value = components.Checked
	}
	hover := -1
	if in.Hover {
		hover = 1
	}
	tabs := components.NewTabBar(storage(theme.FeatureTabHeader), "Home", "Insert", "View").
		WithContext(in.Context).
		WithDisabled(in.Disabled)
	tabs.Hover(hover)

	views := []interface{ View() (string, error) }{
		components.NewButton("Button", storage(theme.FeatureButtonStandalone)).WithInteraction(in),
		components.NewCheckBox("Check box",
			storage(theme.FeatureCheckBoxImages),
			storage(theme.FeatureCheckBoxIndeterminate),
			storage(theme.FeatureLabelText),
		).WithValue(value).WithInteraction(in),
		tabs,
		components.NewLabel("Label", storage(theme.FeatureLabelText)).WithDisabled(in.Disabled),
	}

	rendered := make([]string, 0, len(views))
	for _, v := range views {
		out, err := v.View()
		if err != nil {
			out = errorStyle.Render(err.Error())
		}
		rendered = append(rendered, out)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, joinWithGap(rendered, "  ")...)
}

func joinWithGap(parts []string, gap string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, part := range parts {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, part)
	}
	return out
}

func swatch(v any) string {
	c, ok := v.(palette.Color)
	if !ok || c.A == 0 {
		return ""
	}
	return " " + lipgloss.NewStyle().Background(c.Lipgloss()).Render("   ")
}
