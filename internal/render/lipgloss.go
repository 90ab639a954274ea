// Package render turns resolved palette values into terminal styles. Every
// value is resolved on each call; resolution errors are returned as-is and
// never papered over with defaults.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/palettekit/internal/palette"
)

// Lipgloss builds a lipgloss style from the kinds the storage's feature
// declares, resolved for state.
func Lipgloss(s *palette.Storage, state palette.State) (lipgloss.Style, error) {
	style := lipgloss.NewStyle()
	f := s.Feature()

	if f.HasKind(palette.KindTextColor) {
		c, err := palette.Resolve(s, palette.AttrTextColor, state)
		if err != nil {
			return style, err
		}
		style = style.Foreground(c.Lipgloss())
	}
	if f.HasKind(palette.KindBackColor1) {
		c, err := palette.Resolve(s, palette.AttrBackColor1, state)
		if err != nil {
			return style, err
		}
		style = style.Background(c.Lipgloss())
	}
	if f.HasKind(palette.KindBorder) {
		b, err := palette.Resolve(s, palette.AttrBorder, state)
		if err != nil {
			return style, err
		}
		if f.HasKind(palette.KindRounding) {
			r, err := palette.Resolve(s, palette.AttrRounding, state)
			if err != nil {
				return style, err
			}
			// Terminals have no corner radius; any rounding picks the
			// rounded corners.
			if r > 0 && b == lipgloss.NormalBorder() {
				b = lipgloss.RoundedBorder()
			}
		}
		style = style.Border(b, b != lipgloss.Border{})
	}
	if f.HasKind(palette.KindBorderColor) {
		c, err := palette.Resolve(s, palette.AttrBorderColor, state)
		if err != nil {
			return style, err
		}
		style = style.BorderForeground(c.Lipgloss())
	}
	if f.HasKind(palette.KindBackColor2) {
		c, err := palette.Resolve(s, palette.AttrBackColor2, state)
		if err != nil {
			return style, err
		}
		style = style.BorderBackground(c.Lipgloss())
	}
	if f.HasKind(palette.KindPadding) {
		p, err := palette.Resolve(s, palette.AttrPadding, state)
		if err != nil {
			return style, err
		}
		style = style.Padding(0, p)
	}
	if f.HasKind(palette.KindFont) {
		font, err := palette.Resolve(s, palette.AttrFont, state)
		if err != nil {
			return style, err
		}
		style = style.Bold(font.Bold).Italic(font.Italic)
	}
	if f.HasKind(palette.KindTextHint) {
		hint, err := palette.Resolve(s, palette.AttrTextHint, state)
		if err != nil {
			return style, err
		}
		switch hint {
		case palette.TextHintPlain:
			style = style.Bold(false).Italic(false)
		case palette.TextHintBold:
			style = style.Bold(true)
		case palette.TextHintFaint:
			style = style.Faint(true)
		case palette.TextHintUnderline:
			style = style.Underline(true)
		}
	}
	return style, nil
}

// Label renders text with the storage's style. A feature declaring
// short_text replaces text with the resolved short text when it is set to a
// non-empty value.
func Label(s *palette.Storage, state palette.State, text string) (string, error) {
	style, err := Lipgloss(s, state)
	if err != nil {
		return "", err
	}
	if s.Feature().HasKind(palette.KindShortText) {
		short, err := palette.Resolve(s, palette.AttrShortText, state)
		if err != nil {
			return "", err
		}
		if short != "" {
			text = short
		}
	}
	return style.Render(text), nil
}

// Glyph resolves the image of an image feature to its terminal glyph.
func Glyph(s *palette.Storage, state palette.State) (string, error) {
	img, err := palette.Resolve(s, palette.AttrImage, state)
	if err != nil {
		return "", err
	}
	return img.Glyph, nil
}
