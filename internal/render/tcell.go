package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/alexisbeaulieu97/palettekit/internal/palette"
)

// Tcell builds a cell style for hosts drawing directly on a tcell screen.
// Only cell attributes are mapped; borders and padding are the host's job.
func Tcell(s *palette.Storage, state palette.State) (tcell.Style, error) {
	style := tcell.StyleDefault
	f := s.Feature()

	if f.HasKind(palette.KindTextColor) {
		c, err := palette.Resolve(s, palette.AttrTextColor, state)
		if err != nil {
			return style, err
		}
		style = style.Foreground(tcellColor(c))
	}
	if f.HasKind(palette.KindBackColor1) {
		c, err := palette.Resolve(s, palette.AttrBackColor1, state)
		if err != nil {
			return style, err
		}
		style = style.Background(tcellColor(c))
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
			style = style.Dim(true)
		case palette.TextHintUnderline:
			style = style.Underline(true)
		}
	}
	return style, nil
}

func tcellColor(c palette.Color) tcell.Color {
	if c.A == 0 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
