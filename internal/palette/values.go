package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGBA colour. The zero value is fully transparent, which
// is a legitimate value in its own right and never means "inherit".
type Color struct {
	R, G, B, A uint8
}

// Transparent is the explicit fully transparent colour.
var Transparent = Color{}

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// ParseColor reads "#rgb", "#rgba", "#rrggbb", "#rrggbbaa" or the keyword
// "transparent". Colours without an alpha component are opaque.
func ParseColor(raw string) (Color, error) {
	value := strings.TrimSpace(raw)
	if strings.EqualFold(value, "transparent") {
		return Transparent, nil
	}
	if !strings.HasPrefix(value, "#") {
		value = "#" + value
	}
	if len(value) == 4 || len(value) == 5 {
		short := value[1:]
		value = "#"
		for i := range short {
			value += strings.Repeat(short[i:i+1], 2)
		}
	}
	alpha := uint8(255)
	if len(value) == 9 {
		a, err := strconv.ParseUint(value[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid colour %q: bad alpha %q", raw, value[7:])
		}
		alpha = uint8(a)
		value = value[:7]
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", raw, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// MustParseColor is ParseColor for compile-time constants.
func MustParseColor(raw string) Color {
	c, err := ParseColor(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// Colorful converts c to a go-colorful colour, ignoring alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Blend mixes c towards other in Lab space; t=0 returns c, t=1 returns other.
func (c Color) Blend(other Color, t float64) Color {
	r, g, b := c.Colorful().BlendLab(other.Colorful(), t).Clamped().RGB255()
	return RGB(r, g, b)
}

// Hex returns "#rrggbb" for opaque colours and "#rrggbbaa" otherwise.
// Transparent is written as the keyword "transparent".
func (c Color) Hex() string {
	switch {
	case c == Transparent:
		return "transparent"
	case c.A == 255:
		return c.Colorful().Hex()
	default:
		return fmt.Sprintf("%s%02x", c.Colorful().Hex(), c.A)
	}
}

// Lipgloss converts c to a lipgloss colour. Terminals have no alpha, so any
// partially transparent colour is drawn opaque and a zero alpha maps to no
// colour.
func (c Color) Lipgloss() lipgloss.TerminalColor {
	if c.A == 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c.Colorful().Hex())
}

func (c Color) String() string { return c.Hex() }

// Font describes a typeface request. Terminal renderers only honour the
// weight and slant; family and size are kept for hosts that can use them.
type Font struct {
	Family string
	Size   int
	Bold   bool
	Italic bool
}

// ParseFont reads "family:size[:bold][:italic]".
func ParseFont(raw string) (Font, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) < 2 || strings.TrimSpace(parts[0]) == "" {
		return Font{}, fmt.Errorf("invalid font %q: want family:size[:bold][:italic]", raw)
	}
	size, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || size <= 0 {
		return Font{}, fmt.Errorf("invalid font size in %q", raw)
	}
	font := Font{Family: strings.TrimSpace(parts[0]), Size: size}
	for _, flag := range parts[2:] {
		switch strings.ToLower(strings.TrimSpace(flag)) {
		case "bold":
			font.Bold = true
		case "italic":
			font.Italic = true
		default:
			return Font{}, fmt.Errorf("unknown font flag %q in %q", flag, raw)
		}
	}
	return font, nil
}

func (f Font) String() string {
	out := fmt.Sprintf("%s:%d", f.Family, f.Size)
	if f.Bold {
		out += ":bold"
	}
	if f.Italic {
		out += ":italic"
	}
	return out
}

// Image is the terminal analogue of a bitmap: a named glyph.
type Image struct {
	Name  string
	Glyph string
}

// ParseImage reads "name:glyph".
func ParseImage(raw string) (Image, error) {
	name, glyph, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok || name == "" || glyph == "" {
		return Image{}, fmt.Errorf("invalid image %q: want name:glyph", raw)
	}
	return Image{Name: name, Glyph: glyph}, nil
}

func (i Image) String() string { return i.Name + ":" + i.Glyph }

// TextHint selects how text is emphasised.
type TextHint int

const (
	TextHintDefault TextHint = iota
	TextHintPlain
	TextHintBold
	TextHintFaint
	TextHintUnderline
)

var textHintNames = []string{"default", "plain", "bold", "faint", "underline"}

func (h TextHint) String() string {
	if h < 0 || int(h) >= len(textHintNames) {
		return fmt.Sprintf("text_hint(%d)", int(h))
	}
	return textHintNames[h]
}

// ParseTextHint reads a hint name.
func ParseTextHint(raw string) (TextHint, error) {
	key := normalizeName(raw)
	for i, name := range textHintNames {
		if name == key {
			return TextHint(i), nil
		}
	}
	return 0, fmt.Errorf("unknown text hint %q", raw)
}

var namedBorders = []struct {
	name   string
	border lipgloss.Border
}{
	{"none", lipgloss.Border{}},
	{"normal", lipgloss.NormalBorder()},
	{"rounded", lipgloss.RoundedBorder()},
	{"thick", lipgloss.ThickBorder()},
	{"double", lipgloss.DoubleBorder()},
	{"block", lipgloss.BlockBorder()},
	{"hidden", lipgloss.HiddenBorder()},
}

// ParseBorder maps a border name onto a lipgloss border. "none" is the
// explicit empty border.
func ParseBorder(raw string) (lipgloss.Border, error) {
	key := normalizeName(raw)
	for _, nb := range namedBorders {
		if nb.name == key {
			return nb.border, nil
		}
	}
	return lipgloss.Border{}, fmt.Errorf("unknown border %q", raw)
}

// BorderName returns the name of a known border, or "custom".
func BorderName(b lipgloss.Border) string {
	for _, nb := range namedBorders {
		if nb.border == b {
			return nb.name
		}
	}
	return "custom"
}
