package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Kind identifies an overridable attribute. Each kind has one fixed value
// type, listed next to the constant.
type Kind int

const (
	KindTextColor   Kind = iota // Color
	KindBackColor1              // Color
	KindBackColor2              // Color
	KindBorderColor             // Color
	KindFont                    // Font
	KindImage                   // Image
	KindBorder                  // lipgloss.Border
	KindPadding                 // int
	KindRounding                // int
	KindTextHint                // TextHint
	KindShortText               // string
)

const kindCount = int(KindShortText) + 1

type kindInfo struct {
	name    string
	layout  bool
	newSlot func() anySlot
	parse   func(string) (any, error)
	format  func(any) string
}

func colorKind(name string) kindInfo {
	return kindInfo{
		name:    name,
		newSlot: func() anySlot { return new(Slot[Color]) },
		parse:   func(raw string) (any, error) { return ParseColor(raw) },
		format:  func(v any) string { return v.(Color).Hex() },
	}
}

func intKind(name string) kindInfo {
	return kindInfo{
		name:    name,
		layout:  true,
		newSlot: func() anySlot { return new(Slot[int]) },
		parse: func(raw string) (any, error) {
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("invalid %s %q: %w", name, raw, err)
			}
			if n < 0 {
				return nil, fmt.Errorf("invalid %s %q: must not be negative", name, raw)
			}
			return n, nil
		},
		format: func(v any) string { return strconv.Itoa(v.(int)) },
	}
}

var kinds = [kindCount]kindInfo{
	KindTextColor:   colorKind("text_color"),
	KindBackColor1:  colorKind("back_color1"),
	KindBackColor2:  colorKind("back_color2"),
	KindBorderColor: colorKind("border_color"),
	KindFont: {
		name:    "font",
		layout:  true,
		newSlot: func() anySlot { return new(Slot[Font]) },
		parse:   func(raw string) (any, error) { return ParseFont(raw) },
		format:  func(v any) string { return v.(Font).String() },
	},
	KindImage: {
		name:    "image",
		layout:  true,
		newSlot: func() anySlot { return new(Slot[Image]) },
		parse:   func(raw string) (any, error) { return ParseImage(raw) },
		format:  func(v any) string { return v.(Image).String() },
	},
	KindBorder: {
		name:    "border",
		layout:  true,
		newSlot: func() anySlot { return new(Slot[lipgloss.Border]) },
		parse:   func(raw string) (any, error) { return ParseBorder(raw) },
		format:  func(v any) string { return BorderName(v.(lipgloss.Border)) },
	},
	KindPadding:  intKind("padding"),
	KindRounding: intKind("rounding"),
	KindTextHint: {
		name:    "text_hint",
		newSlot: func() anySlot { return new(Slot[TextHint]) },
		parse:   func(raw string) (any, error) { return ParseTextHint(raw) },
		format:  func(v any) string { return v.(TextHint).String() },
	},
	KindShortText: {
		name:    "short_text",
		layout:  true,
		newSlot: func() anySlot { return new(Slot[string]) },
		parse:   func(raw string) (any, error) { return raw, nil },
		format:  func(v any) string { return v.(string) },
	},
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < kindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kinds[k].name
}

// NeedsLayout reports whether a change to this kind can alter the size of
// the visual, as opposed to only its colours.
func (k Kind) NeedsLayout() bool {
	return k.Valid() && kinds[k].layout
}

// ParseKind looks a kind up by name.
func ParseKind(name string) (Kind, error) {
	key := normalizeName(name)
	for i, info := range kinds {
		if normalizeName(info.name) == key {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown attribute kind %q", name)
}

// AllKinds lists every kind in declaration order.
func AllKinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// ParseValue converts the textual form used by theme files into the kind's
// value type.
func ParseValue(k Kind, raw string) (any, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unknown attribute kind %d", int(k))
	}
	return kinds[k].parse(raw)
}

// FormatValue is the inverse of ParseValue.
func FormatValue(k Kind, v any) string {
	if !k.Valid() || v == nil {
		return ""
	}
	return kinds[k].format(v)
}

// Attribute is a typed handle on a Kind, binding it to its value type so
// reads and writes through Resolve and Set are checked by the compiler.
type Attribute[T comparable] struct {
	kind Kind
}

// Kind returns the underlying attribute kind.
func (a Attribute[T]) Kind() Kind { return a.kind }

func (a Attribute[T]) String() string { return a.kind.String() }

var (
	AttrTextColor   = Attribute[Color]{kind: KindTextColor}
	AttrBackColor1  = Attribute[Color]{kind: KindBackColor1}
	AttrBackColor2  = Attribute[Color]{kind: KindBackColor2}
	AttrBorderColor = Attribute[Color]{kind: KindBorderColor}
	AttrFont        = Attribute[Font]{kind: KindFont}
	AttrImage       = Attribute[Image]{kind: KindImage}
	AttrBorder      = Attribute[lipgloss.Border]{kind: KindBorder}
	AttrPadding     = Attribute[int]{kind: KindPadding}
	AttrRounding    = Attribute[int]{kind: KindRounding}
	AttrTextHint    = Attribute[TextHint]{kind: KindTextHint}
	AttrShortText   = Attribute[string]{kind: KindShortText}
)
