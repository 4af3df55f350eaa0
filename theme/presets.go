package theme

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Heavy returns the thick box-drawing theme: ┏┳┓ ┣╋┫ ┗┻┛ ━┃.
func Heavy() Theme {
	return mustBorder(lipgloss.ThickBorder())
}

// Light returns the thin box-drawing theme: ┌┬┐ ├┼┤ └┴┘ ─│.
func Light() Theme {
	return mustBorder(lipgloss.NormalBorder())
}

// Rounded is Light with rounded corners.
func Rounded() Theme {
	return mustBorder(lipgloss.RoundedBorder())
}

// Double returns the double-line box-drawing theme: ╔╦╗ ╠╬╣ ╚╩╝ ═║.
func Double() Theme {
	return mustBorder(lipgloss.DoubleBorder())
}

// ASCII draws with plain +, - and | for terminals without box glyphs.
func ASCII() Theme {
	return Theme{
		TopLeft:         '+',
		TopCenter:       '+',
		TopRight:        '+',
		MiddleLeft:      '+',
		MiddleCenter:    '+',
		MiddleRight:     '+',
		BottomLeft:      '+',
		BottomCenter:    '+',
		BottomRight:     '+',
		Horizontal:      '-',
		Vertical:        '|',
		InnerHorizontal: '-',
		InnerVertical:   '|',
	}
}

// mustBorder is only used with the built-in lipgloss borders, which are all
// single-rune glyphs.
func mustBorder(b lipgloss.Border) Theme {
	th, err := FromBorder(b)
	if err != nil {
		panic(err)
	}
	return th
}

var presets = map[string]func() Theme{
	"heavy":      Heavy,
	"light":      Light,
	"rounded":    Rounded,
	"double":     Double,
	"ascii":      ASCII,
	"borderless": func() Theme { return Borderless(Heavy()) },
}

// Default is the preset name used when none is given.
const Default = "heavy"

// Names returns the registered preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the preset registered under name.
func Lookup(name string) (Theme, error) {
	if name == "" {
		name = Default
	}
	build, ok := presets[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return build(), nil
}
