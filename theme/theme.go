// Package theme defines the border-drawing character sets used to frame
// rendered tables.
package theme

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Absent marks a border position that draws nothing.
const Absent rune = 0

var (
	// ErrInvalidGlyph is returned when a border character is not a single
	// one-column rune.
	ErrInvalidGlyph = errors.New("invalid border glyph")
	// ErrUnknownTheme is returned by Lookup for unregistered names.
	ErrUnknownTheme = errors.New("unknown theme")
)

// Theme holds the characters for every border position of a table.
type Theme struct {
	// top row of the table
	TopLeft   rune
	TopCenter rune
	TopRight  rune

	// separators between the header and rows, and between rows
	MiddleLeft   rune
	MiddleCenter rune
	MiddleRight  rune

	// bottom row of the table
	BottomLeft   rune
	BottomCenter rune
	BottomRight  rune

	// Horizontal fills the top and bottom rows, Vertical the outer edges.
	Horizontal rune
	Vertical   rune

	// InnerHorizontal fills separator rows, InnerVertical divides columns.
	InnerHorizontal rune
	InnerVertical   rune
}

// ParseGlyph decodes a border position given as a string. The empty string
// is Absent; anything else must be exactly one rune.
func ParseGlyph(name, s string) (rune, error) {
	if s == "" {
		return Absent, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return Absent, fmt.Errorf("%w: %s %q is not a single rune", ErrInvalidGlyph, name, s)
	}
	return r, nil
}

// FromBorder converts a lipgloss border definition into a Theme. Empty
// border strings become Absent. The inner dividers repeat Top and Left.
func FromBorder(b lipgloss.Border) (Theme, error) {
	var err error

	glyph := func(name, s string) rune {
		if err != nil {
			return Absent
		}
		var r rune
		r, err = ParseGlyph(name, s)
		return r
	}

	th := Theme{
		TopLeft:         glyph("top-left", b.TopLeft),
		TopCenter:       glyph("top-center", b.MiddleTop),
		TopRight:        glyph("top-right", b.TopRight),
		MiddleLeft:      glyph("middle-left", b.MiddleLeft),
		MiddleCenter:    glyph("middle-center", b.Middle),
		MiddleRight:     glyph("middle-right", b.MiddleRight),
		BottomLeft:      glyph("bottom-left", b.BottomLeft),
		BottomCenter:    glyph("bottom-center", b.MiddleBottom),
		BottomRight:     glyph("bottom-right", b.BottomRight),
		Horizontal:      glyph("horizontal", b.Top),
		Vertical:        glyph("vertical", b.Left),
		InnerHorizontal: glyph("inner-horizontal", b.Top),
		InnerVertical:   glyph("inner-vertical", b.Left),
	}
	if err == nil {
		err = Validate(th)
	}
	if err != nil {
		return Theme{}, err
	}
	return th, nil
}

// Borderless strips the outer frame and separator junctions from t, keeping
// only the inner dividers. Applying it twice changes nothing.
func Borderless(t Theme) Theme {
	return Theme{
		TopLeft:         Absent,
		TopCenter:       Absent,
		TopRight:        Absent,
		MiddleLeft:      Absent,
		MiddleCenter:    Absent,
		MiddleRight:     Absent,
		BottomLeft:      Absent,
		BottomCenter:    Absent,
		BottomRight:     Absent,
		Horizontal:      Absent,
		Vertical:        Absent,
		InnerHorizontal: t.InnerHorizontal,
		InnerVertical:   t.InnerVertical,
	}
}

// WithInner returns a copy of t using h and v as the inner dividers.
func (t Theme) WithInner(h, v rune) Theme {
	t.InnerHorizontal = h
	t.InnerVertical = v
	return t
}

// narrow measures glyphs as a non-CJK terminal does, so ambiguous-width
// box-drawing runes count as one column regardless of locale.
var narrow = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Validate checks that every present glyph occupies exactly one terminal column.
func Validate(t Theme) error {
	for _, g := range t.glyphs() {
		if g.r == Absent {
			continue
		}
		if w := narrow.RuneWidth(g.r); w != 1 {
			return fmt.Errorf("%w: %s %q is %d columns wide", ErrInvalidGlyph, g.name, g.r, w)
		}
	}
	return nil
}

type namedGlyph struct {
	name string
	r    rune
}

func (t Theme) glyphs() []namedGlyph {
	return []namedGlyph{
		{"top-left", t.TopLeft},
		{"top-center", t.TopCenter},
		{"top-right", t.TopRight},
		{"middle-left", t.MiddleLeft},
		{"middle-center", t.MiddleCenter},
		{"middle-right", t.MiddleRight},
		{"bottom-left", t.BottomLeft},
		{"bottom-center", t.BottomCenter},
		{"bottom-right", t.BottomRight},
		{"horizontal", t.Horizontal},
		{"vertical", t.Vertical},
		{"inner-horizontal", t.InnerHorizontal},
		{"inner-vertical", t.InnerVertical},
	}
}

// Glyphs returns the theme's characters keyed by position name. Absent
// positions map to the empty string.
func (t Theme) Glyphs() map[string]string {
	out := make(map[string]string, 13)
	for _, g := range t.glyphs() {
		if g.r == Absent {
			out[g.name] = ""
			continue
		}
		out[g.name] = string(g.r)
	}
	return out
}
