// Package cell wraps raw strings into fixed-width, space-padded blocks of
// text that the table renderer can lay side by side.
package cell

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidWidth is returned when a cell is asked to wrap at a width below 1.
var ErrInvalidWidth = errors.New("invalid cell width")

// Cell is a wrapped, padded cell value. Content always holds exactly Height
// lines, each exactly Width runes long, joined by "\n".
type Cell struct {
	width   int
	height  int
	content string
}

// Width returns the number of runes per line.
func (c Cell) Width() int { return c.width }

// Height returns the number of lines the cell occupies.
func (c Cell) Height() int { return c.height }

// Content returns the wrapped and padded text.
func (c Cell) Content() string { return c.content }

// Lines returns the content split into its Height lines.
func (c Cell) Lines() []string {
	return strings.Split(c.content, "\n")
}

// Wrap breaks text into lines of width runes, padding the last line with
// trailing spaces. Breaks are by rune count only, never at word boundaries.
// An empty string yields a single blank line.
func Wrap(width int, text string) (Cell, error) {
	if width < 1 {
		return Cell{}, fmt.Errorf("%w: %d (must be >= 1)", ErrInvalidWidth, width)
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/width + width)

	lineLen := 0
	i := 0
	for _, r := range text {
		if i != 0 && i%width == 0 {
			b.WriteByte('\n')
			lineLen = 0
		}
		b.WriteRune(r)
		lineLen++
		i++
	}
	b.WriteString(strings.Repeat(" ", width-lineLen))

	height := 1
	if n := utf8.RuneCountInString(text); n > 0 {
		height = (n + width - 1) / width
	}

	return Cell{width: width, height: height, content: b.String()}, nil
}

// PadRow normalizes a row so every cell shares the tallest cell's height.
// Shorter cells get whole lines of spaces appended at their own width. The
// input slice is left untouched.
func PadRow(cells []Cell) []Cell {
	maxHeight := 0
	for _, c := range cells {
		if c.height > maxHeight {
			maxHeight = c.height
		}
	}

	padded := make([]Cell, 0, len(cells))
	for _, c := range cells {
		content := c.content
		if missing := maxHeight - c.height; missing > 0 {
			blank := "\n" + strings.Repeat(" ", c.width)
			content += strings.Repeat(blank, missing)
		}
		padded = append(padded, Cell{width: c.width, height: maxHeight, content: content})
	}

	return padded
}
