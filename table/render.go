package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/telton/gridline/cell"
	"github.com/telton/gridline/theme"
)

// segment is a run of output text, or a run of absent glyphs of the given length.
type segment struct {
	text   string
	absent int
}

// lineBuilder collects segments for one output line. Absent runs become
// spaces so columns stay aligned.
type lineBuilder struct {
	segs []segment
}

func (b *lineBuilder) glyph(r rune, n int) {
	if n <= 0 {
		return
	}
	if r == theme.Absent {
		b.segs = append(b.segs, segment{absent: n})
		return
	}
	b.segs = append(b.segs, segment{text: strings.Repeat(string(r), n)})
}

func (b *lineBuilder) text(s string) {
	b.segs = append(b.segs, segment{text: s})
}

// String returns the finished line and whether it holds anything visible.
func (b *lineBuilder) String() (string, bool) {
	visible := false
	var sb strings.Builder
	for _, s := range b.segs {
		if s.absent > 0 {
			sb.WriteString(strings.Repeat(" ", s.absent))
			continue
		}
		visible = true
		sb.WriteString(s.text)
	}
	if !visible {
		return "", false
	}
	return sb.String(), true
}

// edges records which outer edge columns are drawn. An edge is left out
// only when every glyph that could sit in it is absent, so every line keeps
// the same width.
type edges struct {
	left, right bool
}

func edgesOf(th theme.Theme) edges {
	return edges{
		left: th.Vertical != theme.Absent || th.TopLeft != theme.Absent ||
			th.MiddleLeft != theme.Absent || th.BottomLeft != theme.Absent,
		right: th.Vertical != theme.Absent || th.TopRight != theme.Absent ||
			th.MiddleRight != theme.Absent || th.BottomRight != theme.Absent,
	}
}

// borderRow builds a top, bottom or separator row across the given widths.
func borderRow(widths []int, e edges, left, center, right, fill rune) (string, bool) {
	var b lineBuilder
	for i, w := range widths {
		if i > 0 {
			b.glyph(center, 1)
		} else if e.left {
			b.glyph(left, 1)
		}
		b.glyph(fill, w)
		if i == len(widths)-1 && e.right {
			b.glyph(right, 1)
		}
	}
	return b.String()
}

// contentRows builds the output lines of one header or data row.
func contentRows(row []cell.Cell, e edges, th theme.Theme) []string {
	if len(row) == 0 {
		return nil
	}

	split := make([][]string, len(row))
	for i, c := range row {
		split[i] = c.Lines()
	}

	lines := make([]string, 0, row[0].Height())
	for k := 0; k < row[0].Height(); k++ {
		var b lineBuilder
		for i, cellLines := range split {
			if i > 0 {
				b.glyph(th.InnerVertical, 1)
			} else if e.left {
				b.glyph(th.Vertical, 1)
			}
			b.text(cellLines[k])
		}
		if e.right {
			b.glyph(th.Vertical, 1)
		}

		if line, ok := b.String(); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// Lines renders the table into its output lines: a top border, the header
// lines, a separator before each data row, the data lines and a bottom
// border. Border rows made only of absent glyphs are left out, and all
// emitted lines have the same width.
func (t *Table) Lines(th theme.Theme) []string {
	widths := t.Widths()
	e := edgesOf(th)

	var lines []string
	add := func(line string, ok bool) {
		if ok {
			lines = append(lines, line)
		}
	}

	add(borderRow(widths, e, th.TopLeft, th.TopCenter, th.TopRight, th.Horizontal))
	lines = append(lines, contentRows(t.headers, e, th)...)

	for _, row := range t.rows {
		add(borderRow(widths, e, th.MiddleLeft, th.MiddleCenter, th.MiddleRight, th.InnerHorizontal))
		lines = append(lines, contentRows(row, e, th)...)
	}

	add(borderRow(widths, e, th.BottomLeft, th.BottomCenter, th.BottomRight, th.Horizontal))

	return lines
}

// Render returns the drawn table with a trailing newline on every line.
func (t *Table) Render(th theme.Theme) string {
	var sb strings.Builder
	for _, line := range t.Lines(th) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Draw writes the table to w one line at a time.
func (t *Table) Draw(w io.Writer, th theme.Theme) error {
	for i, line := range t.Lines(th) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("write line %d: %w", i, err)
		}
	}
	return nil
}
