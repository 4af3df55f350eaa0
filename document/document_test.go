package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telton/gridline/table"
	"github.com/telton/gridline/theme"
)

const sample = `
theme: ascii
number: true
columns:
  - label: Name
    width: 4
  - label: OK
rows:
  - [gridline, "y"]
  - ["", "n"]
`

func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	doc, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, "ascii", doc.Theme)
	assert.True(t, doc.Number)
	assert.Equal(t, []Column{{Label: "Name", Width: 4}, {Label: "OK"}}, doc.Columns)
	assert.Equal(t, [][]string{{"gridline", "y"}, {"", "n"}}, doc.Rows)
}

func TestParse_MissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode(strings.NewReader("columns: [unclosed"))
	assert.Error(t, err)
}

func TestDocument_Render(t *testing.T) {
	doc, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)

	tbl, err := doc.Table()
	require.NoError(t, err)
	th, err := doc.ResolveTheme()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"+---+----+--+",
		"|#  |Name|OK|",
		"+---+----+--+",
		"|0  |grid|y |",
		"|   |line|  |",
		"+---+----+--+",
		"|1  |    |n |",
		"+---+----+--+",
	}, tbl.Lines(th))
}

func TestDocument_TableColumnMismatch(t *testing.T) {
	doc := &Document{
		Columns: []Column{{Label: "A"}, {Label: "B"}},
		Rows:    [][]string{{"1"}},
	}

	_, err := doc.Table()
	assert.ErrorIs(t, err, table.ErrColumnCount)
}

func TestDocument_ResolveTheme(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want theme.Theme
		err  error
	}{
		{
			name: "default preset",
			want: theme.Heavy(),
		},
		{
			name: "borderless preset",
			doc:  Document{Theme: "light", Borderless: true},
			want: theme.Borderless(theme.Light()),
		},
		{
			name: "unknown preset",
			doc:  Document{Theme: "neon"},
			err:  theme.ErrUnknownTheme,
		},
		{
			name: "custom border",
			doc: Document{Border: &Border{
				Top: "=", Left: "!", TopLeft: "<", TopRight: ">",
			}},
			want: theme.Theme{
				TopLeft: '<', TopRight: '>',
				Horizontal: '=', Vertical: '!',
				InnerHorizontal: '=', InnerVertical: '!',
			},
		},
		{
			name: "custom border with wide glyph",
			doc:  Document{Border: &Border{Top: "田"}},
			err:  theme.ErrInvalidGlyph,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := tt.doc.ResolveTheme()
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, th)
		})
	}
}

func TestDocument_PartialBorderStaysRectangular(t *testing.T) {
	doc, err := Decode(strings.NewReader(`
border:
  top: "-"
  left: "|"
  top-right: "+"
  middle-top: "+"
columns:
  - label: H1
  - label: H2
rows:
  - [a, bb]
`))
	require.NoError(t, err)

	tbl, err := doc.Table()
	require.NoError(t, err)
	th, err := doc.ResolveTheme()
	require.NoError(t, err)

	assert.Equal(t, []string{
		" --+--+",
		"|H1|H2|",
		" -- -- ",
		"|a |bb|",
		" -- -- ",
	}, tbl.Lines(th))
}

func TestDocument_InnerDividers(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		lines []string
		err   error
	}{
		{
			name: "distinct inner dividers",
			yaml: `
border:
  top: "="
  left: "#"
  top-left: "+"
  top-right: "+"
  middle-top: "+"
  middle-left: "+"
  middle-right: "+"
  middle: "+"
  bottom-left: "+"
  bottom-right: "+"
  middle-bottom: "+"
  inner-horizontal: "-"
  inner-vertical: ":"
`,
			lines: []string{
				"+==+==+",
				"#H1:H2#",
				"+--+--+",
				"#a :bb#",
				"+==+==+",
			},
		},
		{
			name: "inner dividers removed",
			yaml: `
border:
  top: "-"
  left: "|"
  inner-horizontal: ""
  inner-vertical: ""
`,
			lines: []string{
				" -- -- ",
				"|H1 H2|",
				"|a  bb|",
				" -- -- ",
			},
		},
		{
			name: "invalid inner glyph",
			yaml: `
border:
  top: "-"
  inner-vertical: "||"
`,
			err: theme.ErrInvalidGlyph,
		},
		{
			name: "wide inner glyph",
			yaml: `
border:
  top: "-"
  inner-horizontal: "田"
`,
			err: theme.ErrInvalidGlyph,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode(strings.NewReader(tt.yaml))
			require.NoError(t, err)
			doc.Columns = []Column{{Label: "H1"}, {Label: "H2"}}
			doc.Rows = [][]string{{"a", "bb"}}

			th, err := doc.ResolveTheme()
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)

			tbl, err := doc.Table()
			require.NoError(t, err)
			assert.Equal(t, tt.lines, tbl.Lines(th))
		})
	}
}
