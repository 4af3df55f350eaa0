// Package document loads table definitions from YAML files.
package document

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"

	"github.com/telton/gridline/table"
	"github.com/telton/gridline/theme"
)

// Column is a header entry. Width is optional.
type Column struct {
	Label string `yaml:"label"`
	Width int    `yaml:"width,omitempty"`
}

// Border overrides the theme glyphs. Empty fields draw nothing. The inner
// dividers repeat Top and Left unless set; an explicit empty string removes
// them.
type Border struct {
	Top          string `yaml:"top"`
	Left         string `yaml:"left"`
	TopLeft      string `yaml:"top-left"`
	TopRight     string `yaml:"top-right"`
	BottomLeft   string `yaml:"bottom-left"`
	BottomRight  string `yaml:"bottom-right"`
	MiddleLeft   string `yaml:"middle-left"`
	MiddleRight  string `yaml:"middle-right"`
	Middle       string `yaml:"middle"`
	MiddleTop    string `yaml:"middle-top"`
	MiddleBottom string `yaml:"middle-bottom"`

	InnerHorizontal *string `yaml:"inner-horizontal,omitempty"`
	InnerVertical   *string `yaml:"inner-vertical,omitempty"`
}

// Document is a table definition as stored on disk.
type Document struct {
	Theme      string     `yaml:"theme,omitempty"`
	Border     *Border    `yaml:"border,omitempty"`
	Borderless bool       `yaml:"borderless,omitempty"`
	Number     bool       `yaml:"number,omitempty"`
	Columns    []Column   `yaml:"columns"`
	Rows       [][]string `yaml:"rows"`
}

// Parse reads and decodes a table document file.
func Parse(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table document: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a table document from r.
func Decode(r io.Reader) (*Document, error) {
	var d Document
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode table document: %w", err)
	}
	return &d, nil
}

// Table builds the table the document describes, numbered if requested.
func (d *Document) Table() (*table.Table, error) {
	columns := make([]table.Column, len(d.Columns))
	for i, c := range d.Columns {
		columns[i] = table.Column{Width: c.Width, Label: c.Label}
	}

	t, err := table.Make(columns, d.Rows)
	if err != nil {
		return nil, err
	}
	if d.Number {
		if err := t.Number(); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// ResolveTheme returns the document's border theme. A custom border takes
// precedence over a preset name.
func (d *Document) ResolveTheme() (theme.Theme, error) {
	var (
		th  theme.Theme
		err error
	)
	if d.Border != nil {
		th, err = d.Border.resolve()
	} else {
		th, err = theme.Lookup(d.Theme)
	}
	if err != nil {
		return theme.Theme{}, err
	}

	if d.Borderless {
		th = theme.Borderless(th)
	}
	return th, nil
}

func (b *Border) resolve() (theme.Theme, error) {
	th, err := theme.FromBorder(b.toLipgloss())
	if err != nil {
		return theme.Theme{}, err
	}
	if b.InnerHorizontal == nil && b.InnerVertical == nil {
		return th, nil
	}

	h, v := th.InnerHorizontal, th.InnerVertical
	if b.InnerHorizontal != nil {
		if h, err = theme.ParseGlyph("inner-horizontal", *b.InnerHorizontal); err != nil {
			return theme.Theme{}, err
		}
	}
	if b.InnerVertical != nil {
		if v, err = theme.ParseGlyph("inner-vertical", *b.InnerVertical); err != nil {
			return theme.Theme{}, err
		}
	}

	th = th.WithInner(h, v)
	if err := theme.Validate(th); err != nil {
		return theme.Theme{}, err
	}
	return th, nil
}

func (b *Border) toLipgloss() lipgloss.Border {
	return lipgloss.Border{
		Top:          b.Top,
		Bottom:       b.Top,
		Left:         b.Left,
		Right:        b.Left,
		TopLeft:      b.TopLeft,
		TopRight:     b.TopRight,
		BottomLeft:   b.BottomLeft,
		BottomRight:  b.BottomRight,
		MiddleLeft:   b.MiddleLeft,
		MiddleRight:  b.MiddleRight,
		Middle:       b.Middle,
		MiddleTop:    b.MiddleTop,
		MiddleBottom: b.MiddleBottom,
	}
}
