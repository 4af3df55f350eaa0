package cmds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/telton/gridline/table"
	"github.com/telton/gridline/theme"
	"github.com/telton/gridline/ui"
)

var themesCmd = &cli.Command{
	Name:        "themes",
	Aliases:     []string{"ls"},
	Usage:       "list the available border themes",
	Description: `Themes prints every built-in border theme, optionally with a sample table drawn in each.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "The formatting style (text, json)",
			Value:   "text",
			Validator: func(s string) error {
				if s == "text" || s == "json" {
					return nil
				}
				return fmt.Errorf("unknown format value: %s", s)
			},
		},
		&cli.BoolFlag{
			Name:    "preview",
			Aliases: []string{"p"},
			Usage:   "Draw a sample table in every theme",
		},
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return listThemes(c.Root().Writer, c.String("format"), c.Bool("preview"))
	},
}

type themeEntry struct {
	Name   string            `json:"name"`
	Glyphs map[string]string `json:"glyphs"`
}

func listThemes(w io.Writer, format string, preview bool) error {
	names := theme.Names()

	if format == "json" {
		entries := make([]themeEntry, 0, len(names))
		for _, name := range names {
			th, err := theme.Lookup(name)
			if err != nil {
				return err
			}
			entries = append(entries, themeEntry{Name: name, Glyphs: th.Glyphs()})
		}

		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(entries); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
		return nil
	}

	renderer := ui.NewCatalogRenderer()
	fmt.Fprintln(w, renderer.RenderTitle())

	var sample *table.Table
	if preview {
		var err error
		sample, err = table.Make(
			[]table.Column{{Label: "theme"}, {Width: 6, Label: "glyphs"}},
			[][]string{{"a", "wrapped cell"}, {"b", "ok"}},
		)
		if err != nil {
			return fmt.Errorf("build sample: %w", err)
		}
	}

	entries := make([]string, 0, len(names))
	for _, name := range names {
		th, err := theme.Lookup(name)
		if err != nil {
			return err
		}
		if sample != nil {
			fmt.Fprintln(w, renderer.RenderPreview(name, sample.Render(th)))
			fmt.Fprintln(w)
			continue
		}
		entries = append(entries, renderer.RenderEntry(name, glyphSummary(th)))
	}
	if len(entries) > 0 {
		fmt.Fprintln(w, renderer.RenderEntries(entries))
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, renderer.RenderCount(len(names)))
	return nil
}

// glyphSummary lists the theme's corners, junctions and fills in reading order.
func glyphSummary(th theme.Theme) string {
	var b strings.Builder
	for _, r := range []rune{
		th.TopLeft, th.TopCenter, th.TopRight,
		th.MiddleLeft, th.MiddleCenter, th.MiddleRight,
		th.BottomLeft, th.BottomCenter, th.BottomRight,
		th.Horizontal, th.Vertical, th.InnerHorizontal, th.InnerVertical,
	} {
		if r == theme.Absent {
			b.WriteRune('·')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
