package cmds

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/telton/gridline/document"
	"github.com/telton/gridline/internal/logger"
	"github.com/telton/gridline/table"
	"github.com/telton/gridline/theme"
)

var renderCmd = &cli.Command{
	Name:      "render",
	Aliases:   []string{"r"},
	Usage:     "draw a table from a YAML document or from inline values",
	ArgsUsage: "[header... value...]",
	Description: `Render draws a bordered table on stdout.

The table comes either from a YAML document (--file) or from the positional
arguments: the first --columns values are the headers and the rest are
cells in row-major order.

Cells longer than their column are wrapped by character count and padded
with spaces so every row forms a rectangle.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "YAML table document to render",
		},
		&cli.IntFlag{
			Name:    "columns",
			Aliases: []string{"c"},
			Usage:   "Number of columns for inline values",
			Value:   1,
		},
		&cli.IntSliceFlag{
			Name:    "widths",
			Aliases: []string{"w"},
			Usage:   "Column widths for inline values (one per column)",
		},
		&cli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Border theme name, as listed by the themes command",
			Value:   theme.Default,
			Sources: cli.EnvVars("GRIDLINE_THEME"),
		},
		&cli.BoolFlag{
			Name:  "borderless",
			Usage: "Drop the outer frame, keeping inner dividers",
		},
		&cli.BoolFlag{
			Name:    "number",
			Aliases: []string{"n"},
			Usage:   "Prepend a row index column",
		},
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		cfg := renderConfig{
			File:       c.String("file"),
			Values:     c.Args().Slice(),
			Columns:    c.Int("columns"),
			Widths:     c.IntSlice("widths"),
			Theme:      c.String("theme"),
			ThemeSet:   c.IsSet("theme"),
			Borderless: c.Bool("borderless"),
			Number:     c.Bool("number"),
		}
		return renderTable(c.Root().Writer, cfg)
	},
}

// renderConfig holds the options of a render invocation.
type renderConfig struct {
	File       string
	Values     []string
	Columns    int
	Widths     []int
	Theme      string
	ThemeSet   bool
	Borderless bool
	Number     bool
}

// renderTable builds the requested table and draws it to w.
func renderTable(w io.Writer, cfg renderConfig) error {
	tbl, th, err := buildTable(cfg)
	if err != nil {
		logger.Error("Failed to build table", "file", cfg.File, "error", err)
		return err
	}

	if err := tbl.Draw(w, th); err != nil {
		logger.Error("Failed to draw table", "error", err)
		return err
	}

	logger.Info("Drew table", "columns", len(tbl.Widths()), "rows", len(tbl.Rows()))
	return nil
}

func buildTable(cfg renderConfig) (*table.Table, theme.Theme, error) {
	if cfg.File != "" {
		if len(cfg.Values) > 0 {
			return nil, theme.Theme{}, errors.New("use either --file or inline values, not both")
		}
		return buildFromDocument(cfg)
	}

	logger.Debug("Building table from inline values", "values", len(cfg.Values), "columns", cfg.Columns)

	var widths []int
	if len(cfg.Widths) > 0 {
		widths = cfg.Widths
	}
	tbl, err := table.FromFlat(cfg.Values, cfg.Columns, widths)
	if err != nil {
		return nil, theme.Theme{}, fmt.Errorf("build table: %w", err)
	}
	if cfg.Number {
		if err := tbl.Number(); err != nil {
			return nil, theme.Theme{}, fmt.Errorf("number rows: %w", err)
		}
	}

	th, err := theme.Lookup(cfg.Theme)
	if err != nil {
		return nil, theme.Theme{}, err
	}
	if cfg.Borderless {
		th = theme.Borderless(th)
	}
	return tbl, th, nil
}

func buildFromDocument(cfg renderConfig) (*table.Table, theme.Theme, error) {
	logger.Debug("Loading table document", "file", cfg.File)

	doc, err := document.Parse(cfg.File)
	if err != nil {
		return nil, theme.Theme{}, err
	}

	// flags given explicitly win over the document
	if cfg.ThemeSet {
		if doc.Theme != "" || doc.Border != nil {
			logger.Warn("Theme flag overrides the document's theme", "file", cfg.File, "theme", cfg.Theme)
		}
		doc.Theme = cfg.Theme
		doc.Border = nil
	}
	doc.Borderless = doc.Borderless || cfg.Borderless
	doc.Number = doc.Number || cfg.Number

	tbl, err := doc.Table()
	if err != nil {
		return nil, theme.Theme{}, fmt.Errorf("build table from %s: %w", cfg.File, err)
	}
	th, err := doc.ResolveTheme()
	if err != nil {
		return nil, theme.Theme{}, fmt.Errorf("theme in %s: %w", cfg.File, err)
	}
	return tbl, th, nil
}
