package cmds

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/telton/gridline/internal/version"
	"github.com/telton/gridline/ui"
)

var versionCmd = &cli.Command{
	Name:    "version",
	Usage:   "Show version information",
	Aliases: []string{"v"},
	Action: func(ctx context.Context, c *cli.Command) error {
		printVersion(c.Root().Writer)
		return nil
	},
}

func printVersion(w io.Writer) {
	fmt.Fprintln(w, ui.NewLabelValue("gridline", version.Get()).Render())
}
