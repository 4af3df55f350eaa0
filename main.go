package main

import (
	"context"
	"fmt"
	"os"

	"github.com/telton/gridline/cmds"
	"github.com/telton/gridline/ui"
)

func main() {
	if err := cmds.Execute(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, ui.NewStatus("error", err.Error()).WithIcon("✗").Render())
		os.Exit(1)
	}
}
