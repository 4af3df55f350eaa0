package cmds

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/telton/gridline/internal/logger"
)

var rootCmd = &cli.Command{
	Name:  "gridline",
	Usage: "draw bordered tables in the terminal",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level (debug, info, warn, error)",
			Value:   "warn",
			Sources: cli.EnvVars("GRIDLINE_LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "Log format (text, json)",
			Value:   "text",
			Sources: cli.EnvVars("GRIDLINE_LOG_FORMAT"),
		},
	},
	Before: setupLogging,
	Commands: []*cli.Command{
		renderCmd,
		themesCmd,
		versionCmd,
	},
}

func setupLogging(ctx context.Context, c *cli.Command) (context.Context, error) {
	level, err := logger.ParseLevel(c.String("log-level"))
	if err != nil {
		return ctx, fmt.Errorf("log-level: %w", err)
	}
	format, err := logger.ParseFormat(c.String("log-format"))
	if err != nil {
		return ctx, fmt.Errorf("log-format: %w", err)
	}

	logger.Setup(&logger.Config{
		Level:  level,
		Format: format,
		Output: c.Root().ErrWriter,
	})
	return ctx, nil
}

// Execute runs the gridline command line with the given arguments.
func Execute(ctx context.Context, args []string) error {
	return rootCmd.Run(ctx, args)
}
