package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
)

// Run creates and executes the colfmt CLI with the given version and
// command-line arguments.
//
// The application is a thin wrapper around the colfmt package: it
// acquires the input text (argument, file, or stdin with bounded
// retry), rejects binary input before the core ever sees it, and
// writes the result to the command writer. Formatting itself never
// fails; every error surfaced here is an input or configuration error.
//
// Global Flags:
//   - --profile, -p: YAML profile with saved table options
func Run(ctx context.Context, version string, args []string) error {
	app := &cli.Command{
		Name:    "colfmt",
		Usage:   "Format delimiter-separated text into aligned tables",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "YAML profile with saved table options",
				Sources: cli.EnvVars("COLFMT_PROFILE"),
			},
		},
		Commands: []*cli.Command{
			table(),
			clean(),
			truncate(),
			wrap(),
			alignText(),
		},
	}

	return app.Run(ctx, args)
}
