package cmd

import (
	"context"
	"fmt"

	"github.com/colfmt/colfmt"
	"github.com/urfave/cli/v3"
)

// clean returns the CLI command that trims lines and drops blank ones.
func clean() *cli.Command {
	return &cli.Command{
		Name:      "clean",
		Usage:     "Trim every line and remove blank lines",
		ArgsUsage: "[input]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			input, err := readInput(cmd.Args().First())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.Writer, colfmt.Clean(input))
			return nil
		},
	}
}

// truncate returns the CLI command that shortens each line to a width.
func truncate() *cli.Command {
	return &cli.Command{
		Name:      "truncate",
		Usage:     "Truncate each line to a display width",
		ArgsUsage: "[input]",
		Flags: []cli.Flag{
			widthFlag(),
			&cli.BoolFlag{
				Name:    "no-ellipsis",
				Aliases: []string{"e"},
				Usage:   "omit the \"...\" marker on truncated lines",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			input, err := readInput(cmd.Args().First())
			if err != nil {
				return err
			}
			out := colfmt.TruncateLines(input, int(cmd.Int("width")), !cmd.Bool("no-ellipsis"))
			fmt.Fprintln(cmd.Writer, out)
			return nil
		},
	}
}

// wrap returns the CLI command that word-wraps each line to a width.
func wrap() *cli.Command {
	return &cli.Command{
		Name:      "wrap",
		Usage:     "Word-wrap each line to a display width",
		ArgsUsage: "[input]",
		Flags:     []cli.Flag{widthFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			input, err := readInput(cmd.Args().First())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.Writer, colfmt.WrapLines(input, int(cmd.Int("width"))))
			return nil
		},
	}
}

// alignText returns the CLI command that aligns lines within a width.
func alignText() *cli.Command {
	return &cli.Command{
		Name:      "align",
		Usage:     "Align each line within a display width",
		ArgsUsage: "[input]",
		Flags: []cli.Flag{
			widthFlag(),
			&cli.StringFlag{
				Name:    "alignment",
				Aliases: []string{"a"},
				Usage:   "LEFT, RIGHT, or CENTER",
				Value:   "LEFT",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			align, err := colfmt.ParseAlignment(cmd.String("alignment"))
			if err != nil {
				return err
			}
			input, err := readInput(cmd.Args().First())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.Writer, colfmt.AlignLines(input, int(cmd.Int("width")), align))
			return nil
		},
	}
}

func widthFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "width",
		Aliases: []string{"w"},
		Usage:   "target display width, 0 to leave lines unchanged",
	}
}
