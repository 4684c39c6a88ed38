package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/colfmt/colfmt"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

// table returns the CLI command that formats delimiter-separated text
// into an aligned table. Input is taken from the first argument (a
// file path or a literal string) or from stdin.
//
// Flag defaults match [colfmt.DefaultOptions]. When --profile is set,
// the profile supplies the defaults and explicit flags override it.
//
// Example usage:
//
//	# Align a space-separated report with one header row
//	ps aux | colfmt table
//
//	# Colon-separated input, two header rows, wrapped text cells
//	colfmt table --ifs : --header-count 2 --frame WRAP /etc/passwd
//
//	# Money columns: fixed decimals and thousands grouping
//	colfmt table --pad-decimal-digits --use-thousand-separator report.txt
func table() *cli.Command {
	return &cli.Command{
		Name:      "table",
		Usage:     "Align delimiter-separated text into columns",
		ArgsUsage: "[input]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "ifs",
				Aliases: []string{"i"},
				Usage:   "input field separator (literal, not a pattern)",
				Value:   " ",
			},
			&cli.StringFlag{
				Name:    "ofs",
				Aliases: []string{"o"},
				Usage:   "output field separator",
				Value:   " ",
			},
			&cli.IntFlag{
				Name:    "header-index",
				Aliases: []string{"r"},
				Usage:   "1-based row where headers start, 0 for no header",
				Value:   1,
			},
			&cli.IntFlag{
				Name:    "header-count",
				Aliases: []string{"c"},
				Usage:   "number of header rows",
				Value:   1,
			},
			&cli.IntFlag{
				Name:    "limit-row",
				Aliases: []string{"w"},
				Usage:   "1-based row holding per-column width limits, 0 for none",
			},
			&cli.BoolFlag{
				Name:    "no-divider",
				Aliases: []string{"n"},
				Usage:   "omit the divider line between headers and data",
			},
			&cli.StringFlag{
				Name:    "divider-char",
				Aliases: []string{"d"},
				Usage:   "character the divider line is made of",
				Value:   "-",
			},
			&cli.IntFlag{
				Name:    "max-cell-width",
				Aliases: []string{"m"},
				Usage:   "maximum display width of any cell, 0 for unlimited",
				Value:   48,
			},
			&cli.StringFlag{
				Name:    "frame",
				Aliases: []string{"f"},
				Usage:   "how over-width text cells are shortened: TRUNCATE, WRAP, or NONE",
				Value:   "TRUNCATE",
			},
			&cli.BoolFlag{
				Name:    "no-ellipsis",
				Aliases: []string{"e"},
				Usage:   "omit the \"...\" marker on truncated cells",
			},
			&cli.BoolFlag{
				Name:  "pad-decimal-digits",
				Usage: "pad numbers to a fixed number of decimal digits",
			},
			&cli.IntFlag{
				Name:  "max-decimal-digits",
				Usage: "decimal digits used when padding is on",
				Value: 2,
			},
			&cli.StringFlag{
				Name:  "decimal-separator",
				Usage: "decimal point character",
				Value: ".",
			},
			&cli.BoolFlag{
				Name:  "use-thousand-separator",
				Usage: "group integer digits in threes",
			},
			&cli.StringFlag{
				Name:  "thousand-separator",
				Usage: "thousands grouping character",
				Value: ",",
			},
			&cli.StringFlag{
				Name:    "alignment",
				Aliases: []string{"a"},
				Usage:   "cell alignment: AUTO, LEFT, RIGHT, or CENTER",
				Value:   "AUTO",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := buildOptions(cmd)
			if err != nil {
				return err
			}
			input, err := readInput(cmd.Args().First())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.Writer, colfmt.Format(input, opts))
			return nil
		},
	}
}

// buildOptions assembles the formatting options for a run: profile
// first (when --profile is set), then any explicitly set flags on top.
func buildOptions(cmd *cli.Command) (colfmt.Options, error) {
	opts := colfmt.DefaultOptions()

	if path := cmd.String("profile"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return opts, errors.Wrap(err, "open profile")
		}
		defer func() { _ = f.Close() }()
		if opts, err = colfmt.LoadProfile(f); err != nil {
			return opts, err
		}
	}

	if cmd.IsSet("ifs") {
		opts.IFS = cmd.String("ifs")
	}
	if cmd.IsSet("ofs") {
		opts.OFS = cmd.String("ofs")
	}
	if cmd.IsSet("header-index") {
		opts.HeaderIndex = int(cmd.Int("header-index"))
	}
	if cmd.IsSet("header-count") {
		opts.HeaderCount = int(cmd.Int("header-count"))
	}
	if cmd.IsSet("limit-row") {
		opts.ColumnLimitIndex = int(cmd.Int("limit-row"))
	}
	if cmd.IsSet("no-divider") {
		opts.NoDivider = cmd.Bool("no-divider")
	}
	if cmd.IsSet("max-cell-width") {
		opts.MaxCellWidth = int(cmd.Int("max-cell-width"))
	}
	if cmd.IsSet("no-ellipsis") {
		opts.NoEllipsis = cmd.Bool("no-ellipsis")
	}
	if cmd.IsSet("pad-decimal-digits") {
		opts.PadDecimalDigits = cmd.Bool("pad-decimal-digits")
	}
	if cmd.IsSet("max-decimal-digits") {
		opts.MaxDecimalDigits = int(cmd.Int("max-decimal-digits"))
	}
	if cmd.IsSet("use-thousand-separator") {
		opts.UseThousandSeparator = cmd.Bool("use-thousand-separator")
	}

	var err error
	if cmd.IsSet("divider-char") {
		if opts.DividerChar, err = flagRune(cmd, "divider-char"); err != nil {
			return opts, err
		}
	}
	if cmd.IsSet("decimal-separator") {
		if opts.DecimalSeparator, err = flagRune(cmd, "decimal-separator"); err != nil {
			return opts, err
		}
	}
	if cmd.IsSet("thousand-separator") {
		if opts.ThousandSeparator, err = flagRune(cmd, "thousand-separator"); err != nil {
			return opts, err
		}
	}
	if cmd.IsSet("frame") {
		if opts.Frame, err = colfmt.ParseFrame(cmd.String("frame")); err != nil {
			return opts, err
		}
	}
	if cmd.IsSet("alignment") {
		if opts.Alignment, err = colfmt.ParseAlignment(cmd.String("alignment")); err != nil {
			return opts, err
		}
	}

	return opts, nil
}

func flagRune(cmd *cli.Command, name string) (rune, error) {
	runes := []rune(cmd.String(name))
	if len(runes) != 1 {
		return 0, errors.Errorf("--%s must be a single character, got %q", name, cmd.String(name))
	}
	return runes[0], nil
}
