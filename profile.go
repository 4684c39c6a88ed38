package colfmt

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// profileDoc is the YAML shape of a saved formatting profile. Pointer
// fields distinguish "absent" from zero so a profile only overrides
// what it names; separator characters and enums are strings in YAML.
type profileDoc struct {
	IFS                  *string `yaml:"ifs"`
	OFS                  *string `yaml:"ofs"`
	HeaderIndex          *int    `yaml:"header_index"`
	HeaderCount          *int    `yaml:"header_count"`
	ColumnLimitIndex     *int    `yaml:"column_limit_index"`
	NoDivider            *bool   `yaml:"no_divider"`
	DividerChar          *string `yaml:"divider_char"`
	MaxCellWidth         *int    `yaml:"max_cell_width"`
	Frame                *string `yaml:"frame"`
	NoEllipsis           *bool   `yaml:"no_ellipsis"`
	PadDecimalDigits     *bool   `yaml:"pad_decimal_digits"`
	MaxDecimalDigits     *int    `yaml:"max_decimal_digits"`
	DecimalSeparator     *string `yaml:"decimal_separator"`
	UseThousandSeparator *bool   `yaml:"use_thousand_separator"`
	ThousandSeparator    *string `yaml:"thousand_separator"`
	Alignment            *string `yaml:"alignment"`
}

// LoadProfile reads a YAML formatting profile and returns the resulting
// Options, starting from [DefaultOptions] and overriding only the keys
// the profile sets.
func LoadProfile(r io.Reader) (Options, error) {
	opts := DefaultOptions()

	var doc profileDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return opts, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	if doc.IFS != nil {
		opts.IFS = *doc.IFS
	}
	if doc.OFS != nil {
		opts.OFS = *doc.OFS
	}
	if doc.HeaderIndex != nil {
		opts.HeaderIndex = *doc.HeaderIndex
	}
	if doc.HeaderCount != nil {
		opts.HeaderCount = *doc.HeaderCount
	}
	if doc.ColumnLimitIndex != nil {
		opts.ColumnLimitIndex = *doc.ColumnLimitIndex
	}
	if doc.NoDivider != nil {
		opts.NoDivider = *doc.NoDivider
	}
	if doc.MaxCellWidth != nil {
		opts.MaxCellWidth = *doc.MaxCellWidth
	}
	if doc.NoEllipsis != nil {
		opts.NoEllipsis = *doc.NoEllipsis
	}
	if doc.PadDecimalDigits != nil {
		opts.PadDecimalDigits = *doc.PadDecimalDigits
	}
	if doc.MaxDecimalDigits != nil {
		opts.MaxDecimalDigits = *doc.MaxDecimalDigits
	}
	if doc.UseThousandSeparator != nil {
		opts.UseThousandSeparator = *doc.UseThousandSeparator
	}

	if doc.DividerChar != nil {
		r, err := singleRune("divider_char", *doc.DividerChar)
		if err != nil {
			return opts, err
		}
		opts.DividerChar = r
	}
	if doc.DecimalSeparator != nil {
		r, err := singleRune("decimal_separator", *doc.DecimalSeparator)
		if err != nil {
			return opts, err
		}
		opts.DecimalSeparator = r
	}
	if doc.ThousandSeparator != nil {
		r, err := singleRune("thousand_separator", *doc.ThousandSeparator)
		if err != nil {
			return opts, err
		}
		opts.ThousandSeparator = r
	}

	if doc.Frame != nil {
		f, err := ParseFrame(*doc.Frame)
		if err != nil {
			return opts, err
		}
		opts.Frame = f
	}
	if doc.Alignment != nil {
		a, err := ParseAlignment(*doc.Alignment)
		if err != nil {
			return opts, err
		}
		opts.Alignment = a
	}

	return opts, nil
}

func singleRune(key, s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalidProfile, key, s)
	}
	return runes[0], nil
}
