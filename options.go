package colfmt

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownFrame     = errors.New("unknown frame mode")
	ErrUnknownAlignment = errors.New("unknown alignment mode")
	ErrInvalidProfile   = errors.New("invalid profile")
)

// Frame is the policy for text cells that exceed their column width.
type Frame int

const (
	FrameTruncate Frame = iota // Cut over-width text, optionally with "..."
	FrameWrap                  // Break over-width text onto extra lines
	FrameNone                  // Leave text unchanged
)

// String returns the frame name.
func (f Frame) String() string {
	switch f {
	case FrameWrap:
		return "WRAP"
	case FrameNone:
		return "NONE"
	default:
		return "TRUNCATE"
	}
}

// ParseFrame parses a frame mode string. Matching is case-insensitive.
func ParseFrame(s string) (Frame, error) {
	switch strings.ToUpper(s) {
	case "TRUNCATE":
		return FrameTruncate, nil
	case "WRAP":
		return FrameWrap, nil
	case "NONE":
		return FrameNone, nil
	default:
		return FrameTruncate, fmt.Errorf("%w: %q", ErrUnknownFrame, s)
	}
}

// Alignment controls cell text alignment within a column.
type Alignment int

const (
	AlignAuto   Alignment = iota // Right for numeric columns, left otherwise
	AlignLeft
	AlignRight
	AlignCenter
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "LEFT"
	case AlignRight:
		return "RIGHT"
	case AlignCenter:
		return "CENTER"
	default:
		return "AUTO"
	}
}

// ParseAlignment parses an alignment mode string. Matching is
// case-insensitive.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToUpper(s) {
	case "AUTO":
		return AlignAuto, nil
	case "LEFT":
		return AlignLeft, nil
	case "RIGHT":
		return AlignRight, nil
	case "CENTER":
		return AlignCenter, nil
	default:
		return AlignAuto, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
	}
}

// Options configures a single formatting run of [Format].
//
// The zero value is usable: [Format] normalizes empty separators to a
// single space and zero separator characters to their defaults. Use
// [DefaultOptions] for the standard table configuration.
type Options struct {
	// IFS is the literal input field separator.
	IFS string
	// OFS is the output separator placed between rendered columns.
	OFS string

	// HeaderIndex is the 1-based row where headers start; 0 disables
	// headers.
	HeaderIndex int
	// HeaderCount is the number of header rows, effective only when
	// HeaderIndex > 0.
	HeaderCount int
	// ColumnLimitIndex is the 1-based row holding per-column width
	// limits; 0 disables it. The row is excluded from the data. When
	// the index falls inside the header range, headers win and the
	// limit row is ignored.
	ColumnLimitIndex int

	// NoDivider suppresses the divider row between headers and data.
	NoDivider bool
	// DividerChar is repeated to the column width to form the divider.
	DividerChar rune

	// MaxCellWidth caps the display width of any cell; 0 or negative
	// means unlimited.
	MaxCellWidth int
	// Frame selects how over-width text cells are shortened.
	Frame Frame
	// NoEllipsis disables the "..." marker on truncated cells.
	NoEllipsis bool

	// PadDecimalDigits formats numbers with exactly MaxDecimalDigits
	// fractional digits, zero-padded.
	PadDecimalDigits bool
	// MaxDecimalDigits is the fixed fractional digit count used when
	// PadDecimalDigits is set.
	MaxDecimalDigits int
	// DecimalSeparator is the character rendered between the integer
	// and fractional parts of numbers.
	DecimalSeparator rune
	// UseThousandSeparator groups integer digits in threes.
	UseThousandSeparator bool
	// ThousandSeparator is the grouping character.
	ThousandSeparator rune

	// Alignment controls cell alignment; AUTO right-aligns numeric
	// columns and left-aligns the rest.
	Alignment Alignment
}

// DefaultOptions returns the standard table configuration: space
// separators, one header row at row 1, a "-" divider, 48-column cell
// cap, truncation with ellipsis, "." decimal point, "," thousands
// grouping character (grouping off), automatic alignment.
func DefaultOptions() Options {
	return Options{
		IFS:               " ",
		OFS:               " ",
		HeaderIndex:       1,
		HeaderCount:       1,
		DividerChar:       '-',
		MaxCellWidth:      48,
		Frame:             FrameTruncate,
		MaxDecimalDigits:  2,
		DecimalSeparator:  '.',
		ThousandSeparator: ',',
		Alignment:         AlignAuto,
	}
}

// normalized fills unusable zero values so a zero Options still
// produces sensible output.
func (o Options) normalized() Options {
	if o.IFS == "" {
		o.IFS = " "
	}
	if o.OFS == "" {
		o.OFS = " "
	}
	if o.DividerChar == 0 {
		o.DividerChar = '-'
	}
	if o.DecimalSeparator == 0 {
		o.DecimalSeparator = '.'
	}
	if o.ThousandSeparator == 0 {
		o.ThousandSeparator = ','
	}
	if o.HeaderIndex > 0 && o.HeaderCount < 1 {
		o.HeaderCount = 1
	}
	if o.MaxCellWidth < 0 {
		o.MaxCellWidth = 0
	}
	return o
}
