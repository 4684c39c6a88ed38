package colfmt_test

import (
	"strings"
	"testing"

	"github.com/colfmt/colfmt"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEndToEnd(t *testing.T) {
	t.Parallel()
	opts := colfmt.DefaultOptions()
	opts.PadDecimalDigits = true

	got := colfmt.Format("Name Price\nWidget 9.5\nGadget 12", opts)
	want := strings.Join([]string{
		"Name   Price",
		"------ -----",
		"Widget  9.50",
		"Gadget 12.00",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormatEmptyInput(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", colfmt.Format("", colfmt.DefaultOptions()))
	assert.Equal(t, "", colfmt.Format("\n  \n\n", colfmt.DefaultOptions()))
}

func TestFormatZeroOptions(t *testing.T) {
	t.Parallel()
	// The zero Options record is normalized rather than misbehaving.
	got := colfmt.Format("a b\n1 2", colfmt.Options{NoDivider: true})
	assert.Equal(t, "a b\n1 2", got)
}

func TestFormatNoDivider(t *testing.T) {
	t.Parallel()
	opts := colfmt.DefaultOptions()
	opts.NoDivider = true

	got := colfmt.Format("H V\nx 1", opts)
	assert.Equal(t, "H V\nx 1", got)
}

func TestFormatCustomSeparatorsAndDivider(t *testing.T) {
	t.Parallel()
	opts := colfmt.DefaultOptions()
	opts.IFS = ":"
	opts.OFS = " | "
	opts.DividerChar = '='

	got := colfmt.Format("name:qty\napple:3", opts)
	want := strings.Join([]string{
		"name  | qty",
		"===== | ===",
		"apple |   3",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormatRaggedRows(t *testing.T) {
	t.Parallel()
	opts := colfmt.DefaultOptions()
	opts.HeaderIndex = 0
	opts.NoDivider = true

	got := colfmt.Format("aa bb cc\ndd\nee ff", opts)
	// Missing trailing cells render empty and the padding is trimmed.
	assert.Equal(t, "aa bb cc\ndd\nee ff", got)
}

func TestFormatNumericColumnAlignment(t *testing.T) {
	t.Parallel()
	opts := colfmt.DefaultOptions()
	opts.NoDivider = true

	got := colfmt.Format("Item Count\nApples 10\nPears 7", opts)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	// Count column is numeric: right-aligned under AUTO.
	assert.Equal(t, "Apples    10", lines[1])
	assert.Equal(t, "Pears      7", lines[2])
}

func TestFormatNumericMonotonicity(t *testing.T) {
	t.Parallel()
	opts := colfmt.DefaultOptions()
	opts.NoDivider = true

	// One non-numeric cell makes the whole column textual, so every
	// value in it is left-aligned.
	got := colfmt.Format("Val Note\n100 ok\nn/a ok\n200 ok", opts)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "100 ok", lines[1])
	assert.Equal(t, "n/a ok", lines[2])
	assert.Equal(t, "200 ok", lines[3])
}

func TestFormatThousandsRoundTrip(t *testing.T) {
	t.Parallel()
	opts := colfmt.DefaultOptions()
	opts.HeaderIndex = 0
	opts.NoDivider = true
	opts.UseThousandSeparator = true
	opts.PadDecimalDigits = true

	assert.Equal(t, "1,234.50", colfmt.Format("1234.5", opts))
}

func TestFormatAlignmentCenter(t *testing.T) {
	t.Parallel()
	opts := colfmt.DefaultOptions()
	opts.HeaderIndex = 0
	opts.NoDivider = true
	opts.Alignment = colfmt.AlignCenter

	got := colfmt.Format("abcde x\nab y", opts)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "abcde x", lines[0])
	// Width 5 with 3 spare: one left, two right, then trailing trim.
	assert.Equal(t, " ab   y", lines[1])
}

func TestFormatAlignmentRightForced(t *testing.T) {
	t.Parallel()
	opts := colfmt.DefaultOptions()
	opts.HeaderIndex = 0
	opts.NoDivider = true
	opts.Alignment = colfmt.AlignRight

	got := colfmt.Format("abcde x\nab y", opts)
	lines := strings.Split(got, "\n")
	assert.Equal(t, "   ab y", lines[1])
}

func TestFormatTruncatesToLimitRow(t *testing.T) {
	t.Parallel()
	opts := colfmt.DefaultOptions()
	opts.ColumnLimitIndex = 2

	got := colfmt.Format("Name Desc\n5 5\nWidget VeryLongDescription", opts)
	want := strings.Join([]string{
		"Name  Desc",
		"----- -----",
		"Wi... Ve...",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormatWrapScenario(t *testing.T) {
	t.Parallel()
	opts := colfmt.DefaultOptions()
	opts.HeaderIndex = 0
	opts.NoDivider = true
	opts.Frame = colfmt.FrameWrap
	opts.MaxCellWidth = 10

	got := colfmt.Format(strings.Repeat("x", 50), opts)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.LessOrEqual(t, runewidth.StringWidth(line), 10)
	}
}

func TestFormatWrapBreaksOnWhitespace(t *testing.T) {
	t.Parallel()
	opts := colfmt.DefaultOptions()
	opts.HeaderIndex = 0
	opts.NoDivider = true
	opts.Frame = colfmt.FrameWrap
	opts.MaxCellWidth = 12
	opts.IFS = "|"

	got := colfmt.Format("the quick brown fox|9", opts)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	// The numeric cell rides on the first physical line.
	assert.Equal(t, "the quick 9", lines[0])
	assert.Equal(t, "brown fox", lines[1])
}

func TestFormatWrapHeaderFollowsDataWidth(t *testing.T) {
	t.Parallel()
	opts := colfmt.DefaultOptions()
	opts.Frame = colfmt.FrameWrap

	got := colfmt.Format("Long Header Here|v\nshort|1", withIFS(opts, "|"))
	// Column width follows the data (5), so the header wraps onto
	// multiple physical lines, mid-word where a word exceeds it.
	want := strings.Join([]string{
		"Long  v",
		"Heade",
		"r",
		"Here",
		"----- -",
		"short 1",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormatFrameNoneLeavesTextAlone(t *testing.T) {
	t.Parallel()
	opts := colfmt.DefaultOptions()
	opts.HeaderIndex = 0
	opts.NoDivider = true
	opts.Frame = colfmt.FrameNone
	opts.MaxCellWidth = 4

	got := colfmt.Format("averylongvalue", opts)
	assert.Equal(t, "averylongvalue", got)
}

func TestFormatWidthInvariant(t *testing.T) {
	t.Parallel()
	opts := colfmt.DefaultOptions()
	opts.MaxCellWidth = 8

	got := colfmt.Format("Head1 Head2\nsomeverylongvalue 12\nshort thisoneislongtoo", opts)
	for _, line := range strings.Split(got, "\n") {
		// Two columns of at most 8 plus one separator.
		assert.LessOrEqual(t, runewidth.StringWidth(line), 17)
	}
}

func TestFormatUnicodeWidths(t *testing.T) {
	t.Parallel()
	opts := colfmt.DefaultOptions()

	got := colfmt.Format("名前 値\n日本語 1\nab 2", opts)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)
	// Column width is 6 display columns ("日本語"), not 3 runes.
	assert.Equal(t, "------ --", lines[1])
	assert.True(t, strings.HasSuffix(lines[2], " 1"))
	assert.True(t, strings.HasSuffix(lines[3], " 2"))
}

func TestFormatMultipleHeaderRows(t *testing.T) {
	t.Parallel()
	opts := colfmt.DefaultOptions()
	opts.HeaderCount = 2

	got := colfmt.Format("Name Price\nof item\nWidget 9", opts)
	want := strings.Join([]string{
		"Name   Price",
		"of      item",
		"------ -----",
		"Widget     9",
	}, "\n")
	assert.Equal(t, want, got)
}

// --- text helpers ---

func TestCleanIdempotent(t *testing.T) {
	t.Parallel()
	in := "  a  \n\n b\n"
	once := colfmt.Clean(in)
	assert.Equal(t, "a\nb", once)
	assert.Equal(t, once, colfmt.Clean(once))
}

func TestTruncateLines(t *testing.T) {
	t.Parallel()
	got := colfmt.TruncateLines("Hello World\nhi", 5, true)
	assert.Equal(t, "He...\nhi", got)
}

func TestWrapLines(t *testing.T) {
	t.Parallel()
	got := colfmt.WrapLines("Hello World", 5)
	assert.Equal(t, "Hello\nWorld", got)
}

func TestAlignLinesRight(t *testing.T) {
	t.Parallel()
	got := colfmt.AlignLines("ab\nabcd", 4, colfmt.AlignRight)
	assert.Equal(t, "  ab\nabcd", got)
}

func TestAlignLinesWidthRaisedToWidestLine(t *testing.T) {
	t.Parallel()
	got := colfmt.AlignLines("ab\nabcdef", 2, colfmt.AlignRight)
	assert.Equal(t, "    ab\nabcdef", got)
}

func TestAlignLinesCenterTrimmed(t *testing.T) {
	t.Parallel()
	got := colfmt.AlignLines("ab", 6, colfmt.AlignCenter)
	assert.Equal(t, "  ab", got)
}

// --- enums ---

func TestParseFrame(t *testing.T) {
	t.Parallel()
	f, err := colfmt.ParseFrame("wrap")
	require.NoError(t, err)
	assert.Equal(t, colfmt.FrameWrap, f)

	_, err = colfmt.ParseFrame("bogus")
	assert.ErrorIs(t, err, colfmt.ErrUnknownFrame)
}

func TestParseAlignment(t *testing.T) {
	t.Parallel()
	a, err := colfmt.ParseAlignment("Center")
	require.NoError(t, err)
	assert.Equal(t, colfmt.AlignCenter, a)

	_, err = colfmt.ParseAlignment("sideways")
	assert.ErrorIs(t, err, colfmt.ErrUnknownAlignment)
}

func TestEnumStrings(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "TRUNCATE", colfmt.FrameTruncate.String())
	assert.Equal(t, "WRAP", colfmt.FrameWrap.String())
	assert.Equal(t, "AUTO", colfmt.AlignAuto.String())
	assert.Equal(t, "CENTER", colfmt.AlignCenter.String())
}

// --- profiles ---

func TestLoadProfileOverridesOnlyNamedKeys(t *testing.T) {
	t.Parallel()
	doc := strings.Join([]string{
		"ifs: ':'",
		"frame: WRAP",
		"max_cell_width: 12",
		"use_thousand_separator: true",
		"thousand_separator: ' '",
	}, "\n")

	opts, err := colfmt.LoadProfile(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, ":", opts.IFS)
	assert.Equal(t, colfmt.FrameWrap, opts.Frame)
	assert.Equal(t, 12, opts.MaxCellWidth)
	assert.True(t, opts.UseThousandSeparator)
	assert.Equal(t, ' ', opts.ThousandSeparator)
	// Untouched keys keep their defaults.
	assert.Equal(t, " ", opts.OFS)
	assert.Equal(t, 1, opts.HeaderIndex)
	assert.Equal(t, '-', opts.DividerChar)
}

func TestLoadProfileEmpty(t *testing.T) {
	t.Parallel()
	opts, err := colfmt.LoadProfile(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, colfmt.DefaultOptions(), opts)
}

func TestLoadProfileBadYAML(t *testing.T) {
	t.Parallel()
	_, err := colfmt.LoadProfile(strings.NewReader("{nope"))
	assert.ErrorIs(t, err, colfmt.ErrInvalidProfile)
}

func TestLoadProfileBadFrame(t *testing.T) {
	t.Parallel()
	_, err := colfmt.LoadProfile(strings.NewReader("frame: SHRED"))
	assert.ErrorIs(t, err, colfmt.ErrUnknownFrame)
}

func TestLoadProfileMultiCharSeparator(t *testing.T) {
	t.Parallel()
	_, err := colfmt.LoadProfile(strings.NewReader("divider_char: '--'"))
	assert.ErrorIs(t, err, colfmt.ErrInvalidProfile)
}

func withIFS(opts colfmt.Options, ifs string) colfmt.Options {
	opts.IFS = ifs
	return opts
}
