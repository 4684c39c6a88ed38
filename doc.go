// Package colfmt formats delimiter-separated text into aligned tabular
// output, in the spirit of the column(1) utility.
//
// The central entry point is [Format], which takes one UTF-8 text blob
// and an [Options] record and returns the rendered table. A run is a
// single pass: the input is cleaned and split into a grid on a literal
// separator, header rows and an optional column-width-limit row are
// sliced out, every data cell is formatted, column widths are resolved,
// and the table is rendered with headers, a divider, and the data rows.
//
// # Numbers
//
// Each data cell is tested for numericness by stripping the configured
// thousands character, normalizing the decimal character to ".", and
// parsing as a float64. Numeric cells are reformatted (at native
// precision, or zero-padded to a fixed digit count) with optional
// thousands grouping, and are never truncated or wrapped. A column
// whose data cells all parse as numbers is a numeric column and is
// right-aligned under automatic alignment.
//
// # Widths and framing
//
// All sizing uses terminal display width via go-runewidth, so
// double-width and zero-width code points count correctly. Over-width
// text cells are handled per the [Frame] mode:
//
//   - [FrameTruncate] — cut to the column width, "..." marks the cut
//   - [FrameWrap] — greedy word-wrap onto extra lines
//   - [FrameNone] — left unchanged
//
// Per-column width limits may come from a designated row in the input
// itself; entries that fail to parse, or parse as zero, fall back to
// the global maximum cell width.
//
// # Profiles
//
// [LoadProfile] reads an [Options] record from YAML, overriding only
// the keys the profile names.
//
// # Text helpers
//
// [Clean], [TruncateLines], [WrapLines], and [AlignLines] expose the
// line-oriented building blocks for use outside table rendering.
//
// Formatting is total: the package has no fallible operation on valid
// UTF-8 input. Unparsable column limits, ragged rows, and non-numeric
// cells all degrade to fallback formatting rather than errors. Reading
// input and rejecting binary data is the caller's job; see cmd/colfmt
// for the CLI wrapper.
package colfmt
