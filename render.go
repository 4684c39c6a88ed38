package colfmt

import (
	"strings"
)

// render assembles the final table: header rows, a divider unless
// suppressed, then data rows. Cells are joined by the output separator,
// rows shorter than the column count render missing cells as empty, and
// every physical line is right-trimmed.
func render(b blocks, data [][]cell, lay layout, opts Options) string {
	var sb strings.Builder

	for _, row := range b.headers {
		writeRow(&sb, headerCells(row, lay, opts), lay, opts)
	}

	if !opts.NoDivider {
		parts := make([]string, len(lay.widths))
		for i, w := range lay.widths {
			parts[i] = strings.Repeat(string(opts.DividerChar), w)
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, opts.OFS), " \t"))
		sb.WriteString("\n")
	}

	for _, row := range data {
		writeRow(&sb, row, lay, opts)
	}

	return strings.TrimRight(sb.String(), " \t\n")
}

// headerCells frames raw header strings to the resolved column widths.
// Headers follow the table's frame mode: truncated under TRUNCATE,
// wrapped independently under WRAP, untouched under NONE.
func headerCells(row []string, lay layout, opts Options) []cell {
	cells := make([]cell, len(row))
	for i, h := range row {
		if i >= len(lay.widths) {
			break
		}
		var lines []string
		switch opts.Frame {
		case FrameWrap:
			lines = wrapCell(h, lay.widths[i])
		case FrameNone:
			lines = []string{h}
		default:
			lines = []string{truncateCell(h, lay.widths[i], !opts.NoEllipsis)}
		}
		cells[i] = cell{lines: lines}
	}
	return cells
}

// writeRow renders one logical row as one or more physical lines. Under
// WRAP a row spans as many lines as its tallest cell; other frames
// always produce a single line.
func writeRow(sb *strings.Builder, row []cell, lay layout, opts Options) {
	height := 1
	for _, c := range row {
		if len(c.lines) > height {
			height = len(c.lines)
		}
	}

	for line := 0; line < height; line++ {
		parts := make([]string, len(lay.widths))
		for i, w := range lay.widths {
			text := ""
			if i < len(row) && line < len(row[i].lines) {
				text = row[i].lines[line]
			}
			parts[i] = alignCell(text, w, columnAlign(lay, i, opts))
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, opts.OFS), " \t"))
		sb.WriteString("\n")
	}
}

// columnAlign resolves the effective alignment for a column: AUTO
// right-aligns numeric columns and left-aligns the rest.
func columnAlign(lay layout, col int, opts Options) Alignment {
	if opts.Alignment != AlignAuto {
		return opts.Alignment
	}
	if col < len(lay.numeric) && lay.numeric[col] {
		return AlignRight
	}
	return AlignLeft
}
