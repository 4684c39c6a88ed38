package colfmt

import (
	"strconv"
	"strings"
)

// grid is the raw parse of the input: ordered rows of trimmed fields.
// Short rows stay short; cols is the widest row's field count.
type grid struct {
	rows [][]string
	cols int
}

// parseGrid splits cleaned input into rows and fields. The separator is
// literal, not a pattern. Parsing never fails; empty input yields an
// empty grid.
func parseGrid(input, ifs string) grid {
	cleaned := Clean(input)
	if cleaned == "" {
		return grid{}
	}
	var g grid
	for _, line := range strings.Split(cleaned, "\n") {
		fields := strings.Split(line, ifs)
		for i, f := range fields {
			fields[i] = strings.TrimSpace(f)
		}
		if len(fields) > g.cols {
			g.cols = len(fields)
		}
		g.rows = append(g.rows, fields)
	}
	return g
}

// blocks is the classified grid: header rows, data rows, and the
// per-column width limits, each already clamped to the global max cell
// width. A limit of 0 means unlimited.
type blocks struct {
	headers [][]string
	data    [][]string
	limits  []int
}

// classify slices header rows and the optional column-limit row out of
// the grid, leaving data rows in their original order. When the limit
// row index falls inside the header range, the header range wins and
// the limit row is disabled.
func classify(g grid, opts Options) blocks {
	headerStart, headerEnd := -1, -1
	if opts.HeaderIndex > 0 {
		headerStart = opts.HeaderIndex - 1
		headerEnd = headerStart + opts.HeaderCount
	}

	limitIdx := -1
	if opts.ColumnLimitIndex > 0 {
		limitIdx = opts.ColumnLimitIndex - 1
		if headerStart <= limitIdx && limitIdx < headerEnd {
			limitIdx = -1
		}
	}

	b := blocks{limits: columnLimits(g, limitIdx, opts.MaxCellWidth)}
	for i, row := range g.rows {
		switch {
		case headerStart <= i && i < headerEnd:
			b.headers = append(b.headers, row)
		case i == limitIdx:
			// consumed as the limit row
		default:
			b.data = append(b.data, row)
		}
	}
	return b
}

// columnLimits parses the limit row into per-column width caps.
// Unparsable or zero entries fall back to the global max width, and
// every entry is clamped to it.
func columnLimits(g grid, limitIdx, maxCellWidth int) []int {
	limits := make([]int, g.cols)
	for i := range limits {
		limits[i] = maxCellWidth
	}
	if limitIdx < 0 || limitIdx >= len(g.rows) {
		return limits
	}
	for i, field := range g.rows[limitIdx] {
		if i >= g.cols {
			break
		}
		v, err := strconv.Atoi(field)
		if err != nil || v <= 0 {
			continue
		}
		if maxCellWidth > 0 && v > maxCellWidth {
			v = maxCellWidth
		}
		limits[i] = v
	}
	return limits
}
