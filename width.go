package colfmt

import (
	"github.com/mattn/go-runewidth"
)

// layout is the resolved shape of one table: final per-column display
// widths and the numeric-column vector.
type layout struct {
	widths  []int
	numeric []bool
}

// resolveLayout aggregates per-column widths from header and formatted
// data cells, each clamped to the column's limit, and AND-reduces the
// numeric flags across data cells.
//
// For TRUNCATE and NONE frames the final width is the larger of the
// header and data widths, so neither gets clipped by the other. For
// WRAP the width follows the data alone; headers wrap to it at render
// time.
func resolveLayout(b blocks, data [][]cell, cols int, opts Options) layout {
	headerW := make([]int, cols)
	dataW := make([]int, cols)
	numeric := make([]bool, cols)
	for i := range numeric {
		numeric[i] = true
	}

	for _, row := range b.headers {
		for i, h := range row {
			if i >= cols {
				break
			}
			w := clampWidth(runewidth.StringWidth(h), b.limits[i])
			if w > headerW[i] {
				headerW[i] = w
			}
		}
	}

	for _, row := range data {
		for i, c := range row {
			if i >= cols {
				break
			}
			if !c.numeric {
				numeric[i] = false
			}
			w := clampWidth(c.width, b.limits[i])
			if w > dataW[i] {
				dataW[i] = w
			}
		}
	}

	widths := make([]int, cols)
	for i := range widths {
		if opts.Frame == FrameWrap {
			widths[i] = dataW[i]
		} else {
			widths[i] = max(headerW[i], dataW[i])
		}
	}
	return layout{widths: widths, numeric: numeric}
}

// clampWidth bounds w by limit; limit 0 means unlimited.
func clampWidth(w, limit int) int {
	if limit > 0 && w > limit {
		return limit
	}
	return w
}
