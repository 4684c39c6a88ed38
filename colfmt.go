package colfmt

// Format renders delimiter-separated text as an aligned table.
//
// The run is one eager pass: clean and parse the input into a grid,
// slice out header and column-limit rows, format every data cell
// (numbers formatted, over-width text framed), resolve column widths,
// and render. Formatting is total: any input that is valid UTF-8
// produces output, possibly empty. Nothing is shared between runs.
func Format(input string, opts Options) string {
	opts = opts.normalized()

	g := parseGrid(input, opts.IFS)
	if len(g.rows) == 0 {
		return ""
	}

	b := classify(g, opts)

	data := make([][]cell, len(b.data))
	for ri, row := range b.data {
		cells := make([]cell, len(row))
		for i, raw := range row {
			limit := 0
			if i < len(b.limits) {
				limit = b.limits[i]
			}
			cells[i] = formatCell(raw, limit, opts)
		}
		data[ri] = cells
	}

	lay := resolveLayout(b, data, g.cols, opts)
	return render(b, data, lay, opts)
}
