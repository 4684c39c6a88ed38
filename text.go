package colfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Clean trims every line and drops blank ones. Cleaning is idempotent:
// re-cleaning cleaned text is a no-op.
func Clean(input string) string {
	var lines []string
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// TruncateLines cleans the input and truncates each line to the given
// display width, appending "..." per the ellipsis flag.
func TruncateLines(input string, width int, ellipsis bool) string {
	cleaned := Clean(input)
	if cleaned == "" {
		return ""
	}
	lines := strings.Split(cleaned, "\n")
	for i, line := range lines {
		lines[i] = truncateCell(line, width, ellipsis)
	}
	return strings.Join(lines, "\n")
}

// WrapLines cleans the input and word-wraps each line to the given
// display width.
func WrapLines(input string, width int) string {
	cleaned := Clean(input)
	if cleaned == "" {
		return ""
	}
	var out []string
	for _, line := range strings.Split(cleaned, "\n") {
		out = append(out, wrapCell(line, width)...)
	}
	return strings.Join(out, "\n")
}

// AlignLines cleans the input and aligns each line within the given
// width. A width smaller than the widest line is raised to it, so
// alignment never clips. AUTO behaves as LEFT here; there is no numeric
// context for whole lines.
func AlignLines(input string, width int, align Alignment) string {
	cleaned := Clean(input)
	if cleaned == "" {
		return ""
	}
	lines := strings.Split(cleaned, "\n")
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	for i, line := range lines {
		switch align {
		case AlignRight:
			lines[i] = alignCell(line, width, AlignRight)
		case AlignCenter:
			lines[i] = strings.TrimRight(alignCell(line, width, AlignCenter), " \t")
		default:
			// Left padding would only become trailing whitespace.
		}
	}
	return strings.Join(lines, "\n")
}
