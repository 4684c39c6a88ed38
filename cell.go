package colfmt

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// cell is one formatted data cell. lines always has at least one entry;
// only wrapped text cells have more. width is the display width of the
// widest line. numeric is set exactly once, at format time.
type cell struct {
	lines   []string
	width   int
	numeric bool
}

// formatCell runs the per-cell pipeline: numeric detection, then either
// number formatting or text framing at the column's width limit.
// Numeric cells are never truncated or wrapped.
func formatCell(raw string, limit int, opts Options) cell {
	normalized := strings.ReplaceAll(raw, string(opts.ThousandSeparator), "")
	normalized = strings.ReplaceAll(normalized, string(opts.DecimalSeparator), ".")
	if n, err := strconv.ParseFloat(normalized, 64); err == nil {
		text := formatNumber(n, opts)
		return cell{lines: []string{text}, width: runewidth.StringWidth(text), numeric: true}
	}

	var lines []string
	switch opts.Frame {
	case FrameWrap:
		lines = wrapCell(raw, limit)
	case FrameNone:
		lines = []string{raw}
	default:
		lines = []string{truncateCell(raw, limit, !opts.NoEllipsis)}
	}
	c := cell{lines: lines}
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > c.width {
			c.width = w
		}
	}
	return c
}

// formatNumber renders a parsed number at native precision, or fixed to
// MaxDecimalDigits when padding is on, with optional thousands grouping
// and the configured decimal separator.
func formatNumber(n float64, opts Options) string {
	var s string
	if opts.PadDecimalDigits {
		s = strconv.FormatFloat(n, 'f', opts.MaxDecimalDigits, 64)
	} else {
		s = strconv.FormatFloat(n, 'f', -1, 64)
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	if opts.UseThousandSeparator {
		intPart = groupThousands(intPart, opts.ThousandSeparator)
	}
	if fracPart == "" {
		return intPart
	}
	return intPart + string(opts.DecimalSeparator) + fracPart
}

// groupThousands inserts sep every three digits from the right of an
// integer string, leaving any leading sign in place.
func groupThousands(digits string, sep rune) string {
	sign := ""
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		sign, digits = digits[:1], digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteRune(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return sign + b.String()
}

// truncateCell cuts s at the last character boundary that fits within
// width minus the ellipsis reservation (3 columns when enabled), trims
// trailing whitespace, and appends "..." when the ellipsis is enabled
// and width > 3. Width 0 means no limit.
func truncateCell(s string, width int, ellipsis bool) string {
	s = strings.TrimSpace(s)
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	max := width
	if ellipsis {
		max -= 3
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > max {
			break
		}
		w += rw
		b.WriteRune(r)
	}
	out := strings.TrimSpace(b.String())
	if ellipsis && width > 3 {
		out += "..."
	}
	return out
}

// wrapCell greedily wraps s into lines of display width at most width,
// breaking on whitespace where possible and mid-word only when a single
// word exceeds the width. Width 0 means no wrapping.
func wrapCell(s string, width int) []string {
	s = strings.TrimSpace(s)
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var lines []string
	var cur strings.Builder
	curW := 0

	flush := func() {
		if curW > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curW = 0
		}
	}

	for _, word := range splitWords(s) {
		ww := runewidth.StringWidth(word)
		if ww > width {
			flush()
			chunks := breakWord(word, width)
			for _, chunk := range chunks[:len(chunks)-1] {
				lines = append(lines, chunk)
			}
			last := chunks[len(chunks)-1]
			cur.WriteString(last)
			curW = runewidth.StringWidth(last)
			continue
		}
		if curW > 0 && curW+1+ww > width {
			flush()
		}
		if curW > 0 {
			cur.WriteString(" ")
			curW++
		}
		cur.WriteString(word)
		curW += ww
	}
	flush()
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// splitWords splits on Unicode whitespace, collapsing runs.
func splitWords(s string) []string {
	var words []string
	begin := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if begin >= 0 {
				words = append(words, s[begin:i])
				begin = -1
			}
			continue
		}
		if begin < 0 {
			begin = i
		}
	}
	if begin >= 0 {
		words = append(words, s[begin:])
	}
	return words
}

// breakWord hard-breaks a single over-long word into display-width
// chunks. The runewidth safety branch advances one rune when a wide
// character doesn't fit at all.
func breakWord(s string, width int) []string {
	var chunks []string
	for len(s) > 0 {
		chunk := runewidth.Truncate(s, width, "")
		if runewidth.StringWidth(chunk) == 0 {
			r := []rune(s)
			chunk = string(r[0])
		}
		chunks = append(chunks, chunk)
		s = s[len(chunk):]
	}
	return chunks
}

// alignCell pads s to width. Center splits the padding with any extra
// space on the right. Over-width text is returned unchanged.
func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
