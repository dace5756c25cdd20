package widgets

import "strings"

// VStack stacks widgets top to bottom at their natural height, with
// Spacing blank lines between neighbors. The height argument is passed
// through to each child.
type VStack struct {
	Widgets []Widget
	Spacing int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 {
		return ""
	}
	var b strings.Builder
	for i, w := range v.Widgets {
		if i > 0 {
			for s := 0; s <= v.Spacing; s++ {
				b.WriteByte('\n')
			}
		}
		b.WriteString(w.Render(width, height))
	}
	return b.String()
}

// HStack lays widgets out side by side in equal-width columns separated
// by Gap spaces; the last column absorbs the rounding remainder. Every
// row spans the full width, so shorter columns pad with blanks.
type HStack struct {
	Widgets []Widget
	Gap     int
}

func (h HStack) Render(width, height int) string {
	n := len(h.Widgets)
	if n == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gap := max(0, h.Gap)
	widths := columnWidths(width, n, gap)

	cols := make([][]string, n)
	tallest := 0
	for i, w := range h.Widgets {
		cols[i] = strings.Split(w.Render(widths[i], height), "\n")
		tallest = max(tallest, len(cols[i]))
	}

	spacer := strings.Repeat(" ", gap)
	var b strings.Builder
	for row := 0; row < tallest; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for i, col := range cols {
			if i > 0 {
				b.WriteString(spacer)
			}
			cell := ""
			if row < len(col) {
				cell = col[row]
			}
			b.WriteString(padRight(cell, widths[i]))
		}
	}
	return b.String()
}

// columnWidths splits the width left after gaps into n equal columns,
// each at least one cell wide.
func columnWidths(total, n, gap int) []int {
	usable := max(n, total-gap*(n-1))
	each := usable / n
	out := make([]int, n)
	for i := range out {
		out[i] = each
	}
	out[n-1] = usable - each*(n-1)
	return out
}
