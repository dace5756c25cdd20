package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

type fixedWidget struct {
	lines []string
}

func (f fixedWidget) Render(width, height int) string {
	out := make([]string, len(f.lines))
	for i, l := range f.lines {
		out[i] = padRight(ansi.Truncate(l, width, ""), width)
	}
	return strings.Join(out, "\n")
}

func TestVStackJoinsWidgets(t *testing.T) {
	v := VStack{Widgets: []Widget{
		fixedWidget{lines: []string{"top"}},
		fixedWidget{lines: []string{"bottom"}},
	}}
	out := v.Render(10, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "top") || !strings.HasPrefix(lines[1], "bottom") {
		t.Fatalf("unexpected stacking:\n%s", out)
	}
}

func TestVStackSpacing(t *testing.T) {
	v := VStack{
		Widgets: []Widget{fixedWidget{lines: []string{"a"}}, fixedWidget{lines: []string{"b"}}},
		Spacing: 1,
	}
	lines := strings.Split(v.Render(5, 3), "\n")
	if len(lines) != 3 || strings.TrimSpace(lines[1]) != "" {
		t.Fatalf("expected one blank spacer line:\n%q", lines)
	}
}

func TestHStackColumnsShareWidth(t *testing.T) {
	h := HStack{
		Widgets: []Widget{
			fixedWidget{lines: []string{"left"}},
			fixedWidget{lines: []string{"right", "tall"}},
		},
		Gap: 1,
	}
	out := h.Render(21, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("row count = %d", len(lines))
	}
	for _, l := range lines {
		if w := ansi.StringWidth(l); w != 21 {
			t.Fatalf("row width = %d, want 21: %q", w, l)
		}
	}
	if !strings.Contains(lines[0], "left") || !strings.Contains(lines[0], "right") {
		t.Fatalf("columns not side by side: %q", lines[0])
	}
	// Shorter column pads with blanks on the overflow row.
	if !strings.Contains(lines[1], "tall") {
		t.Fatalf("tall column truncated: %q", lines[1])
	}
}

func TestColumnWidths(t *testing.T) {
	got := columnWidths(21, 2, 1)
	if got[0] != 10 || got[1] != 10 {
		t.Fatalf("even split = %v, want [10 10]", got)
	}
	got = columnWidths(10, 3, 0)
	if got[0]+got[1]+got[2] != 10 {
		t.Fatalf("remainder lost: %v", got)
	}
	if got[2] < got[0] {
		t.Fatalf("last column should absorb the remainder: %v", got)
	}
	got = columnWidths(2, 3, 2)
	for i, w := range got {
		if w < 1 {
			t.Fatalf("column %d collapsed to %d", i, w)
		}
	}
}
