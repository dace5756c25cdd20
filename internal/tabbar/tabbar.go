// Package tabbar renders the bottom navigation bar and translates
// presses into router requests. The widget is stateless between
// renders: all navigation state arrives as a fresh snapshot.
package tabbar

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/nyaga/pesa/internal/haptics"
	"github.com/nyaga/pesa/internal/icons"
	"github.com/nyaga/pesa/internal/nav"
	"github.com/nyaga/pesa/internal/routes"
	"github.com/nyaga/pesa/internal/theme"
)

// Height is the bar's rendered height: the baseline row plus the row
// the primary item rises into.
const Height = 2

type Model struct {
	pal theme.Palette
	ic  icons.Set
	hap *haptics.Engine
}

func New(pal theme.Palette, ic icons.Set, hap *haptics.Engine) Model {
	return Model{pal: pal, ic: ic, hap: hap}
}

// Press dispatches a press on the item at index: a haptic pulse fires
// regardless of outcome, then the router runs the cancelable tab-press
// protocol. Out-of-range indexes are ignored.
func (m Model) Press(r *nav.Router, index int) tea.Cmd {
	route, ok := r.Snapshot().At(index)
	if !ok {
		return nil
	}
	strength := haptics.Light
	if route.Role == nav.RolePrimary {
		strength = haptics.Medium
	}
	return tea.Batch(m.hap.Pulse(strength), r.Press(index))
}

type cell struct {
	glyph   string
	label   string
	primary bool
	active  bool
}

// cells derives the render plan for a snapshot. Label and glyph come
// from the descriptor table keyed by route key, so an unknown key
// degrades to the Home pair instead of failing.
func (m Model) cells(st nav.State) []cell {
	out := make([]cell, 0, st.Len())
	for i, r := range st.Routes() {
		d := routes.Lookup(r.Key)
		out = append(out, cell{
			glyph:   m.ic.Glyph(d.Icon),
			label:   d.Label,
			primary: r.Role == nav.RolePrimary,
			active:  i == st.Active(),
		})
	}
	return out
}

// View renders the two-row bar. Standard items sit on the baseline row
// colored by active state; the primary item is a filled accent block
// spanning both rows, visually raised above its neighbours.
func (m Model) View(st nav.State, width int) string {
	n := st.Len()
	if n == 0 || width < n {
		return "\n"
	}
	gapStyle := lipgloss.NewStyle().Background(m.pal.Base)
	activeStyle := lipgloss.NewStyle().Foreground(m.pal.Accent).Background(m.pal.Surface).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(m.pal.Muted).Background(m.pal.Surface)
	primaryStyle := lipgloss.NewStyle().Foreground(m.pal.AccentText).Background(m.pal.Accent).Bold(true)

	cellWidth := width / n
	var top, bottom strings.Builder
	for i, c := range m.cells(st) {
		w := cellWidth
		if i == n-1 {
			w = width - cellWidth*(n-1)
		}
		text := center(ansi.Truncate(c.glyph+" "+c.label, w, "…"), w)
		switch {
		case c.primary:
			// The accent block fills both rows: glyph on the raised
			// row, label on the baseline.
			top.WriteString(primaryStyle.Render(center(c.glyph, w)))
			bottom.WriteString(primaryStyle.Render(center(ansi.Truncate(c.label, w, "…"), w)))
		case c.active:
			top.WriteString(gapStyle.Render(center("", w)))
			bottom.WriteString(activeStyle.Render(text))
		default:
			top.WriteString(gapStyle.Render(center("", w)))
			bottom.WriteString(inactiveStyle.Render(text))
		}
	}
	return top.String() + "\n" + bottom.String()
}

func center(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
