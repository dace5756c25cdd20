package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/nyaga/pesa/internal/theme"
)

// Card is a static informational block: a glyph, a heading and a
// caption inside a rounded border.
type Card struct {
	Glyph   string
	Heading string
	Caption string
	Palette theme.Palette
}

func (c Card) Render(width, height int) string {
	if width <= 4 {
		return ""
	}
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.Palette.Border).
		Padding(0, 1).
		Width(width - 2)

	headStyle := lipgloss.NewStyle().Foreground(c.Palette.Text).Bold(true)
	glyphStyle := lipgloss.NewStyle().Foreground(c.Palette.Accent)
	captionStyle := lipgloss.NewStyle().Foreground(c.Palette.Muted)

	inner := width - 6
	if inner < 1 {
		inner = 1
	}
	// Only the glyph carries the accent color.
	var head string
	if c.Glyph != "" {
		head = glyphStyle.Render(c.Glyph) + " " + headStyle.Render(ansi.Truncate(c.Heading, max(1, inner-ansi.StringWidth(c.Glyph)-1), "…"))
	} else {
		head = headStyle.Render(ansi.Truncate(c.Heading, inner, "…"))
	}
	lines := []string{head}
	for _, caption := range wrap(c.Caption, inner) {
		lines = append(lines, captionStyle.Render(caption))
	}
	return border.Render(strings.Join(lines, "\n"))
}

// Lines reports how tall the rendered card is at the given width.
func (c Card) Lines(width int) int {
	inner := width - 6
	if inner < 1 {
		inner = 1
	}
	return 3 + len(wrap(c.Caption, inner))
}

func wrap(s string, width int) []string {
	s = strings.TrimSpace(s)
	if s == "" || width < 1 {
		return nil
	}
	words := strings.Fields(s)
	var out []string
	line := ""
	for _, w := range words {
		if line == "" {
			line = w
			continue
		}
		if ansi.StringWidth(line)+1+ansi.StringWidth(w) > width {
			out = append(out, line)
			line = w
			continue
		}
		line += " " + w
	}
	if line != "" {
		out = append(out, line)
	}
	return out
}
