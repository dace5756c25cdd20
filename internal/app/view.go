package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	width := max(1, m.width)

	header := m.renderHeader(width)
	status := m.renderStatus(width)
	bar := m.bar.View(m.router.Snapshot(), width)
	footer := m.renderFooter(width)

	var body string
	if s := m.activeScreen(); s != nil {
		body = s.View()
	}
	body = fitHeight(body, m.bodyHeight())

	return strings.Join([]string{header, body, status, bar, footer}, "\n")
}

func (m Model) renderHeader(width int) string {
	style := lipgloss.NewStyle().Background(m.pal.Surface)
	appStyle := lipgloss.NewStyle().Foreground(m.pal.Accent).Background(m.pal.Surface).Bold(true)
	titleStyle := lipgloss.NewStyle().Foreground(m.pal.Muted).Background(m.pal.Surface)

	left := appStyle.Render("Pesa")
	right := titleStyle.Render(m.router.Snapshot().ActiveRoute().Title)
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := " " + left + strings.Repeat(" ", gap) + right + " "
	return renderBar(style, width, line)
}

func (m Model) renderStatus(width int) string {
	style := lipgloss.NewStyle().Foreground(m.pal.Muted).Background(m.pal.Surface)
	return renderBar(style, width, " "+m.status)
}

func (m Model) renderFooter(width int) string {
	bg := m.pal.Base
	keyStyle := lipgloss.NewStyle().Foreground(m.pal.Accent).Background(bg).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(m.pal.Muted).Background(bg)
	sep := lipgloss.NewStyle().Background(bg).Render("  ")
	space := lipgloss.NewStyle().Background(bg).Render(" ")

	shown := []Action{ActionNextTab, ActionPrevTab, ActionScroll, ActionQuit}
	parts := make([]string, 0, len(shown))
	for _, action := range shown {
		for _, b := range m.keys.Help(m.activeScope()) {
			if b.Action != action || len(b.Keys) == 0 {
				continue
			}
			parts = append(parts, keyStyle.Render(b.Keys[0])+space+descStyle.Render(b.Help))
			break
		}
	}
	line := strings.Join(parts, sep)
	return renderBar(lipgloss.NewStyle().Background(bg), width, " "+line)
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

// fitHeight clamps s to exactly height lines, padding the bottom with
// blanks or dropping overflow.
func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.SplitN(s, "\n", height+1)
	if len(lines) > height {
		return strings.Join(lines[:height], "\n")
	}
	var b strings.Builder
	b.WriteString(strings.Join(lines, "\n"))
	for i := len(lines); i < height; i++ {
		b.WriteByte('\n')
	}
	return b.String()
}
