// Package screens holds the placeholder tab screens. Every screen is
// static: a title, a description and informational cards inside a
// scrollable container. No data is fetched and nothing can fail.
package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nyaga/pesa/internal/theme"
	"github.com/nyaga/pesa/internal/widgets"
)

type Screen struct {
	key   string
	title string
	desc  string
	cards []widgets.Card
	pal   theme.Palette
	vp    viewport.Model
	ready bool
}

func newScreen(key, title, desc string, pal theme.Palette, cards ...widgets.Card) *Screen {
	return &Screen{key: key, title: title, desc: desc, cards: cards, pal: pal}
}

func (s *Screen) Key() string   { return s.key }
func (s *Screen) Title() string { return s.title }
func (s *Screen) Scope() string { return "screen:" + s.key }

// SetSize resizes the scroll container and re-flows the static content.
func (s *Screen) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if !s.ready {
		s.vp = viewport.New(width, height)
		s.ready = true
	} else {
		s.vp.Width = width
		s.vp.Height = height
	}
	s.vp.SetContent(s.content(width))
}

func (s *Screen) Update(msg tea.Msg) tea.Cmd {
	if !s.ready {
		return nil
	}
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return cmd
}

func (s *Screen) View() string {
	if !s.ready {
		return ""
	}
	return s.vp.View()
}

func (s *Screen) content(width int) string {
	titleStyle := lipgloss.NewStyle().Foreground(s.pal.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(s.pal.Muted).Width(max(1, width-2))

	parts := []string{
		" " + titleStyle.Render(s.title),
		descStyle.Render(" " + s.desc),
		"",
	}
	if block := s.cardsBlock(width); block != "" {
		parts = append(parts, block)
	}
	return strings.Join(parts, "\n")
}

// cardsBlock stacks the cards vertically, switching to a two-column
// grid when the terminal is wide enough.
func (s *Screen) cardsBlock(width int) string {
	if len(s.cards) == 0 {
		return ""
	}
	if width < twoColumnMinWidth || len(s.cards) < 2 {
		ws := make([]widgets.Widget, len(s.cards))
		for i, c := range s.cards {
			ws[i] = c
		}
		return widgets.VStack{Widgets: ws}.Render(width, 0)
	}
	half := width / 2
	var rows []string
	for i := 0; i < len(s.cards); i += 2 {
		if i+1 == len(s.cards) {
			rows = append(rows, s.cards[i].Render(width, 0))
			break
		}
		h := max(s.cards[i].Lines(half), s.cards[i+1].Lines(half))
		row := widgets.HStack{
			Widgets: []widgets.Widget{s.cards[i], s.cards[i+1]},
			Gap:     1,
		}
		rows = append(rows, row.Render(width-1, h))
	}
	return strings.Join(rows, "\n")
}

const twoColumnMinWidth = 70
