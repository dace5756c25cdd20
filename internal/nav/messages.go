package nav

import tea "github.com/charmbracelet/bubbletea"

// TabPressMsg is a request to press the tab item at Index. The router
// decides whether the press results in a route change.
type TabPressMsg struct {
	Index int
}

// RouteChangedMsg reports that the active route switched. Params is the
// pressed route's parameter set, forwarded unchanged.
type RouteChangedMsg struct {
	Index  int
	Key    string
	Title  string
	Params map[string]string
}

func TabPressCmd(index int) tea.Cmd {
	return func() tea.Msg { return TabPressMsg{Index: index} }
}

func routeChangedCmd(index int, r Route) tea.Cmd {
	return func() tea.Msg {
		return RouteChangedMsg{Index: index, Key: r.Key, Title: r.Title, Params: r.Params}
	}
}
