// Package app wires the router, screens and tab bar into the
// top-level bubbletea model.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nyaga/pesa/internal/haptics"
	"github.com/nyaga/pesa/internal/icons"
	"github.com/nyaga/pesa/internal/nav"
	"github.com/nyaga/pesa/internal/routes"
	"github.com/nyaga/pesa/internal/screens"
	"github.com/nyaga/pesa/internal/tabbar"
	"github.com/nyaga/pesa/internal/theme"
)

type Model struct {
	width    int
	height   int
	router   *nav.Router
	bar      tabbar.Model
	screens  []*screens.Screen
	keys     *KeyMap
	pal      theme.Palette
	status   string
	quitting bool
	log      *zap.Logger
}

// Options configures the shell.
type Options struct {
	Palette    theme.Palette
	Icons      icons.Set
	Haptics    *haptics.Engine
	Logger     *zap.Logger
	StartRoute string
}

// New registers the five tab routes and builds the shell. The route set
// is fixed here for the process lifetime; Send Money carries the
// primary role.
func New(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	rs := make([]nav.Route, 0, 5)
	for _, key := range routes.Keys() {
		d := routes.Lookup(key)
		role := nav.RoleStandard
		if key == routes.KeySendMoney {
			role = nav.RolePrimary
		}
		rs = append(rs, nav.Route{Key: key, Title: d.Label, Icon: string(d.Icon), Role: role})
	}
	router := nav.NewRouter(rs...)
	if idx := router.Snapshot().IndexOf(opts.StartRoute); idx >= 0 {
		router.SetActive(idx)
	}
	return Model{
		width:   80,
		height:  24,
		router:  router,
		bar:     tabbar.New(opts.Palette, opts.Icons, opts.Haptics),
		screens: screens.All(opts.Palette, opts.Icons),
		keys:    DefaultKeyMap(rs),
		pal:     opts.Palette,
		status:  "Ready",
		log:     opts.Logger,
	}
}

// Router exposes the navigation engine, e.g. for veto subscribers.
func (m Model) Router() *nav.Router { return m.router }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		for _, s := range m.screens {
			s.SetSize(max(1, m.width), m.bodyHeight())
		}
		return m, nil

	case nav.TabPressMsg:
		return m, m.bar.Press(m.router, msg.Index)

	case nav.RouteChangedMsg:
		m.status = "On " + msg.Title
		m.log.Info("route changed",
			zap.String("route", msg.Key),
			zap.Int("index", msg.Index))
		return m, nil

	case tea.KeyMsg:
		if b, ok := m.keys.Resolve(msg, m.activeScope()); ok {
			switch b.Action {
			case ActionQuit:
				m.quitting = true
				return m, tea.Quit
			case ActionNextTab:
				return m, nav.TabPressCmd(m.nextIndex(1))
			case ActionPrevTab:
				return m, nav.TabPressCmd(m.nextIndex(-1))
			case ActionPressTab:
				return m, nav.TabPressCmd(b.Tab)
			}
		}
		// Scroll and unbound keys belong to the active screen.
		return m, m.updateActiveScreen(msg)
	}
	return m, m.updateActiveScreen(msg)
}

// bodyHeight is the space left between the header and the chrome
// stacked at the bottom (status bar, tab bar, footer).
func (m Model) bodyHeight() int {
	return max(1, m.height-3-tabbar.Height)
}

func (m Model) activeScope() string {
	if s := m.activeScreen(); s != nil {
		return s.Scope()
	}
	return "app"
}

func (m Model) activeScreen() *screens.Screen {
	idx := m.router.Snapshot().Active()
	if idx < 0 || idx >= len(m.screens) {
		return nil
	}
	return m.screens[idx]
}

func (m Model) updateActiveScreen(msg tea.Msg) tea.Cmd {
	if s := m.activeScreen(); s != nil {
		return s.Update(msg)
	}
	return nil
}

func (m Model) nextIndex(delta int) int {
	st := m.router.Snapshot()
	n := st.Len()
	return (st.Active() + delta + n) % n
}
