package nav

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// PressListener observes tab-press events before the default action
// runs. Returning true vetoes the route switch; the event itself is
// delivered regardless.
type PressListener func(Event) bool

// Event describes one tab press, addressed to a route.
type Event struct {
	Key    string
	Index  int
	Active bool
	Params map[string]string
}

// Router owns the navigation state. The tab set is fixed at
// construction; the only mutation for the process lifetime is the
// active index.
type Router struct {
	routes    []Route
	active    int
	listeners []PressListener
}

// NewRouter registers the full route set. Route keys must be unique and
// exactly one route must carry RolePrimary; both are programmer errors.
func NewRouter(routes ...Route) *Router {
	if len(routes) == 0 {
		panic("nav: router needs at least one route")
	}
	seen := make(map[string]struct{}, len(routes))
	primaries := 0
	for _, r := range routes {
		if r.Key == "" {
			panic("nav: route with empty key")
		}
		if _, dup := seen[r.Key]; dup {
			panic(fmt.Sprintf("nav: duplicate route key %q", r.Key))
		}
		seen[r.Key] = struct{}{}
		if r.Role == RolePrimary {
			primaries++
		}
	}
	if primaries != 1 {
		panic(fmt.Sprintf("nav: want exactly one primary route, have %d", primaries))
	}
	return &Router{routes: routes}
}

func (r *Router) Subscribe(l PressListener) {
	if l == nil {
		return
	}
	r.listeners = append(r.listeners, l)
}

// Snapshot returns the current navigation state.
func (r *Router) Snapshot() State {
	return State{routes: r.routes, active: r.active}
}

// SetActive force-sets the active index without the event protocol.
// Used once at startup to honor the configured start route.
func (r *Router) SetActive(index int) {
	if index < 0 || index >= len(r.routes) {
		return
	}
	r.active = index
}

// Press delivers the tab-press event for the item at index and, when
// the item is not already active and no listener vetoes, switches the
// active route. It returns a command reporting the change, or nil when
// nothing changed.
func (r *Router) Press(index int) tea.Cmd {
	route, ok := r.Snapshot().At(index)
	if !ok {
		return nil
	}
	ev := Event{Key: route.Key, Index: index, Active: index == r.active, Params: route.Params}
	vetoed := false
	for _, l := range r.listeners {
		if l(ev) {
			vetoed = true
		}
	}
	if vetoed || index == r.active {
		return nil
	}
	r.active = index
	return routeChangedCmd(index, route)
}
