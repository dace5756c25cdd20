package nav

import "slices"

// State is a read-only snapshot of the router: the ordered route list
// plus the active index. Widgets receive a fresh State every render and
// request changes through the router, never by mutating the snapshot.
type State struct {
	routes []Route
	active int
}

func (s State) Len() int { return len(s.routes) }

func (s State) Active() int { return s.active }

func (s State) Routes() []Route { return slices.Clone(s.routes) }

func (s State) At(index int) (Route, bool) {
	if index < 0 || index >= len(s.routes) {
		return Route{}, false
	}
	return s.routes[index], true
}

func (s State) ActiveRoute() Route {
	r, _ := s.At(s.active)
	return r
}

// IndexOf returns the position of the route with the given key, or -1.
func (s State) IndexOf(key string) int {
	for i, r := range s.routes {
		if r.Key == key {
			return i
		}
	}
	return -1
}
