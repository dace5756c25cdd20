package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nyaga/pesa/internal/nav"
)

// Action identifies what a key press does in the shell.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionNextTab
	ActionPrevTab
	ActionScroll
	ActionPressTab
)

// KeyBinding ties keys to a shell action. Tab carries the route index
// when Action is ActionPressTab. An empty Scope fires everywhere;
// otherwise the binding only fires when the active screen's scope
// matches.
type KeyBinding struct {
	Keys   []string
	Action Action
	Tab    int
	Help   string
	Scope  string
}

// KeyMap resolves key presses to shell actions. Bindings added later
// shadow earlier ones, so a screen can override a default for its own
// scope without touching the rest of the map.
type KeyMap struct {
	bindings []KeyBinding
}

func NewKeyMap() *KeyMap { return &KeyMap{} }

func (m *KeyMap) Bind(b KeyBinding) {
	m.bindings = append(m.bindings, b)
}

// Resolve returns the binding a key press activates within a scope.
// Unbound presses report false and fall through to the active screen.
func (m *KeyMap) Resolve(msg tea.KeyMsg, scope string) (KeyBinding, bool) {
	pressed := strings.ToLower(msg.String())
	for i := len(m.bindings) - 1; i >= 0; i-- {
		b := m.bindings[i]
		if b.Scope != "" && b.Scope != scope {
			continue
		}
		for _, k := range b.Keys {
			if strings.ToLower(k) == pressed {
				return b, true
			}
		}
	}
	return KeyBinding{}, false
}

// Help lists the bindings visible in a scope, in bind order.
func (m *KeyMap) Help(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(m.bindings))
	for _, b := range m.bindings {
		if b.Scope == "" || b.Scope == scope {
			out = append(out, b)
		}
	}
	return out
}

// DefaultKeyMap derives the stock bindings from the registered routes:
// one digit per tab in order, with the primary route also reachable via
// enter from anywhere. Digit presses travel the same cancelable
// protocol a pointer tap would.
func DefaultKeyMap(rs []nav.Route) *KeyMap {
	m := NewKeyMap()
	for i, r := range rs {
		keys := []string{string(rune('1' + i))}
		if r.Role == nav.RolePrimary {
			keys = append(keys, "enter")
		}
		m.Bind(KeyBinding{Keys: keys, Action: ActionPressTab, Tab: i, Help: strings.ToLower(r.Title)})
	}
	m.Bind(KeyBinding{Keys: []string{"tab", "right"}, Action: ActionNextTab, Help: "next tab"})
	m.Bind(KeyBinding{Keys: []string{"shift+tab", "left"}, Action: ActionPrevTab, Help: "prev tab"})
	m.Bind(KeyBinding{Keys: []string{"j", "k"}, Action: ActionScroll, Help: "scroll"})
	m.Bind(KeyBinding{Keys: []string{"q", "ctrl+c"}, Action: ActionQuit, Help: "quit"})
	return m
}
