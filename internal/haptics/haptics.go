// Package haptics emits best-effort feedback pulses via the terminal
// bell. Pulses never block and never report failure; on terminals with
// the bell disabled they are simply inaudible.
package haptics

import (
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Strength grades a pulse. The primary tab action gets Medium, all
// other items Light.
type Strength int

const (
	Light Strength = iota
	Medium
)

type Engine struct {
	enabled bool
	out     io.Writer
}

func New(enabled bool) *Engine {
	return &Engine{enabled: enabled, out: os.Stderr}
}

// NewWithWriter is for tests.
func NewWithWriter(enabled bool, out io.Writer) *Engine {
	return &Engine{enabled: enabled, out: out}
}

// Pulse returns a fire-and-forget command. The write result is
// deliberately discarded: haptic failure is never observed by the UI.
func (e *Engine) Pulse(s Strength) tea.Cmd {
	if e == nil || !e.enabled {
		return nil
	}
	bells := 1
	if s == Medium {
		bells = 2
	}
	out := e.out
	return func() tea.Msg {
		_, _ = io.WriteString(out, strings.Repeat("\a", bells))
		return nil
	}
}
