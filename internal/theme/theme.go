// Package theme holds the fixed light and dark palettes.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mode selects which palette is active for the process lifetime.
// Terminals do not push color-scheme change events, so the ambient
// scheme is sampled once at startup.
type Mode int

const (
	ModeAuto Mode = iota
	ModeLight
	ModeDark
)

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	default:
		return ModeAuto, fmt.Errorf("theme: unknown mode %q (want auto, light or dark)", s)
	}
}

// Palette is the named-color table for one variant. Immutable.
type Palette struct {
	Base       lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	AccentText lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
}

// Dark is the Catppuccin Mocha variant.
var Dark = Palette{
	Base:       "#1e1e2e",
	Surface:    "#313244",
	Border:     "#585b70",
	Text:       "#cdd6f4",
	Muted:      "#7f849c",
	Accent:     "#89b4fa",
	AccentText: "#1e1e2e",
	Success:    "#a6e3a1",
	Error:      "#f38ba8",
}

// Light is the Catppuccin Latte variant.
var Light = Palette{
	Base:       "#eff1f5",
	Surface:    "#ccd0da",
	Border:     "#9ca0b0",
	Text:       "#4c4f69",
	Muted:      "#6c6f85",
	Accent:     "#1e66f5",
	AccentText: "#eff1f5",
	Success:    "#40a02b",
	Error:      "#d20f39",
}

// Active resolves the palette for the given mode. Auto samples the
// terminal background once via termenv.
func Active(m Mode) Palette {
	switch m {
	case ModeLight:
		return Light
	case ModeDark:
		return Dark
	default:
		if termenv.HasDarkBackground() {
			return Dark
		}
		return Light
	}
}
