// Pesa is the terminal shell of the Pesa money-transfer app.
//
// It renders the five-tab layout (Home, Recipients, Send Money, Track,
// Locations) with the Send Money action elevated in the center of the
// bottom tab bar. All screens are placeholders; no transfers happen
// here.
//
// Usage:
//
//	pesa [flags]
//
// Configuration lives in ~/.config/pesa/config.toml (override with
// PESA_CONFIG); every setting can also be supplied via PESA_* env vars.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nyaga/pesa/internal/app"
	"github.com/nyaga/pesa/internal/config"
	"github.com/nyaga/pesa/internal/haptics"
	"github.com/nyaga/pesa/internal/icons"
	"github.com/nyaga/pesa/internal/logging"
	"github.com/nyaga/pesa/internal/theme"
	"github.com/nyaga/pesa/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var themeFlag string

var rootCmd = &cobra.Command{
	Use:     "pesa",
	Short:   "Pesa money-transfer shell",
	Long:    "Terminal shell for the Pesa money-transfer app: Home, Recipients, Send Money, Track and Locations tabs with placeholder screens.",
	Version: version.Version,
	RunE:    run,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "palette variant: auto, light or dark (overrides config)")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pesa %s (commit: %s)\n", version.Version, version.Commit)
	},
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New("")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	modeName := cfg.Theme.Mode
	if themeFlag != "" {
		modeName = themeFlag
	}
	mode, err := theme.ParseMode(modeName)
	if err != nil {
		return err
	}
	pal := theme.Active(mode)

	glyphs := icons.NerdFont()
	if !cfg.UI.NerdFont {
		glyphs = icons.Plain()
	}

	m := app.New(app.Options{
		Palette:    pal,
		Icons:      glyphs,
		Haptics:    haptics.New(cfg.Haptics.Enabled),
		Logger:     logger,
		StartRoute: cfg.UI.StartRoute,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
