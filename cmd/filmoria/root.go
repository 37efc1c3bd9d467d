package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Waddenn/filmoria/internal/appinfo"
	"github.com/Waddenn/filmoria/internal/tui"
	"github.com/Waddenn/filmoria/internal/tui/detail"
	"github.com/Waddenn/filmoria/internal/tui/home"
)

var (
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "filmoria",
	Short: "Browse movies and TV shows from your terminal",
	Long: `filmoria - a terminal media browser

Browse trending, popular and top rated titles, filter by genre,
search the catalog and start playback in your browser.

Set FILMORIA_TMDB_TOKEN (or TMDB_READ_ACCESS_TOKEN) to a TMDB read
access token before starting.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runTUI,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <config dir>/filmoria/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = appinfo.Default().String()
	rootCmd.SetVersionTemplate("filmoria {{.Version}}\n")
}

func runTUI(cmd *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	m := tui.NewModel(tui.Deps{
		Home: home.Deps{
			Catalog:      a.catalog,
			Genres:       a.genres,
			History:      a.history,
			Log:          a.log,
			HTTPClient:   a.artClient,
			Debounce:     a.cfg.UI.Debounce.Duration,
			MinSearchLen: a.cfg.UI.MinSearchLen,
		},
		Detail: detail.Deps{
			Catalog:    a.catalog,
			History:    a.history,
			Player:     a.player,
			Log:        a.log,
			HTTPClient: a.artClient,
		},
		Launcher: a.player,
		Log:      a.log,
	})

	a.log.Info("starting")
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
