package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Waddenn/filmoria/internal/appinfo"
	"github.com/Waddenn/filmoria/internal/catalog"
	"github.com/Waddenn/filmoria/internal/config"
	"github.com/Waddenn/filmoria/internal/genres"
	"github.com/Waddenn/filmoria/internal/history"
	"github.com/Waddenn/filmoria/internal/tui/components"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search movies and TV shows",
	Long: `Search movies and TV shows.

Examples:
  filmoria search "The Dark Knight"
  filmoria search --json dune`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the continue watching list",
	Args:  cobra.NoArgs,
	RunE:  runHistoryCmd,
}

var genresCmd = &cobra.Command{
	Use:   "genres [name]",
	Short: "List genres, or browse one by name",
	Long: `List genres, or browse one by name.

Names are matched loosely, so "sci fi" finds "Science Fiction".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenresCmd,
}

var playCmd = &cobra.Command{
	Use:   "play <movie|tv> <id>",
	Short: "Open the player for a title",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlayCmd,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "filmoria %s\n", appinfo.Default())
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd, historyCmd, genresCmd, playCmd, versionCmd, configCmd)
	historyCmd.Flags().Bool("clear", false, "Clear the list")
	playCmd.Flags().Bool("copy", false, "Copy the link instead of opening it")
	configCmd.Flags().Bool("init", false, "Write a config file with the defaults")
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printItems(w io.Writer, items []catalog.Item) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tTITLE\tYEAR\tRATING")
	for _, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			it.ID, it.KindOr(catalog.Movie), it.Title, it.Year(), components.Rating(it.VoteAverage))
	}
	_ = tw.Flush()
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	items := a.catalog.Search(cmd.Context(), query)
	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, items)
	}
	if len(items) == 0 {
		fmt.Fprintf(out, "No movies found matching %q.\n", query)
		return nil
	}
	printItems(out, items)
	return nil
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	clearAll, _ := cmd.Flags().GetBool("clear")

	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	if clearAll {
		if err := a.history.Clear(); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		fmt.Fprintln(out, "History cleared.")
		return nil
	}

	entries, err := a.history.Load()
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}
	if jsonOutput {
		return printJSON(out, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "Nothing watched yet.")
		return nil
	}
	printItems(out, entriesToItems(entries))
	return nil
}

func entriesToItems(entries []history.Entry) []catalog.Item {
	items := make([]catalog.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, e.Item())
	}
	return items
}

func runGenresCmd(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	list := a.genres.All(ctx)
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		if jsonOutput {
			return printJSON(out, list)
		}
		for _, g := range list {
			fmt.Fprintf(out, "%6d  %s\n", g.ID, g.Name)
		}
		return nil
	}

	g, ok := genres.Lookup(list, args[0])
	if !ok {
		return fmt.Errorf("unknown genre %q", args[0])
	}
	items := a.catalog.ByGenre(ctx, g.ID)
	if jsonOutput {
		return printJSON(out, items)
	}
	fmt.Fprintf(out, "%s\n\n", g.Name)
	printItems(out, items)
	return nil
}

// parseRoute validates the kind and id arguments of play.
func parseRoute(kind, id string) (string, int, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind != catalog.Movie && kind != catalog.TV {
		return "", 0, fmt.Errorf("kind must be %q or %q, got %q", catalog.Movie, catalog.TV, kind)
	}
	n, err := strconv.Atoi(id)
	if err != nil || n <= 0 {
		return "", 0, fmt.Errorf("invalid id %q", id)
	}
	return kind, n, nil
}

func runPlayCmd(cmd *cobra.Command, args []string) error {
	kind, id, err := parseRoute(args[0], args[1])
	if err != nil {
		return err
	}
	copyOnly, _ := cmd.Flags().GetBool("copy")

	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	d := a.catalog.Detail(ctx, kind, id)
	if d == nil {
		return fmt.Errorf("title %s/%d not found", kind, id)
	}
	if _, err := a.history.Append(history.FromItem(d.Item, kind)); err != nil {
		a.log.WithError(err).Warn("could not record watch history")
	}

	url := a.player.EmbedURL(kind, id)
	if copyOnly {
		if err := a.player.Copy(url); err != nil {
			return err
		}
		fmt.Fprintf(out, "Copied %s\n", url)
		return nil
	}
	if err := a.player.Open(url); err != nil {
		return err
	}
	fmt.Fprintf(out, "Playing %s\n", d.Title)
	return nil
}

func runConfigCmd(cmd *cobra.Command, _ []string) error {
	initFile, _ := cmd.Flags().GetBool("init")
	out := cmd.OutOrStdout()

	if initFile {
		cfg := config.Default()
		cfg.TMDB.Token = "${FILMORIA_TMDB_TOKEN}"
		var err error
		if configPath != "" {
			err = config.SaveFile(configPath, cfg)
		} else {
			err = config.Save(cfg)
		}
		if err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		fmt.Fprintln(out, "Configuration saved.")
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.TMDB.Token = redact(cfg.TMDB.Token)
	if jsonOutput {
		return printJSON(out, cfg)
	}
	fmt.Fprintf(out, "storage: %s\ndebounce: %s\nmin search length: %d\ntoken: %s\n",
		cfg.Storage.Backend, cfg.UI.Debounce.Duration, cfg.UI.MinSearchLen, cfg.TMDB.Token)
	return nil
}

func redact(token string) string {
	if len(token) <= 8 {
		if token == "" {
			return "(not set)"
		}
		return "****"
	}
	return token[:4] + "…" + token[len(token)-4:]
}
